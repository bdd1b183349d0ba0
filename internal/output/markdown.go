package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownSummaryWriter writes staged change summaries as Markdown.
type MarkdownSummaryWriter struct{}

// Write outputs the staged change summary as Markdown.
func (w *MarkdownSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Staged Change Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Lines:** +%d / -%d\n\n", report.Stats.Added, report.Stats.Removed)

	writeMarkdownList(out, "Binary File Changes", report.Summary.BinaryFileChanges, "No binary file changes detected.")
	writeMarkdownList(out, "Structure Changes", report.Summary.StructureChanges, "No folder structure changes detected.")

	fmt.Fprintf(out, "---\n*Generated at %s*\n", report.GeneratedAt.Format(reportDateTimeLayout))
	return nil
}

func writeMarkdownList(out io.Writer, title string, items []string, empty string) {
	fmt.Fprintf(out, "## %s\n\n", title)
	if len(items) == 0 {
		fmt.Fprintf(out, "_%s_\n\n", empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(out, "- %s\n", escapeMarkdown(item))
	}
	fmt.Fprintln(out)
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"\r", "\\r",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
