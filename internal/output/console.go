package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

const consoleDescriptionWidth = 100

// ConsoleSummaryWriter writes staged change summaries to the console.
type ConsoleSummaryWriter struct{}

// Write outputs the staged change summary to the console.
func (w *ConsoleSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "Staged Change Summary")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Lines: %s %s\n",
		color.GreenString("+%d", report.Stats.Added),
		color.RedString("-%d", report.Stats.Removed))
	fmt.Fprintf(out, "Binary changes: %d, structure changes: %d\n\n",
		len(report.Summary.BinaryFileChanges), len(report.Summary.StructureChanges))

	if report.Summary.IsEmpty() {
		fmt.Fprintln(out, "No binary or structure changes detected.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCategory\tChange")
	for i, row := range changeRows(report) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n",
			i+1,
			getCategoryColor(row.Category)(row.Category),
			truncateMessage(row.Description, consoleDescriptionWidth),
		)
	}
	return tw.Flush()
}

func getCategoryColor(category string) func(a ...interface{}) string {
	switch category {
	case categoryBinary:
		return color.New(color.FgYellow).SprintFunc()
	case categoryStructure:
		return color.New(color.FgCyan).SprintFunc()
	default:
		return fmt.Sprint
	}
}
