package prompt

import (
	"fmt"
	"strings"

	"github.com/masmgr/aicommit-go/internal/annotate"
	"github.com/masmgr/aicommit-go/internal/staged"
)

const (
	DefaultMinDescriptionChars = 10
	DefaultMaxDescriptionChars = 72

	sectionSeparator = "---"
)

// Options controls prompt assembly.
type Options struct {
	// Variations is the number of alternative messages requested.
	Variations          int
	MinDescriptionChars int
	MaxDescriptionChars int
	// PreviousMessage is the message of the commit being amended, if any.
	PreviousMessage string
	// OmitSummary leaves out the binary and structure change sections.
	OmitSummary bool
}

// DefaultOptions requests a single message within the default length bounds.
func DefaultOptions() Options {
	return Options{
		Variations:          1,
		MinDescriptionChars: DefaultMinDescriptionChars,
		MaxDescriptionChars: DefaultMaxDescriptionChars,
	}
}

// Build assembles the text-generation prompt from the staged diff and the
// change summary. The diff is annotated before it is embedded.
func Build(diff string, summary staged.ChangeSummary, opts Options) string {
	opts = withDefaults(opts)
	n := opts.Variations

	var parts []string
	if n == 1 {
		parts = append(parts, "Analyze the following code changes and repository structure modifications. Generate 1 Git commit message.")
	} else {
		parts = append(parts, fmt.Sprintf(
			"Analyze the following code changes and repository structure modifications. "+
				"Your task is to generate %d *alternative* Git commit messages. "+
				"Each of these %d messages must be a complete and valid commit message that summarizes *all* the changes provided below. "+
				"They should represent different ways of phrasing a *single* commit for the *entirety* of these changes, "+
				"offering variations in wording or emphasis, but all pertaining to the same overall update. "+
				"Do not generate messages for individual files or sub-tasks within the diff if they are part of the same logical change."+
				"\n\nIMPORTANT FOR MULTIPLE VARIATIONS: All %d variations should use the SAME commit type "+
				"(the most appropriate one for the entire changeset). "+
				"Only vary the description part to provide different phrasings of the same conceptual change.",
			n, n, n))
	}

	parts = append(parts,
		"Each message MUST follow this format: <type>: <description>",
		typeSelectionGuidance,
		"Available <type>s, their descriptions, and EXAMPLES of their use are:\n"+strings.TrimRight(formatCommitTypes(CommitTypes), "\n"),
	)

	choose := "Choose the <type> that best describes the overall changes"
	if n > 1 {
		choose = fmt.Sprintf(
			"For the %d variations requested, determine the single most appropriate <type> that best describes the overall changes, "+
				"then create %d different descriptions using that same type. "+
				"The variations should differ in wording, emphasis, or perspective, "+
				"but should all use the same commit type that represents the primary nature of the entire changeset",
			n, n)
	}
	parts = append(parts,
		fmt.Sprintf("%s. Use the provided examples and hierarchy guidance above to ensure correct type usage.\n"+
			"The <description> should be concise, start with a verb in the imperative mood if possible, and be between %d and %d characters.",
			choose, opts.MinDescriptionChars, opts.MaxDescriptionChars),
		"Do not include any other explanatory text, just the commit message(s).",
	)

	if opts.PreviousMessage != "" {
		variationsText := "it"
		if n > 1 {
			variationsText = fmt.Sprintf("%d variations of it", n)
		}
		parts = append(parts, fmt.Sprintf(
			"The previous commit message was: '%s'. Please generate a new, improved message (or %s if multiple are requested) based on the changes, "+
				"considering why the previous one might have been suboptimal. "+
				"Ensure the <type> is appropriate for the changes, guided by the hierarchy and examples provided above. "+
				"If generating multiple variations, they should all use the same improved type.",
			opts.PreviousMessage, variationsText))
	}

	parts = append(parts, diffSection(diff)...)

	if !opts.OmitSummary {
		parts = append(parts,
			"Binary file changes:",
			listOrPlaceholder(summary.BinaryFileChanges, "No binary file changes detected."),
			sectionSeparator,
			"Folder structure changes:",
			listOrPlaceholder(summary.StructureChanges, "No folder structure changes detected."),
			sectionSeparator,
		)
	}

	return strings.Join(parts, "\n\n")
}

func diffSection(diff string) []string {
	if strings.TrimSpace(diff) == "" {
		return []string{"Diff:", sectionSeparator, "No textual diff.", sectionSeparator}
	}
	return []string{
		"Diff:",
		fmt.Sprintf("In the diff below, lines starting with %q were added and lines starting with %q were removed. "+
			"All other lines are unchanged context or file metadata.",
			strings.TrimSpace(annotate.AddedMarker), strings.TrimSpace(annotate.RemovedMarker)),
		sectionSeparator,
		annotate.Annotate(diff),
		sectionSeparator,
	}
}

func listOrPlaceholder(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, "\n")
}

func withDefaults(opts Options) Options {
	if opts.Variations < 1 {
		opts.Variations = 1
	}
	if opts.MinDescriptionChars <= 0 {
		opts.MinDescriptionChars = DefaultMinDescriptionChars
	}
	if opts.MaxDescriptionChars <= 0 {
		opts.MaxDescriptionChars = DefaultMaxDescriptionChars
	}
	return opts
}
