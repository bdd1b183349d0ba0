package output

import (
	"time"

	"github.com/masmgr/aicommit-go/internal/annotate"
	"github.com/masmgr/aicommit-go/internal/staged"
)

// Compile-time interface conformance checks.
var (
	_ SummaryReportWriter = (*ConsoleSummaryWriter)(nil)
	_ SummaryReportWriter = (*JSONSummaryWriter)(nil)
	_ SummaryReportWriter = (*CSVSummaryWriter)(nil)
	_ SummaryReportWriter = (*MarkdownSummaryWriter)(nil)
	_ SummaryReportWriter = (*CISummaryWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// SummaryReport holds the classified staged changes of one repository.
type SummaryReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Summary     staged.ChangeSummary
	Stats       annotate.LineStats
}

// SummaryReportWriter writes staged change summaries.
type SummaryReportWriter interface {
	Write(report *SummaryReport, options OutputOptions) error
}

// NewSummaryReportWriter creates a summary writer for the specified format.
func NewSummaryReportWriter(format OutputFormat) SummaryReportWriter {
	switch format {
	case FormatJSON:
		return &JSONSummaryWriter{}
	case FormatCSV:
		return &CSVSummaryWriter{}
	case FormatMarkdown:
		return &MarkdownSummaryWriter{}
	case FormatCI:
		return &CISummaryWriter{}
	default:
		return &ConsoleSummaryWriter{}
	}
}
