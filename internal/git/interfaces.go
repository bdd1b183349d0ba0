package git

import "context"

// ReportSource provides the raw staged-change reports.
// This abstraction allows for easier testing and reading captured output.
type ReportSource interface {
	// ReadReports returns the status, numstat and diff reports.
	ReadReports(ctx context.Context) (*StagedReports, error)
}

// Compile-time interface conformance checks.
var (
	_ ReportSource = (*Collector)(nil)
	_ ReportSource = (*FileSource)(nil)
)
