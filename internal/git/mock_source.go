package git

import "context"

// MockReportSource is a test double for Collector.
// It allows tests to provide predefined reports without needing a real Git repository.
type MockReportSource struct {
	Reports *StagedReports
	Error   error
}

// NewMockReportSource creates a new MockReportSource with the given data.
func NewMockReportSource(reports *StagedReports, err error) *MockReportSource {
	return &MockReportSource{
		Reports: reports,
		Error:   err,
	}
}

// ReadReports returns the predefined reports or error.
func (m *MockReportSource) ReadReports(_ context.Context) (*StagedReports, error) {
	return m.Reports, m.Error
}

// Compile-time interface conformance check.
var _ ReportSource = (*MockReportSource)(nil)
