package git

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads previously captured reports from files instead of
// running git. An empty path yields an empty report.
type FileSource struct {
	StatusPath  string
	NumstatPath string
	DiffPath    string
}

// ReadReports reads the configured files.
func (s *FileSource) ReadReports(_ context.Context) (*StagedReports, error) {
	status, err := readOptionalFile(s.StatusPath)
	if err != nil {
		return nil, fmt.Errorf("read status report: %w", err)
	}
	numstat, err := readOptionalFile(s.NumstatPath)
	if err != nil {
		return nil, fmt.Errorf("read numstat report: %w", err)
	}
	diff, err := readOptionalFile(s.DiffPath)
	if err != nil {
		return nil, fmt.Errorf("read diff: %w", err)
	}

	return &StagedReports{
		Status:  status,
		Numstat: numstat,
		Diff:    string(diff),
	}, nil
}

func readOptionalFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}
