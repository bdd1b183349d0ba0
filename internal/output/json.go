package output

import (
	"encoding/json"
	"fmt"
)

// JSONSummaryWriter writes staged change summaries as JSON.
type JSONSummaryWriter struct{}

// JSONSummaryReport is the JSON output structure for a staged change summary.
type JSONSummaryReport struct {
	RepoPath          string    `json:"repo"`
	GeneratedAt       string    `json:"generatedAt"`
	Stats             JSONStats `json:"stats"`
	BinaryFileChanges []string  `json:"binaryFileChanges"`
	StructureChanges  []string  `json:"structureChanges"`
}

// JSONStats holds the diff line counts in JSON format.
type JSONStats struct {
	AddedLines   int `json:"addedLines"`
	RemovedLines int `json:"removedLines"`
}

// Write outputs the staged change summary as JSON.
func (w *JSONSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	jsonReport := JSONSummaryReport{
		RepoPath:          report.RepoPath,
		GeneratedAt:       report.GeneratedAt.Format(reportDateTimeLayout),
		Stats:             JSONStats{AddedLines: report.Stats.Added, RemovedLines: report.Stats.Removed},
		BinaryFileChanges: nonNil(report.Summary.BinaryFileChanges),
		StructureChanges:  nonNil(report.Summary.StructureChanges),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}

// nonNil keeps empty lists as [] rather than null.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
