package output

import (
	"encoding/json"
	"fmt"
)

// CISummaryWriter writes staged change summaries as NDJSON (one JSON object per line) for CI pipelines.
type CISummaryWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type             string `json:"type"`
	BinaryChanges    int    `json:"binaryChanges"`
	StructureChanges int    `json:"structureChanges"`
	AddedLines       int    `json:"addedLines"`
	RemovedLines     int    `json:"removedLines"`
}

// CIChangeEntry represents a single classified change in CI output.
type CIChangeEntry struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Change   string `json:"change"`
}

// Write outputs the staged change summary as NDJSON.
func (w *CISummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)

	summary := CISummary{
		Type:             "summary",
		BinaryChanges:    len(report.Summary.BinaryFileChanges),
		StructureChanges: len(report.Summary.StructureChanges),
		AddedLines:       report.Stats.Added,
		RemovedLines:     report.Stats.Removed,
	}
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encode CI summary: %w", err)
	}

	for _, row := range changeRows(report) {
		entry := CIChangeEntry{Type: "change", Category: row.Category, Change: row.Description}
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("encode CI entry: %w", err)
		}
	}
	return nil
}
