package output

import (
	"encoding/csv"
	"strconv"
)

// CSVSummaryWriter writes staged change summaries as CSV, one change per row.
type CSVSummaryWriter struct{}

// Write outputs the staged change summary as CSV.
func (w *CSVSummaryWriter) Write(report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"Index", "Category", "Change"}); err != nil {
		return err
	}
	for i, row := range changeRows(report) {
		if err := writer.Write([]string{strconv.Itoa(i + 1), row.Category, row.Description}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
