package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

const (
	categoryBinary    = "binary"
	categoryStructure = "structure"
)

// changeRow is one classified change with its category.
type changeRow struct {
	Category    string
	Description string
}

// changeRows flattens a summary into rows, binary changes first.
func changeRows(report *SummaryReport) []changeRow {
	rows := make([]changeRow, 0, report.Summary.Len())
	for _, d := range report.Summary.BinaryFileChanges {
		rows = append(rows, changeRow{Category: categoryBinary, Description: d})
	}
	for _, d := range report.Summary.StructureChanges {
		rows = append(rows, changeRow{Category: categoryStructure, Description: d})
	}
	return rows
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// WriteText writes plain text such as an annotated diff or a prompt, followed
// by a newline when the text does not already end with one.
func WriteText(text string, outputPath string) error {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// truncateMessage shortens msg to at most maxLen bytes without splitting a
// UTF-8 sequence.
func truncateMessage(msg string, maxLen int) string {
	if len(msg) <= maxLen {
		return msg
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut] + "..."
}
