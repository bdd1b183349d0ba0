package annotate

import "strings"

// Markers prefixed to added and removed content lines.
const (
	AddedMarker   = "[ADDED_LINE]: "
	RemovedMarker = "[REMOVED_LINE]: "
)

// headerPrefixes are diff metadata lines that start with '+' or '-' or that
// must never be mistaken for content.
var headerPrefixes = []string{
	"+++",
	"---",
	"diff --git",
	"index",
	"old mode",
	"new mode",
	"deleted file mode",
	"new file mode",
	"copy from",
	"copy to",
	"rename from",
	"rename to",
	"similarity index",
	"dissimilarity index",
	"Binary files",
	"@@",
}

// LineKind classifies a single line of a unified diff.
type LineKind int

const (
	LineContext LineKind = iota
	LineHeader
	LineAdded
	LineRemoved
)

// Classify returns the kind of a single diff line.
func Classify(line string) LineKind {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return LineHeader
		}
	}
	switch {
	case strings.HasPrefix(line, "+"):
		return LineAdded
	case strings.HasPrefix(line, "-"):
		return LineRemoved
	default:
		return LineContext
	}
}

// Annotate rewrites added and removed content lines of a unified diff with
// explicit markers so that a reader unfamiliar with diff syntax can tell them
// apart. Metadata and context lines are kept as they are. The output has the
// same number of lines as the input.
//
// Only the first byte of a line is inspected, so the text after a marker is
// copied verbatim even when it starts with '+' or '-'.
func Annotate(diff string) string {
	lines := splitLines(diff)
	for i, line := range lines {
		switch Classify(line) {
		case LineAdded:
			lines[i] = AddedMarker + line[1:]
		case LineRemoved:
			lines[i] = RemovedMarker + line[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// LineStats counts content lines in a diff.
type LineStats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Stats counts added and removed content lines using the same rules as
// Annotate.
func Stats(diff string) LineStats {
	var s LineStats
	for _, line := range splitLines(diff) {
		switch Classify(line) {
		case LineAdded:
			s.Added++
		case LineRemoved:
			s.Removed++
		}
	}
	return s
}

// splitLines splits on '\n', drops one trailing '\r' per line and does not
// produce an empty final line for a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
