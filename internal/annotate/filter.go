package annotate

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const fileHeaderPrefix = "diff --git "

// ExcludeFiles drops the per-file sections of a unified diff whose path
// matches any of the doublestar patterns. Text before the first file header
// is kept. Patterns that fail to compile never match.
func ExcludeFiles(diff string, patterns []string) string {
	if len(patterns) == 0 || diff == "" {
		return diff
	}

	var b strings.Builder
	keep := true
	for _, line := range strings.SplitAfter(diff, "\n") {
		if strings.HasPrefix(line, fileHeaderPrefix) {
			keep = !MatchesAny(sectionPath(line), patterns)
		}
		if keep {
			b.WriteString(line)
		}
	}
	return b.String()
}

// MatchesAny reports whether path matches one of the patterns.
func MatchesAny(path string, patterns []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// sectionPath extracts the destination path from a "diff --git a/X b/Y"
// header. Quoted paths are unquoted when they use no escapes.
func sectionPath(header string) string {
	header = strings.TrimRight(strings.TrimPrefix(header, fileHeaderPrefix), "\r\n")

	if strings.HasSuffix(header, `"`) {
		if idx := strings.LastIndex(header[:len(header)-1], ` "`); idx != -1 {
			return strings.TrimPrefix(header[idx+2:len(header)-1], "b/")
		}
	}
	if idx := strings.LastIndex(header, " b/"); idx != -1 {
		return header[idx+3:]
	}
	return header
}
