package git

import "strings"

// StagedReports holds the verbatim output of the git commands that describe
// the staged change set.
type StagedReports struct {
	// Status is `git status --porcelain=v1 -z --untracked-files=no` output.
	Status []byte
	// Numstat is `git diff --staged --numstat -z` output.
	Numstat []byte
	// Diff is `git diff --staged` output.
	Diff string
}

// HasStagedChanges reports whether the status report lists an entry or the
// diff has content. A captured diff without a status report still counts.
func (r *StagedReports) HasStagedChanges() bool {
	for _, b := range r.Status {
		if b != 0 {
			return true
		}
	}
	return strings.TrimSpace(r.Diff) != ""
}

// CollectOptions configures the git CLI collector.
type CollectOptions struct {
	RepoPath string
	// GitBinary overrides the git executable. Defaults to "git" on PATH.
	GitBinary string
	// Logf, when set, receives one line per git invocation.
	Logf func(format string, args ...any)
}

var (
	statusArgs  = []string{"status", "--porcelain=v1", "-z", "--untracked-files=no"}
	numstatArgs = []string{"diff", "--staged", "--numstat", "-z"}
	diffArgs    = []string{"diff", "--staged"}
)
