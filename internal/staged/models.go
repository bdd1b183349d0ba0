package staged

// ChangeSummary describes the staged changes that a unified diff does not
// convey well: binary file events and structural events such as deletions,
// renames, copies and type changes.
//
// A single event may appear in both lists. A renamed binary file yields one
// "renamed: X to Y" structure entry and one "renamed binary file: X to Y"
// binary entry.
type ChangeSummary struct {
	BinaryFileChanges []string `json:"binaryFileChanges"`
	StructureChanges  []string `json:"structureChanges"`
}

// IsEmpty reports whether the summary holds no entries.
func (s ChangeSummary) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the total number of entries across both lists.
func (s ChangeSummary) Len() int {
	return len(s.BinaryFileChanges) + len(s.StructureChanges)
}

// BinaryStatusMap maps a staged path (the new path for renames and copies)
// to whether git reported it as binary in the numstat output.
type BinaryStatusMap map[string]bool

// IsBinary returns the binary flag for path. Unknown paths are not binary.
func (m BinaryStatusMap) IsBinary(path string) bool {
	return m[path]
}

// StatusCode is a single column of a porcelain v1 status code.
type StatusCode byte

const (
	StatusUnmodified  StatusCode = ' '
	StatusModified    StatusCode = 'M'
	StatusTypeChanged StatusCode = 'T'
	StatusAdded       StatusCode = 'A'
	StatusDeleted     StatusCode = 'D'
	StatusRenamed     StatusCode = 'R'
	StatusCopied      StatusCode = 'C'
	StatusUnmerged    StatusCode = 'U'
	StatusUntracked   StatusCode = '?'
	StatusIgnored     StatusCode = '!'
)

var statusMeanings = map[StatusCode]string{
	StatusUnmodified:  "unmodified",
	StatusModified:    "modified",
	StatusTypeChanged: "type changed",
	StatusAdded:       "added",
	StatusDeleted:     "deleted",
	StatusRenamed:     "renamed",
	StatusCopied:      "copied",
	StatusUnmerged:    "updated but unmerged",
	StatusUntracked:   "untracked",
	StatusIgnored:     "ignored",
}

// String returns the human-readable meaning of the status code.
func (c StatusCode) String() string {
	if s, ok := statusMeanings[c]; ok {
		return s
	}
	return "unknown"
}

// HasOldPath reports whether records with this code carry a second path field.
func (c StatusCode) HasOldPath() bool {
	return c == StatusRenamed || c == StatusCopied
}
