package staged

import (
	"fmt"
	"sort"
)

// statusEntry is one record of `git status --porcelain=v1 -z` output.
type statusEntry struct {
	codes   string
	path    string // new path for renames and copies
	oldPath string
}

func (e statusEntry) indexStatus() StatusCode {
	return StatusCode(e.codes[0])
}

// Classify fuses `git status --porcelain=v1 -z --untracked-files=no` output
// and `git diff --staged --numstat -z` output into a ChangeSummary.
//
// An empty status report yields an empty summary and the numstat report is
// not read. On error no partial summary is returned.
func Classify(status, numstat []byte) (ChangeSummary, error) {
	var summary ChangeSummary
	if isBlank(status) {
		return summary, nil
	}

	binaryMap, err := BuildBinaryStatusMap(numstat)
	if err != nil {
		return ChangeSummary{}, fmt.Errorf("build binary status map: %w", err)
	}

	cur := newFieldCursor(status)
	for record := 0; ; record++ {
		lead, ok := cur.nextNonEmpty()
		if !ok {
			break
		}

		entry, ok, err := readStatusEntry(cur, lead, record)
		if err != nil {
			return ChangeSummary{}, err
		}
		if !ok {
			continue
		}
		summary.add(entry, binaryMap)
	}

	summary.finalize()
	return summary, nil
}

// readStatusEntry decodes the record starting at lead. It returns ok=false
// for leads too short to hold a status and a path.
func readStatusEntry(cur *fieldCursor, lead field, record int) (statusEntry, bool, error) {
	leadStr, err := decodeField(lead, reportStatus, "lead", record)
	if err != nil {
		return statusEntry{}, false, err
	}
	if len(leadStr) < 3 {
		return statusEntry{}, false, nil
	}

	entry := statusEntry{codes: leadStr[:2], path: leadStr[3:]}
	if !entry.indexStatus().HasOldPath() {
		return entry, true, nil
	}

	oldField, ok := cur.next()
	if !ok || len(oldField.data) == 0 {
		return statusEntry{}, false, &ParseError{
			Report: reportStatus,
			Code:   entry.codes,
			Record: record,
			Offset: lead.offset,
			Err:    fmt.Errorf("%w: missing old path", ErrTruncated),
		}
	}
	entry.oldPath, err = decodeField(oldField, reportStatus, "old path", record)
	if err != nil {
		return statusEntry{}, false, err
	}

	return entry, true, nil
}

func (s *ChangeSummary) add(e statusEntry, binaryMap BinaryStatusMap) {
	binary := binaryMap.IsBinary(e.path)

	switch e.indexStatus() {
	case StatusAdded:
		if binary {
			s.addBinary("added binary file: %s", e.path)
		}
	case StatusDeleted:
		s.addStructure("deleted file: %s", e.path)
	case StatusRenamed:
		if e.oldPath == "" || e.path == "" {
			return
		}
		s.addStructure("renamed: %s to %s", e.oldPath, e.path)
		if binary {
			s.addBinary("renamed binary file: %s to %s", e.oldPath, e.path)
		}
	case StatusCopied:
		if e.oldPath == "" || e.path == "" {
			return
		}
		s.addStructure("copied: %s to %s", e.oldPath, e.path)
		if binary {
			s.addBinary("copied binary file to: %s", e.path)
		}
	case StatusModified:
		if binary {
			s.addBinary("modified binary file: %s", e.path)
		}
	case StatusTypeChanged:
		s.addStructure("type changed for: %s", e.path)
		if binary {
			s.addBinary("type changed to binary: %s", e.path)
		}
	}
}

func (s *ChangeSummary) addBinary(format string, args ...any) {
	s.BinaryFileChanges = append(s.BinaryFileChanges, fmt.Sprintf(format, args...))
}

func (s *ChangeSummary) addStructure(format string, args ...any) {
	s.StructureChanges = append(s.StructureChanges, fmt.Sprintf(format, args...))
}

func (s *ChangeSummary) finalize() {
	sort.Strings(s.BinaryFileChanges)
	sort.Strings(s.StructureChanges)
}
