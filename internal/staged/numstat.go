package staged

import (
	"fmt"
	"strconv"
	"strings"
)

type numstatKind int

const (
	numstatPath numstatKind = iota
	numstatRenameOrCopy
	numstatUnrecognized
)

// numstatRecord is one parsed record of `git diff --numstat -z` output.
type numstatRecord struct {
	kind    numstatKind
	path    string // new path for renames and copies
	oldPath string
	binary  bool
}

// BuildBinaryStatusMap parses `git diff --staged --numstat -z` output into a
// path to binary-flag map.
//
// Records git prints in a shape this parser does not know are skipped. A
// rename or copy lead that is not followed by both of its path fields is an
// error, since the fields after it can no longer be attributed to records.
func BuildBinaryStatusMap(numstat []byte) (BinaryStatusMap, error) {
	binaryMap := make(BinaryStatusMap)
	if isBlank(numstat) {
		return binaryMap, nil
	}

	cur := newFieldCursor(numstat)
	for record := 0; ; record++ {
		lead, ok := cur.nextNonEmpty()
		if !ok {
			break
		}

		rec, err := readNumstatRecord(cur, lead, record)
		if err != nil {
			return nil, err
		}
		if rec.kind == numstatUnrecognized {
			continue
		}
		binaryMap[rec.path] = rec.binary
	}

	return binaryMap, nil
}

func readNumstatRecord(cur *fieldCursor, lead field, record int) (numstatRecord, error) {
	leadStr, err := decodeField(lead, reportNumstat, "lead", record)
	if err != nil {
		return numstatRecord{}, err
	}

	parts := strings.Split(leadStr, "\t")
	switch len(parts) {
	case 3:
		binary := isBinaryStat(parts[0], parts[1])
		if parts[2] == "" || isSimilarityScore(parts[2]) {
			return readNumstatPathPair(cur, lead, record, binary)
		}
		return numstatRecord{kind: numstatPath, path: parts[2], binary: binary}, nil
	case 2:
		return readNumstatPathPair(cur, lead, record, isBinaryStat(parts[0], parts[1]))
	default:
		return numstatRecord{kind: numstatUnrecognized}, nil
	}
}

func readNumstatPathPair(cur *fieldCursor, lead field, record int, binary bool) (numstatRecord, error) {
	oldField, ok := cur.nextNonEmpty()
	if !ok {
		return numstatRecord{}, &ParseError{
			Report: reportNumstat,
			Record: record,
			Offset: lead.offset,
			Err:    fmt.Errorf("%w: missing old path", ErrTruncated),
		}
	}
	newField, ok := cur.nextNonEmpty()
	if !ok {
		return numstatRecord{}, &ParseError{
			Report: reportNumstat,
			Record: record,
			Offset: lead.offset,
			Err:    fmt.Errorf("%w: missing new path", ErrTruncated),
		}
	}

	newPath, err := decodeField(newField, reportNumstat, "new path", record)
	if err != nil {
		return numstatRecord{}, err
	}

	return numstatRecord{
		kind:    numstatRenameOrCopy,
		path:    newPath,
		oldPath: string(oldField.data),
		binary:  binary,
	}, nil
}

// isBinaryStat reports whether git printed the binary placeholder "-" for
// both line counts.
func isBinaryStat(added, deleted string) bool {
	return added == "-" && deleted == "-"
}

// isSimilarityScore matches a rename/copy score such as "87%".
func isSimilarityScore(s string) bool {
	if len(s) < 2 || s[len(s)-1] != '%' {
		return false
	}
	_, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	return err == nil
}
