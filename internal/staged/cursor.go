package staged

import (
	"bytes"
	"unicode/utf8"
)

// field is one NUL-delimited token of a -z report.
type field struct {
	data   []byte
	offset int
}

// fieldCursor walks a NUL-delimited report one field at a time. Record
// shapes are variable-width, so callers pull fields as the content of the
// lead tells them to.
type fieldCursor struct {
	b   []byte
	pos int
}

func newFieldCursor(b []byte) *fieldCursor {
	return &fieldCursor{b: b}
}

// next returns the next field, empty or not. A final field without a
// terminating NUL is still returned.
func (c *fieldCursor) next() (field, bool) {
	if c.pos >= len(c.b) {
		return field{}, false
	}
	start := c.pos
	end := len(c.b)
	if j := bytes.IndexByte(c.b[start:], 0); j != -1 {
		end = start + j
	}
	c.pos = end + 1
	return field{data: c.b[start:end], offset: start}, true
}

// nextNonEmpty skips empty fields and returns the first non-empty one.
func (c *fieldCursor) nextNonEmpty() (field, bool) {
	for {
		f, ok := c.next()
		if !ok {
			return field{}, false
		}
		if len(f.data) > 0 {
			return f, true
		}
	}
}

// isBlank reports whether b has no bytes other than NUL.
func isBlank(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func decodeField(f field, report, name string, record int) (string, error) {
	if !utf8.Valid(f.data) {
		return "", &DecodeError{Report: report, Field: name, Record: record, Offset: f.offset}
	}
	return string(f.data), nil
}
