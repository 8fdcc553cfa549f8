package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	FieldSep = '\t'

	// maxLineSize a single COHA row never comes close, titles in the sources table are the longest
	maxLineSize = 16 * 1024 * 1024
)

type (
	// TSVError structural problem found in a tab separated file, always carry the file path
	TSVError struct {
		Path   string
		Reason string
	}

	// FieldCursor walk the fields of one line without allocating a []string,
	// used on the token stream hot path
	FieldCursor struct {
		path string
		rest string
		done bool
	}
)

func (e *TSVError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func NewTSVError(path string, format string, v ...interface{}) *TSVError {
	return &TSVError{Path: path, Reason: fmt.Sprintf(format, v...)}
}

// TrimEOL strip trailing line terminators
func TrimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

func Split(line string) []string {
	return strings.Split(TrimEOL(line), string(FieldSep))
}

// NewScanner a line scanner with enough buffer for the longest sources rows
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// CheckHeader consume one line and compare it field by field with expected
func CheckHeader(path string, sc *bufio.Scanner, expected []string) error {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return NewTSVError(path, "header missing")
	}
	header := Split(sc.Text())
	if len(header) != len(expected) {
		return NewTSVError(path, "unexpected headers")
	}
	for i := range header {
		if header[i] != expected[i] {
			return NewTSVError(path, "unexpected headers")
		}
	}
	return nil
}

func NewFieldCursor(path, line string) FieldCursor {
	return FieldCursor{path: path, rest: TrimEOL(line)}
}

// Next return the next field, a TSVError when the row has no more fields
func (c *FieldCursor) Next() (string, error) {
	if c.done {
		return "", NewTSVError(c.path, "TSV field missing")
	}
	idx := strings.IndexByte(c.rest, FieldSep)
	if idx < 0 {
		c.done = true
		return c.rest, nil
	}
	field := c.rest[:idx]
	c.rest = c.rest[idx+1:]
	return field, nil
}

// Skip consume a field whose value is not used
func (c *FieldCursor) Skip() error {
	_, err := c.Next()
	return err
}

// Int non negative integer field, ids are never negative
func (c *FieldCursor) Int() (int, error) {
	field, err := c.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(field, 10, 63)
	if err != nil {
		return 0, NewTSVError(c.path, "invalid integer %q", field)
	}
	return int(v), nil
}

func (c *FieldCursor) Uint32() (uint32, error) {
	field, err := c.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, NewTSVError(c.path, "invalid integer %q", field)
	}
	return uint32(v), nil
}

func (c *FieldCursor) Uint16() (uint16, error) {
	field, err := c.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return 0, NewTSVError(c.path, "invalid integer %q", field)
	}
	return uint16(v), nil
}
