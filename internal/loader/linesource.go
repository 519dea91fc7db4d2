package loader

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource yields the lines of a reader one at a time and counts how many
// have been consumed.
type LineSource struct {
	reader *bufio.Reader
	line   int
}

// NewLineSource wraps r. Lines may be of any length.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. ok is false at end
// of input; err is non-nil only when the underlying reader fails.
func (ls *LineSource) ReadLine() (line string, ok bool, err error) {
	line, err = ls.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	ls.line++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

// CurrentLine is the number of lines consumed so far.
func (ls *LineSource) CurrentLine() int { return ls.line }
