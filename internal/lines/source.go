// Package lines provides a forward-only line reader with one line of
// lookahead.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/frederic-klein/uv2brew/internal/logging"
)

// ErrEndOfInput is returned by Peek and Next when no line remains.
var ErrEndOfInput = errors.New("end of input reached")

// Source reads an input stream one line at a time. The next line is
// always buffered so it can be inspected before being consumed.
type Source struct {
	reader  *bufio.Reader
	log     *logging.Logger
	buffer  string
	hasNext bool
	line    int
	err     error
}

// NewSource creates a source over r and buffers its first line.
func NewSource(r io.Reader, log *logging.Logger) *Source {
	if log == nil {
		log = logging.Nop()
	}
	s := &Source{
		reader: bufio.NewReader(r),
		log:    log,
	}
	s.fill()
	return s
}

// fill reads the line following the last returned one into the buffer.
func (s *Source) fill() {
	if s.err != nil {
		s.hasNext = false
		return
	}

	text, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = fmt.Errorf("reading line %d: %w", s.line+1, err)
		s.buffer = ""
		s.hasNext = false
		return
	}
	if text == "" {
		s.buffer = ""
		s.hasNext = false
		s.log.Debug().Int("lines", s.line).Msg("end of input reached")
		return
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	s.buffer = text
	s.hasNext = true
	s.log.Debug().Int("line", s.line+1).Str("text", text).Msg("read")
}

// HasNext reports whether a line remains to be read.
func (s *Source) HasNext() bool {
	return s.hasNext
}

// Peek returns the next line without consuming it.
func (s *Source) Peek() (string, error) {
	if !s.hasNext {
		return "", s.endErr("cannot peek past end of input")
	}
	return s.buffer, nil
}

// Next returns the next line and advances past it.
func (s *Source) Next() (string, error) {
	if !s.hasNext {
		return "", s.endErr("cannot read past end of input")
	}
	result := s.buffer
	s.line++
	s.fill()
	return result, nil
}

// Line returns the number of lines consumed so far.
func (s *Source) Line() int {
	return s.line
}

// Err returns the read error that ended the input early, if any.
func (s *Source) Err() error {
	return s.err
}

func (s *Source) endErr(msg string) error {
	if s.err != nil {
		return s.err
	}
	return fmt.Errorf("%s after line %d: %w", msg, s.line, ErrEndOfInput)
}
