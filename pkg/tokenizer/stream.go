package tokenizer

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Stream is a one-character-lookahead cursor over WSV source text.
//
// PeekChar returns the next character without consuming it; NextChar consumes
// it and advances the stream's Location. Both report ok=false at end of input.
// Implementations fetch from their upstream source at most once per position.
type Stream interface {
	// PeekChar returns the next character without consuming it.
	PeekChar() (rune, bool)
	// NextChar consumes and returns the next character.
	NextChar() (rune, bool)
	// Location returns the position of the next unconsumed character.
	Location() Location
	// Err returns the first non-EOF error encountered by the upstream
	// source, or nil. String-backed streams always return nil.
	Err() error
}

// ByteStream is a Stream over a contiguous in-memory buffer that supports
// zero-copy extraction of consumed spans. The tokenizer detects this
// capability with a type assertion and uses it to return values that share
// the source string's backing array instead of copying.
type ByteStream interface {
	Stream
	// BytePosition returns the byte offset of the next unconsumed character.
	BytePosition() int
	// SliceFrom returns the source text from start up to the current
	// position, without copying.
	SliceFrom(start int) string
}

// NewStream creates a string-backed Stream. The returned stream implements
// ByteStream, so values extracted from it can share the input's memory.
// The input must outlive any token text borrowed from it.
func NewStream(input string) Stream {
	return &stringStream{source: input, loc: startLocation()}
}

// NewStreamFromReader creates a Stream that pulls characters from an
// io.Reader one at a time, suitable for sources too large to hold in memory.
// If the reader does not implement io.RuneReader it is wrapped in a
// bufio.Reader. No read-ahead is performed beyond the single lookahead slot,
// so the stream interoperates with blocking sources.
func NewStreamFromReader(r io.Reader) Stream {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &readerStream{source: rr, loc: startLocation()}
}

// stringStream is the in-memory implementation. The string itself is the
// lookahead buffer, so peeking is a plain decode at the current offset.
type stringStream struct {
	source string
	loc    Location
}

func (s *stringStream) PeekChar() (rune, bool) {
	if s.loc.Offset >= len(s.source) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(s.source[s.loc.Offset:])
	return ch, true
}

func (s *stringStream) NextChar() (rune, bool) {
	if s.loc.Offset >= len(s.source) {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(s.source[s.loc.Offset:])
	s.loc.advance(ch, size)
	return ch, true
}

func (s *stringStream) Location() Location {
	return s.loc
}

func (s *stringStream) Err() error {
	return nil
}

func (s *stringStream) BytePosition() int {
	return s.loc.Offset
}

func (s *stringStream) SliceFrom(start int) string {
	return s.source[start:s.loc.Offset]
}

// readerStream pulls characters from an io.RuneReader with a one-slot
// lookahead buffer. Byte offsets are not tracked; Location.Offset stays 0.
type readerStream struct {
	source    io.RuneReader
	loc       Location
	peeked    rune
	hasPeeked bool
	done      bool
	err       error
}

// fill loads the lookahead slot if it is empty and the source is not exhausted.
func (s *readerStream) fill() {
	if s.hasPeeked || s.done {
		return
	}
	ch, _, err := s.source.ReadRune()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		return
	}
	s.peeked = ch
	s.hasPeeked = true
}

func (s *readerStream) PeekChar() (rune, bool) {
	s.fill()
	if !s.hasPeeked {
		return 0, false
	}
	return s.peeked, true
}

func (s *readerStream) NextChar() (rune, bool) {
	s.fill()
	if !s.hasPeeked {
		return 0, false
	}
	s.hasPeeked = false
	s.loc.advance(s.peeked, 0)
	return s.peeked, true
}

func (s *readerStream) Location() Location {
	return s.loc
}

func (s *readerStream) Err() error {
	return s.err
}
