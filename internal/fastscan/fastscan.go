// Package fastscan implements a high-performance WSV validity scanner.
//
// This scanner is optimized for the common case of checking whether input is
// well-formed without needing the values. It bypasses token construction and
// value materialization entirely, walking the bytes directly with an ASCII
// fast path, so validation allocates nothing on well-formed input.
//
// It reports exactly the same errors, at the same locations, as
// pkg/tokenizer; the cross-check lives in this package's tests.
package fastscan

import (
	"unicode/utf8"

	"github.com/shapestone/shape-wsv/pkg/tokenizer"
)

// Validate scans input and returns the first WSV syntax error, or nil if the
// input is well-formed. Errors are *tokenizer.ParseError values.
func Validate(input string) error {
	s := &scanner{source: input, line: 1, col: 1}
	return s.scan()
}

// scanner walks the source bytes, tracking line and column in code points.
type scanner struct {
	source string
	pos    int
	line   int
	col    int
}

func (s *scanner) scan() error {
	for {
		s.skipWhitespace()

		ch, size, ok := s.peek()
		if !ok {
			return nil
		}

		switch {
		case ch == '"':
			s.advance(ch, size)
			if err := s.scanQuoted(); err != nil {
				return err
			}
		case ch == '#':
			s.skipComment()
		default:
			s.advance(ch, size)
			if err := s.scanBare(ch); err != nil {
				return err
			}
		}
	}
}

// scanQuoted validates a quoted value; the opening quote has been consumed.
func (s *scanner) scanQuoted() error {
	for {
		ch, size, ok := s.peek()
		if !ok || ch == '\n' {
			return s.fail(tokenizer.ErrStringNotClosed)
		}
		s.advance(ch, size)
		if ch != '"' {
			continue
		}

		next, nextSize, ok := s.peek()
		switch {
		case ok && next == '"':
			s.advance(next, nextSize)
		case ok && next == '/':
			s.advance(next, nextSize)
			third, thirdSize, ok := s.peek()
			if !ok || third != '"' {
				return s.fail(tokenizer.ErrInvalidStringLineBreak)
			}
			s.advance(third, thirdSize)
		default:
			// Closing quote.
			if ok && next != '\n' && next != '#' && !tokenizer.IsWhitespace(next) {
				return s.fail(tokenizer.ErrInvalidCharacterAfterString)
			}
			return nil
		}
	}
}

// scanBare validates a bare value; its first character has been consumed.
// The single-character token "-" is the null cell, which a quote may follow
// legally; any other bare value directly followed by a quote is a fault.
func (s *scanner) scanBare(first rune) error {
	length := 1
	for {
		ch, size, ok := s.peek()
		if !ok || ch == '\n' || ch == '#' || tokenizer.IsWhitespace(ch) {
			return nil
		}
		if ch == '"' {
			if first == '-' && length == 1 {
				return nil
			}
			return s.fail(tokenizer.ErrInvalidDoubleQuoteAfterValue)
		}
		s.advance(ch, size)
		length++
	}
}

// skipComment consumes '#' and the remainder of the line, leaving the line
// feed unconsumed.
func (s *scanner) skipComment() {
	for {
		ch, size, ok := s.peek()
		if !ok || ch == '\n' {
			return
		}
		s.advance(ch, size)
	}
}

func (s *scanner) skipWhitespace() {
	for {
		ch, size, ok := s.peek()
		if !ok {
			return
		}
		if ch == '\n' {
			s.advance(ch, size)
			continue
		}
		if !tokenizer.IsWhitespace(ch) {
			return
		}
		s.advance(ch, size)
	}
}

// peek decodes the next character without consuming it. Single-byte
// characters skip full UTF-8 decoding.
func (s *scanner) peek() (rune, int, bool) {
	if s.pos >= len(s.source) {
		return 0, 0, false
	}
	b := s.source[s.pos]
	if b < utf8.RuneSelf {
		return rune(b), 1, true
	}
	ch, size := utf8.DecodeRuneInString(s.source[s.pos:])
	return ch, size, true
}

func (s *scanner) advance(ch rune, size int) {
	s.pos += size
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

func (s *scanner) fail(kind error) error {
	return &tokenizer.ParseError{Line: s.line, Column: s.col, Offset: s.pos, Err: kind}
}
