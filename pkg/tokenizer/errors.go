// Package tokenizer error types for WSV scanning.
package tokenizer

import (
	"errors"
	"fmt"
)

// Scanning errors form a closed set. Every fault produced by a Tokenizer is a
// *ParseError wrapping exactly one of these sentinels, so callers can match
// with errors.Is.
var (
	// ErrStringNotClosed indicates a quoted value reached a raw line feed or
	// the end of input before its closing quote.
	ErrStringNotClosed = errors.New("string not closed")

	// ErrInvalidDoubleQuoteAfterValue indicates a '"' immediately followed a
	// bare value with no separating whitespace.
	ErrInvalidDoubleQuoteAfterValue = errors.New("invalid double quote after value")

	// ErrInvalidCharacterAfterString indicates a closed quoted value was
	// immediately followed by a character other than whitespace, '#', a line
	// feed, or the end of input.
	ErrInvalidCharacterAfterString = errors.New("invalid character after string")

	// ErrInvalidStringLineBreak indicates a `"/` escape sequence inside a
	// quoted value was not immediately followed by a closing '"'.
	ErrInvalidStringLineBreak = errors.New("invalid string line break")
)

// ParseError is a WSV scanning error with position information.
type ParseError struct {
	// Line is the line where the error occurred (1-indexed).
	Line int
	// Column is the column where the error occurred (1-indexed, in code points).
	Column int
	// Offset is the byte offset of the error; zero for reader-backed streams.
	Offset int
	// Err is one of the sentinel errors above.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the sentinel error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Location returns the error's position in the source text.
func (e *ParseError) Location() Location {
	return Location{Line: e.Line, Column: e.Column, Offset: e.Offset}
}

// newParseError wraps a sentinel with the given location.
func newParseError(kind error, loc Location) *ParseError {
	return &ParseError{Line: loc.Line, Column: loc.Column, Offset: loc.Offset, Err: kind}
}
