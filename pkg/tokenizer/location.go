package tokenizer

import "fmt"

// Location identifies a position in WSV source text.
//
// Line and Column are 1-indexed and counted in Unicode code points: every
// consumed code point advances Column by one, and consuming a line feed
// increments Line and resets Column to 1. Offset is the byte offset of the
// position and is only meaningful for string-backed streams; reader-backed
// streams leave it at zero.
type Location struct {
	Line   int
	Column int
	Offset int
}

// startLocation returns the location of the first character of a document.
func startLocation() Location {
	return Location{Line: 1, Column: 1, Offset: 0}
}

// advance updates the location for one consumed character. size is the
// character's encoded byte length and is only used to maintain Offset.
func (l *Location) advance(ch rune, size int) {
	if ch == '\n' {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
	l.Offset += size
}

// String returns the location formatted as "line L, column C".
func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}
