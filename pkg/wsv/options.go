// Package wsv provides configurable options for WSV parsing and writing.
package wsv

import "fmt"

// ReaderOptions configures WSV parsing behavior.
type ReaderOptions struct {
	// ColumnCountHint pre-sizes each row's cell slice to avoid reallocation
	// when the typical column count is known. It does not validate anything;
	// rows may be shorter or longer.
	// Default: 0 (no pre-sizing)
	ColumnCountHint int
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{ColumnCountHint: 0}
}

// Alignment selects how the writer lays out columns.
type Alignment int

const (
	// AlignPacked separates cells with a single space and applies no
	// padding. This is the only mode that can be produced lazily, without
	// buffering the full document; choose it for unbounded-size output.
	AlignPacked Alignment = iota
	// AlignLeft pads each cell on the right to its column's maximum
	// rendered width. Requires two passes over the full row sequence.
	AlignLeft
	// AlignRight pads each cell on the left to its column's maximum
	// rendered width. Requires two passes over the full row sequence.
	AlignRight
)

// String returns the string representation of the Alignment.
func (a Alignment) String() string {
	switch a {
	case AlignPacked:
		return "packed"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// WriterOptions configures WSV writing behavior.
type WriterOptions struct {
	// Alignment is the column layout mode.
	// Default: AlignPacked
	Alignment Alignment
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{Alignment: AlignPacked}
}
