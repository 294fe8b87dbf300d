// Package wsv provides WSV (whitespace separated value) parsing and writing.
//
// WSV is a line-oriented tabular text format: each line is a row of optional
// string cells separated by runs of whitespace. Cells may be double-quoted
// ('""' escapes a literal quote, '"/"' escapes a line feed), '#' starts a
// comment running to the end of the line, and the bare token '-' is a null
// cell. Rows are separated by line feeds and need not have equal length.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call creates its own parser state; Scanner and CharReader
// instances are single-consumer.
//
// # Parsing APIs
//
//   - Parse(string) - parses a complete in-memory document into rows
//   - ParseReader(io.Reader) - same, reading from any io.Reader
//   - NewScanner(io.Reader) - streams rows one at a time with constant memory
//
// Use Parse for documents already in memory: cell values that need no
// unescaping share the input string's memory. Use NewScanner for large files
// or network streams.
//
// # Example usage with Parse:
//
//	rows, err := wsv.Parse("a \"b c\" -\nd")
//	if err != nil {
//	    // handle error
//	}
//	// rows[0] is [Value("a"), Value("b c"), Null()]
//	// rows[1] is [Value("d")]
//
// # Writing
//
// Render produces WSV text from rows in packed or column-aligned form;
// NewCharReader emits packed output lazily for arbitrarily large documents.
//
// For token-level access (including comments), use pkg/tokenizer directly.
package wsv

import (
	"io"
	"strings"

	"github.com/shapestone/shape-wsv/internal/fastscan"
	"github.com/shapestone/shape-wsv/pkg/tokenizer"
)

// Parse parses a WSV document from a string.
//
// The result is one slice of cells per row; the bare token '-' becomes a
// null Cell and comments contribute nothing. Parsing stops at the first
// error, discarding any partial result; the returned error is a
// *tokenizer.ParseError carrying the error kind and location.
//
// Cell values containing no escape sequences share the input's backing
// memory; no copy is made for them.
func Parse(input string) ([][]Cell, error) {
	return ParseWithOptions(input, DefaultReaderOptions())
}

// ParseWithOptions parses a WSV document from a string with custom options.
//
// Example:
//
//	opts := wsv.DefaultReaderOptions()
//	opts.ColumnCountHint = 5
//	rows, err := wsv.ParseWithOptions(input, opts)
func ParseWithOptions(input string, opts ReaderOptions) ([][]Cell, error) {
	return collectRows(tokenizer.New(input), opts.ColumnCountHint)
}

// ParseReader parses a complete WSV document from an io.Reader.
//
// The reader is consumed one character at a time; unlike Parse, every cell
// value is an owned copy. For row-at-a-time streaming with constant memory,
// use NewScanner instead.
func ParseReader(reader io.Reader) ([][]Cell, error) {
	return collectRows(tokenizer.NewFromReader(reader), 0)
}

// collectRows drains a tokenizer into rows. A file ending exactly on a line
// feed produces no empty final row; a file ending mid-row still yields that
// row. A line holding only a comment contributes no row, while a fully blank
// line contributes an empty one.
func collectRows(tok *tokenizer.Tokenizer, hint int) ([][]Cell, error) {
	rows := make([][]Cell, 0)
	row := make([]Cell, 0, hint)
	commentOnly := false

	for {
		t, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case tokenizer.KindLineBreak:
			if len(row) > 0 || !commentOnly {
				rows = append(rows, row)
				row = make([]Cell, 0, hint)
			}
			commentOnly = false
		case tokenizer.KindNull:
			row = append(row, Null())
		case tokenizer.KindValue:
			row = append(row, Value(t.Text))
		case tokenizer.KindComment:
			commentOnly = true
		}
	}

	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows, nil
}

// Validate checks whether the input string is valid WSV.
//
// This function uses a high-performance fast path that bypasses token and
// row construction and allocates nothing on well-formed input.
//
// Returns nil if the input is valid. Otherwise returns a
// *tokenizer.ParseError describing the first fault:
//
//	if err := wsv.Validate(input); err != nil {
//	    fmt.Println("invalid WSV:", err)
//	}
func Validate(input string) error {
	return fastscan.Validate(input)
}

// ValidateReader checks whether the input from an io.Reader is valid WSV.
// It reads the entire input from the reader.
//
// Returns nil if the input is valid WSV; a read failure is returned as-is.
func ValidateReader(reader io.Reader) error {
	var sb strings.Builder
	if _, err := io.Copy(&sb, reader); err != nil {
		return err
	}
	return fastscan.Validate(sb.String())
}

// Format returns the format identifier for this codec.
func Format() string {
	return "WSV"
}
