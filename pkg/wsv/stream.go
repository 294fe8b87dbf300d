package wsv

import (
	"io"

	"github.com/shapestone/shape-wsv/pkg/tokenizer"
)

// Scanner provides a streaming interface for reading WSV rows one at a time.
// It holds at most one row in memory, so it is suitable for files that do
// not fit in memory.
//
// If a row is malformed, any cells completed before the fault are still
// delivered: Scan returns true with the partial row, the next call to Scan
// returns false, and Err reports the error.
//
// Example usage:
//
//	file, _ := os.Open("data.wsv")
//	defer file.Close()
//
//	scanner := wsv.NewScanner(file)
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    // process row
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	tok     *tokenizer.Tokenizer
	hint    int
	row     []Cell
	err     error // surfaced error, reported by Err
	pending error // error held back while a partial row is delivered
	done    bool
}

// NewScanner creates a Scanner that reads WSV from the given io.Reader,
// pulling one character at a time.
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerFromStream(tokenizer.NewStreamFromReader(reader))
}

// NewScannerFromStream creates a Scanner over a pre-configured token stream.
// Use this to scan rows of an in-memory string via tokenizer.NewStream.
func NewScannerFromStream(stream tokenizer.Stream) *Scanner {
	return &Scanner{tok: tokenizer.NewFromStream(stream)}
}

// SetColumnCountHint pre-sizes each row's cell slice for documents whose
// typical column count is known. Returns the Scanner for method chaining.
func (s *Scanner) SetColumnCountHint(n int) *Scanner {
	s.hint = n
	return s
}

// Scan advances the scanner to the next row.
// It returns false when there are no more rows or an error occurs.
// After Scan returns false, the Err method reports any error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if s.pending != nil {
		s.err = s.pending
		s.pending = nil
		s.done = true
		return false
	}

	row := make([]Cell, 0, s.hint)
	for {
		t, err := s.tok.Next()
		if err == io.EOF {
			// A trailing row with no terminating line feed still counts;
			// a file ending exactly on a line feed yields no empty row.
			s.done = true
			if len(row) == 0 {
				return false
			}
			s.row = row
			return true
		}
		if err != nil {
			if len(row) > 0 {
				s.pending = err
				s.row = row
				return true
			}
			s.err = err
			s.done = true
			return false
		}

		switch t.Kind {
		case tokenizer.KindLineBreak:
			s.row = row
			return true
		case tokenizer.KindNull:
			row = append(row, Null())
		case tokenizer.KindValue:
			row = append(row, Value(t.Text))
		case tokenizer.KindComment:
			// Comments contribute no cells.
		}
	}
}

// Row returns the current row.
// It should only be called after Scan returns true.
func (s *Scanner) Row() []Cell {
	return s.row
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil at normal end of input.
func (s *Scanner) Err() error {
	return s.err
}

// ReadRow reads the next row, returning io.EOF at end of input. It allows a
// Scanner to feed a CharReader directly as a RowReader, composing a
// streaming parse-rewrite pipeline.
func (s *Scanner) ReadRow() ([]Cell, error) {
	if s.Scan() {
		return s.row, nil
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
