package wsv_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shapestone/shape-wsv/pkg/tokenizer"
	"github.com/shapestone/shape-wsv/pkg/wsv"
)

// collectScanner drains a scanner into rows.
func collectScanner(s *wsv.Scanner) ([][]wsv.Cell, error) {
	var rows [][]wsv.Cell
	for s.Scan() {
		rows = append(rows, s.Row())
	}
	return rows, s.Err()
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]wsv.Cell
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "rows with nulls",
			input: "1 -\n3 4",
			want: [][]wsv.Cell{
				{wsv.Value("1"), wsv.Null()},
				{wsv.Value("3"), wsv.Value("4")},
			},
		},
		{
			name:  "no trailing line feed",
			input: "a b",
			want:  [][]wsv.Cell{{wsv.Value("a"), wsv.Value("b")}},
		},
		{
			name:  "trailing line feed yields no phantom row",
			input: "a b\n",
			want:  [][]wsv.Cell{{wsv.Value("a"), wsv.Value("b")}},
		},
		{
			name:  "blank line yields empty row",
			input: "a\n\nb",
			want:  [][]wsv.Cell{{wsv.Value("a")}, {}, {wsv.Value("b")}},
		},
		{
			name: "comment-only line yields empty row",
			// The streaming path reports every line feed; only the eager
			// Parse collapses comment-only lines.
			input: "a\n# note\nb",
			want:  [][]wsv.Cell{{wsv.Value("a")}, {}, {wsv.Value("b")}},
		},
		{
			name:  "quoted values with escapes",
			input: "\"b c\" \"x\"\"y\"\n\"l1\"/\"l2\"",
			want: [][]wsv.Cell{
				{wsv.Value("b c"), wsv.Value(`x"y`)},
				{wsv.Value("l1\nl2")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectScanner(wsv.NewScanner(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("Scanner error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("scanned %d rows %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("row %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("row %d cell %d = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

// TestScannerPartialRowBeforeError checks that cells completed before a fault
// are delivered, and the fault surfaces on the following pull.
func TestScannerPartialRowBeforeError(t *testing.T) {
	s := wsv.NewScanner(strings.NewReader("a b\nc \"unterminated"))

	if !s.Scan() {
		t.Fatal("first Scan() = false, want row")
	}
	if row := s.Row(); len(row) != 2 {
		t.Fatalf("first row = %v, want two cells", row)
	}

	if !s.Scan() {
		t.Fatal("second Scan() = false, want the partial row")
	}
	row := s.Row()
	if len(row) != 1 || row[0] != wsv.Value("c") {
		t.Fatalf("partial row = %v, want [Value(c)]", row)
	}
	if s.Err() != nil {
		t.Fatalf("Err() = %v before the error pull", s.Err())
	}

	if s.Scan() {
		t.Fatal("third Scan() = true, want false with buffered error")
	}
	if !errors.Is(s.Err(), tokenizer.ErrStringNotClosed) {
		t.Fatalf("Err() = %v, want ErrStringNotClosed", s.Err())
	}

	// Exhausted after the error.
	if s.Scan() {
		t.Error("Scan() after error = true, want false")
	}
}

// TestScannerErrorOnEmptyRow checks that a fault with no accumulated cells
// surfaces immediately.
func TestScannerErrorOnEmptyRow(t *testing.T) {
	s := wsv.NewScanner(strings.NewReader("\"open"))
	if s.Scan() {
		t.Fatalf("Scan() = true with row %v, want immediate error", s.Row())
	}
	if !errors.Is(s.Err(), tokenizer.ErrStringNotClosed) {
		t.Fatalf("Err() = %v, want ErrStringNotClosed", s.Err())
	}
}

// TestScannerEagerEquivalence checks element-wise agreement with Parse for
// comment-free documents.
func TestScannerEagerEquivalence(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a b c\nd e\nf",
		"1 -\n- 2\n\n3\n",
		"\"x y\" \"a\"\"b\" \"l\"/\"m\"",
		"　 padded   row \n next",
	}
	for _, input := range inputs {
		eager, err := wsv.Parse(input)
		if err != nil {
			t.Fatalf("input %q: Parse error = %v", input, err)
		}
		streamed, err := collectScanner(wsv.NewScannerFromStream(tokenizer.NewStream(input)))
		if err != nil {
			t.Fatalf("input %q: Scanner error = %v", input, err)
		}
		if len(eager) != len(streamed) {
			t.Errorf("input %q: eager %d rows, streamed %d rows", input, len(eager), len(streamed))
			continue
		}
		for i := range eager {
			if len(eager[i]) != len(streamed[i]) {
				t.Errorf("input %q row %d: eager %v, streamed %v", input, i, eager[i], streamed[i])
				continue
			}
			for j := range eager[i] {
				if eager[i][j] != streamed[i][j] {
					t.Errorf("input %q row %d cell %d: eager %v, streamed %v",
						input, i, j, eager[i][j], streamed[i][j])
				}
			}
		}
	}
}

func TestScannerReadRow(t *testing.T) {
	s := wsv.NewScanner(strings.NewReader("a\nb"))

	row, err := s.ReadRow()
	if err != nil || len(row) != 1 || row[0] != wsv.Value("a") {
		t.Fatalf("ReadRow() = %v, %v; want [Value(a)]", row, err)
	}
	row, err = s.ReadRow()
	if err != nil || len(row) != 1 || row[0] != wsv.Value("b") {
		t.Fatalf("ReadRow() = %v, %v; want [Value(b)]", row, err)
	}
	if _, err := s.ReadRow(); err != io.EOF {
		t.Fatalf("ReadRow() at end = %v, want io.EOF", err)
	}
}

func TestScannerColumnCountHint(t *testing.T) {
	s := wsv.NewScanner(strings.NewReader("a b c")).SetColumnCountHint(3)
	if !s.Scan() {
		t.Fatal("Scan() = false, want row")
	}
	if len(s.Row()) != 3 {
		t.Fatalf("row = %v, want three cells", s.Row())
	}
}
