// Package wsv provides row rendering to WSV text.
//
// This file implements the writer side of the codec: cells are rendered with
// automatic quoting and escaping, in packed or column-aligned layout.
package wsv

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-wsv/pkg/tokenizer"
)

// Render converts rows to WSV text.
//
// Rendering handles:
//   - Automatic quoting of cells containing whitespace, '#', '"', or a
//     line feed (and of the literal values "" and "-", so they survive a
//     round trip)
//   - Escaping of quotes ('""') and embedded line feeds ('"/"')
//   - Null cells as the bare token '-'
//
// With AlignLeft or AlignRight every cell is padded to its column's maximum
// rendered width, measured in code points of the printed form including
// quotes and escapes. Cells a jagged row does not have are simply absent; no
// padding cells are invented. Row separators are single line feeds with no
// trailing newline.
//
// Example:
//
//	text := wsv.Render(rows, wsv.DefaultWriterOptions())
func Render(rows [][]Cell, opts WriterOptions) string {
	switch opts.Alignment {
	case AlignLeft, AlignRight:
		return renderAligned(rows, opts.Alignment)
	default:
		return renderPacked(rows)
	}
}

// renderPacked emits single-space separators and no padding.
func renderPacked(rows [][]Cell) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			writeCell(&b, cell)
		}
	}
	return b.String()
}

// renderAligned pads cells to per-column maximum rendered widths. This
// necessarily buffers the whole document: the width of a column is not known
// until every row has been seen.
func renderAligned(rows [][]Cell, align Alignment) string {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			w := cellWidth(cell)
			if j == len(widths) {
				widths = append(widths, w)
			} else if w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			pad := widths[j] - cellWidth(cell)
			if align == AlignRight {
				writeSpaces(&b, pad)
			}
			writeCell(&b, cell)
			if align == AlignLeft {
				writeSpaces(&b, pad)
			}
		}
	}
	return b.String()
}

func writeSpaces(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}

// writeCell writes one cell with proper quoting and escaping.
func writeCell(b *strings.Builder, cell Cell) {
	if !cell.Valid {
		b.WriteByte('-')
		return
	}
	if !needsQuoting(cell.String) {
		b.WriteString(cell.String)
		return
	}
	b.WriteByte('"')
	for _, ch := range cell.String {
		switch ch {
		case '\n':
			b.WriteString(`"/"`)
		case '"':
			b.WriteString(`""`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteByte('"')
}

// needsQuoting reports whether a value must be wrapped in quotes. Beyond the
// structural characters, the empty string and the literal "-" are quoted so
// they parse back to themselves rather than to a missing or null cell.
func needsQuoting(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	for _, ch := range s {
		if ch == '\n' || ch == '"' || ch == '#' || tokenizer.IsWhitespace(ch) {
			return true
		}
	}
	return false
}

// cellWidth returns the rendered width of a cell in code points, including
// quotes and escape expansions. Used for column alignment.
func cellWidth(cell Cell) int {
	if !cell.Valid {
		return 1
	}
	w := 0
	for _, ch := range cell.String {
		switch ch {
		case '\n':
			w += 3
		case '"':
			w += 2
		default:
			w++
		}
	}
	if needsQuoting(cell.String) {
		w += 2
	}
	return w
}

// RowReader yields successive rows, returning io.EOF at end of input.
// *Scanner implements RowReader, as does the reader returned by
// NewRowReader for in-memory rows.
type RowReader interface {
	ReadRow() ([]Cell, error)
}

// NewRowReader returns a RowReader over in-memory rows.
func NewRowReader(rows [][]Cell) RowReader {
	return &sliceRowReader{rows: rows}
}

type sliceRowReader struct {
	rows [][]Cell
	next int
}

func (r *sliceRowReader) ReadRow() ([]Cell, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

// CharReader emits packed WSV text one character at a time, pulling rows
// from its source only as needed. Output never buffers more than one
// rendered cell, so documents of unbounded size can be written; this is the
// lazy counterpart of Render with AlignPacked, and produces byte-identical
// output. Column alignment is not available here because it requires
// buffering every row.
//
// CharReader implements io.RuneReader and io.WriterTo. An error from the
// underlying RowReader (for example a *tokenizer.ParseError from a Scanner
// source) is returned after all characters preceding it.
type CharReader struct {
	source  RowReader
	queue   []rune // pending output, consumed before the next cell is rendered
	qpos    int
	row     []Cell
	idx     int
	inRow   bool
	started bool
	err     error
}

// NewCharReader creates a lazy packed writer over the given row source.
//
// Example of a constant-memory rewrite pipeline:
//
//	scanner := wsv.NewScanner(in)
//	if _, err := wsv.NewCharReader(scanner).WriteTo(out); err != nil {
//	    // handle error
//	}
func NewCharReader(source RowReader) *CharReader {
	return &CharReader{source: source}
}

// ReadRune returns the next character of the rendered document, its encoded
// byte size, and io.EOF when the document is complete.
func (r *CharReader) ReadRune() (rune, int, error) {
	for {
		if r.qpos < len(r.queue) {
			ch := r.queue[r.qpos]
			r.qpos++
			return ch, utf8.RuneLen(ch), nil
		}
		if r.err != nil {
			return 0, 0, r.err
		}
		r.queue = r.queue[:0]
		r.qpos = 0

		if r.inRow && r.idx < len(r.row) {
			if r.idx > 0 {
				r.queue = append(r.queue, ' ')
			}
			r.queue = appendCellRunes(r.queue, r.row[r.idx])
			r.idx++
			continue
		}
		r.inRow = false

		row, err := r.source.ReadRow()
		if err != nil {
			r.err = err
			continue
		}
		if r.started {
			r.queue = append(r.queue, '\n')
		}
		r.started = true
		r.row = row
		r.idx = 0
		r.inRow = true
	}
}

// WriteTo streams the remaining output to w and returns the number of bytes
// written.
func (r *CharReader) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			return n, bw.Flush()
		}
		if err != nil {
			bw.Flush()
			return n, err
		}
		size, werr := bw.WriteRune(ch)
		n += int64(size)
		if werr != nil {
			return n, werr
		}
	}
}

// appendCellRunes renders one cell into the pending queue.
func appendCellRunes(q []rune, cell Cell) []rune {
	if !cell.Valid {
		return append(q, '-')
	}
	quoted := needsQuoting(cell.String)
	if quoted {
		q = append(q, '"')
	}
	for _, ch := range cell.String {
		switch ch {
		case '\n':
			q = append(q, '"', '/', '"')
		case '"':
			q = append(q, '"', '"')
		default:
			q = append(q, ch)
		}
	}
	if quoted {
		q = append(q, '"')
	}
	return q
}
