// Package wsv provides a user-friendly DOM API for WSV manipulation.
//
// The DOM API provides a fluent interface for building and manipulating WSV
// documents without working with raw rows.
//
// # Document Type
//
// Document represents a WSV file as an ordered sequence of rows:
//
//	doc := wsv.NewDocument().
//		AddRow(wsv.Value("a"), wsv.Value("b c")).
//		AddRow(wsv.Value("d"), wsv.Null())
//
// # Round-trip Support
//
// Parse WSV and render back to WSV:
//
//	doc, _ := wsv.ParseDocument("1 2\n3 -")
//	text := doc.WSV() // render back to WSV text
package wsv

// Cell is one cell of a WSV row: a string value or null. It mirrors the
// database/sql.NullString shape, so the zero Cell is the null cell.
type Cell struct {
	String string
	Valid  bool // Valid is false when the cell is null
}

// Value returns a non-null cell holding s.
func Value(s string) Cell {
	return Cell{String: s, Valid: true}
}

// Null returns the null cell, written as the bare token '-'.
func Null() Cell {
	return Cell{}
}

// Document represents a WSV file with a fluent API for manipulation.
// All setter methods return *Document to enable method chaining.
//
// Rows are not required to have equal length; jagged documents are legal.
type Document struct {
	rows [][]Cell
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{rows: make([][]Cell, 0)}
}

// ParseDocument parses WSV text into a Document.
// Returns an error if the input is not valid WSV.
//
// Example:
//
//	doc, err := wsv.ParseDocument("a \"b c\" -\nd")
//	if err != nil {
//	    // handle error
//	}
func ParseDocument(input string) (*Document, error) {
	rows, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return &Document{rows: rows}, nil
}

// AddRow appends a row to the document.
// Returns the Document for method chaining.
func (d *Document) AddRow(cells ...Cell) *Document {
	d.rows = append(d.rows, cells)
	return d
}

// Rows returns all rows of the document. The returned slice is the
// document's own backing storage; callers that mutate it mutate the document.
func (d *Document) Rows() [][]Cell {
	return d.rows
}

// Row returns the row at the given index and whether it exists.
func (d *Document) Row(i int) ([]Cell, bool) {
	if i < 0 || i >= len(d.rows) {
		return nil, false
	}
	return d.rows[i], true
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// WSV renders the document as packed WSV text.
// Use Render with WriterOptions for column-aligned output.
func (d *Document) WSV() string {
	return Render(d.rows, DefaultWriterOptions())
}
