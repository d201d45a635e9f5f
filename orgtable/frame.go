// Package orgtable converts org-mode tables to labeled, column-typed frames
// and renders frames back to org table markup.
package orgtable

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gerunddev/orgbabel/orgdate"
)

var (
	// ErrStructure is returned when rows cannot form a rectangular table
	ErrStructure = errors.New("malformed table")

	// ErrIndexRange is returned when an index position names no column
	ErrIndexRange = errors.New("index position out of range")

	// ErrEncoding is returned when a table cannot be represented in the requested encoding
	ErrEncoding = errors.New("encoding error")

	// ErrNoNumeric is returned by Describe for frames without numeric columns
	ErrNoNumeric = errors.New("no numeric columns")
)

// Kind is the inferred type of a column
type Kind int

const (
	// Text columns keep their cells verbatim
	Text Kind = iota
	// Numeric columns hold cells that all parse as numbers
	Numeric
	// Date columns hold org dates, blank cells becoming missing dates
	Date
)

// String returns the kind's name
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Numeric:
		return "numeric"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a named column of cells.
// Cells always holds the text; Numbers and Dates are filled for their kinds.
type Column struct {
	Name    string
	Kind    Kind
	Cells   []string
	Numbers []float64
	Dates   []orgdate.NullDate
}

// NewTextColumn creates a text column
func NewTextColumn(name string, cells ...string) *Column {
	return &Column{
		Name:  name,
		Kind:  Text,
		Cells: append([]string(nil), cells...),
	}
}

// NewNumberColumn creates a numeric column; NaN values render as blank cells
func NewNumberColumn(name string, values ...float64) *Column {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = formatNumber(v)
	}
	return &Column{
		Name:    name,
		Kind:    Numeric,
		Cells:   cells,
		Numbers: append([]float64(nil), values...),
	}
}

// NewDateColumn creates a date column
func NewDateColumn(name string, dates ...orgdate.NullDate) *Column {
	cells := make([]string, len(dates))
	for i, d := range dates {
		cells[i] = d.String()
	}
	return &Column{
		Name:  name,
		Kind:  Date,
		Cells: cells,
		Dates: append([]orgdate.NullDate(nil), dates...),
	}
}

// Len returns the number of cells
func (c *Column) Len() int {
	return len(c.Cells)
}

// Frame is a table of named columns with a row index.
// The index is a column of row labels kept apart from the data columns.
type Frame struct {
	Index   *Column
	Columns []*Column

	defaultIndex bool
}

// NewFrame builds a frame from equally long columns with the ordinal index 0..n-1
func NewFrame(columns ...*Column) (*Frame, error) {
	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}
	for _, c := range columns {
		if c.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d cells, expected %d", ErrStructure, c.Name, c.Len(), rows)
		}
	}

	return &Frame{
		Index:        ordinalIndex(0, rows),
		Columns:      columns,
		defaultIndex: true,
	}, nil
}

// ordinalIndex builds an unnamed index labelled start..start+n-1
func ordinalIndex(start, n int) *Column {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(start + i)
	}
	return NewNumberColumn("", values...)
}

// Len returns the number of data rows
func (f *Frame) Len() int {
	return f.Index.Len()
}

// Names returns the column names in order
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the first column with the given name, or nil
func (f *Frame) Column(name string) *Column {
	for _, c := range f.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasDefaultIndex reports whether rows are still labelled by position
func (f *Frame) HasDefaultIndex() bool {
	return f.defaultIndex
}

// SetIndex moves the first column with the given name into the index
func (f *Frame) SetIndex(name string) error {
	for i, c := range f.Columns {
		if c.Name == name {
			return f.SetIndexPos(i)
		}
	}
	return fmt.Errorf("%w: no column named %q", ErrStructure, name)
}

// SetIndexPos moves the column at pos into the index.
// Negative positions count from the last column.
func (f *Frame) SetIndexPos(pos int) error {
	n := len(f.Columns)
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, pos, n)
	}

	f.Index = f.Columns[pos]
	f.Columns = append(f.Columns[:pos:pos], f.Columns[pos+1:]...)
	f.defaultIndex = false
	return nil
}

// formatNumber renders v without exponent; NaN becomes the blank cell
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
