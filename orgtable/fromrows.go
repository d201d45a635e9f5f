package orgtable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/orgbabel/internal/logger"
	"github.com/gerunddev/orgbabel/orgdate"
)

type frameConfig struct {
	indexName *string
	indexPos  *int
	dateCols  []string
	autoDates bool
	log       *logger.Logger
}

// FrameOption configures FromRows
type FrameOption func(*frameConfig)

// IndexName promotes the named column to the row index.
// An unknown name leaves the ordinal index in place.
func IndexName(name string) FrameOption {
	return func(c *frameConfig) {
		c.indexName = &name
		c.indexPos = nil
	}
}

// IndexPos promotes the column at pos to the row index; negative counts from the end
func IndexPos(pos int) FrameOption {
	return func(c *frameConfig) {
		c.indexPos = &pos
		c.indexName = nil
	}
}

// DateCols lists columns to try converting to dates, in order
func DateCols(names ...string) FrameOption {
	return func(c *frameConfig) {
		c.dateCols = append(c.dateCols, names...)
		c.autoDates = false
	}
}

// AutoDateCols tries every column
func AutoDateCols() FrameOption {
	return func(c *frameConfig) {
		c.autoDates = true
	}
}

// WithLogger reports coercion decisions to l at debug level
func WithLogger(l *log.Logger) FrameOption {
	return func(c *frameConfig) {
		c.log = logger.Wrap(l)
	}
}

// FromRows builds a frame from raw org table rows.
// Row 0 holds the column names; the remaining rows are data, labelled 1..n.
func FromRows(rows [][]string, opts ...FrameOption) (*Frame, error) {
	cfg := &frameConfig{log: logger.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrStructure)
	}

	header, data := rows[0], rows[1:]
	for i, row := range data {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrStructure, i+1, len(row), len(header))
		}
	}

	columns := make([]*Column, len(header))
	for j, name := range header {
		cells := make([]string, len(data))
		for i, row := range data {
			cells[i] = row[j]
		}
		columns[j] = &Column{Name: name, Kind: Text, Cells: cells}
	}

	f := &Frame{
		Index:        ordinalIndex(1, len(data)),
		Columns:      columns,
		defaultIndex: true,
	}
	cfg.log.TableLoaded("rows", f.Len(), len(f.Columns))

	dateCols := cfg.dateCols
	if cfg.autoDates {
		dateCols = f.Names()
	}
	seen := make(map[string]int, len(f.Columns))
	for _, c := range f.Columns {
		seen[c.Name]++
	}
	for _, name := range dateCols {
		// a repeated header name selects several columns; none of them are coerced
		if seen[name] != 1 {
			continue
		}
		c := f.Column(name)
		if c.Kind == Date {
			continue
		}
		if row, err := coerceDates(c); err != nil {
			cfg.log.CoercionMiss(name, row, err)
		} else {
			cfg.log.ColumnCoerced(name, c.Len())
		}
	}

	for _, c := range f.Columns {
		if c.Kind == Text {
			inferNumeric(c)
		}
	}

	switch {
	case cfg.indexName != nil:
		if f.Column(*cfg.indexName) != nil {
			if err := f.SetIndex(*cfg.indexName); err != nil {
				return nil, err
			}
			cfg.log.IndexSet(*cfg.indexName)
		}
	case cfg.indexPos != nil:
		if err := f.SetIndexPos(*cfg.indexPos); err != nil {
			return nil, err
		}
		cfg.log.IndexSet(f.Index.Name)
	}

	return f, nil
}

// coerceDates turns c into a date column when every cell is an org date or blank.
// On the first failing cell c is left untouched and that cell's data row is returned.
func coerceDates(c *Column) (int, error) {
	dates := make([]orgdate.NullDate, len(c.Cells))
	for i, cell := range c.Cells {
		d, err := orgdate.Parse(cell)
		if err != nil {
			return i + 1, err
		}
		dates[i] = d
	}

	c.Kind = Date
	c.Dates = dates
	return 0, nil
}

// inferNumeric marks c numeric when it has numbers and nothing but numbers or blanks
func inferNumeric(c *Column) {
	values := make([]float64, len(c.Cells))
	seen := false
	for i, cell := range c.Cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return
		}
		values[i] = v
		seen = true
	}
	if !seen {
		return
	}

	c.Kind = Numeric
	c.Numbers = values
}
