package orgtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"

	"github.com/gerunddev/orgbabel/internal/logger"
)

const (
	// DefaultEncoding is the encoding ToOrg checks against unless told otherwise
	DefaultEncoding = "ascii"

	hline = "|-----"
)

type orgConfig struct {
	name       string
	caption    string
	attr       string
	noIndex    bool
	dateFormat string
	hlines     []int
	hlinesSet  bool
	encoding   string
	log        *logger.Logger
}

// OrgOption configures ToOrg
type OrgOption func(*orgConfig)

// Name sets the #+NAME: line
func Name(name string) OrgOption {
	return func(c *orgConfig) { c.name = name }
}

// Caption sets the #+CAPTION: line
func Caption(caption string) OrgOption {
	return func(c *orgConfig) { c.caption = caption }
}

// Attr sets the #+ATTR_LATEX: line
func Attr(attr string) OrgOption {
	return func(c *orgConfig) { c.attr = attr }
}

// WithoutIndex leaves the row labels out of the table
func WithoutIndex() OrgOption {
	return func(c *orgConfig) { c.noIndex = true }
}

// DateFormat renders date cells with a strftime pattern such as "%d.%m.%Y"
func DateFormat(pattern string) OrgOption {
	return func(c *orgConfig) { c.dateFormat = pattern }
}

// HLines places rules before the given 0-based line positions.
// Negative positions count back from the line count. With no positions
// at all the table gets no rules; without this option a rule follows the header.
func HLines(positions ...int) OrgOption {
	return func(c *orgConfig) {
		c.hlines = append([]int{}, positions...)
		c.hlinesSet = true
	}
}

// Encoding names the encoding the table text must fit in
func Encoding(name string) OrgOption {
	return func(c *orgConfig) { c.encoding = name }
}

// WithOrgLogger reports the rendered table to l at debug level
func WithOrgLogger(l *log.Logger) OrgOption {
	return func(c *orgConfig) { c.log = logger.Wrap(l) }
}

// ToOrg renders f as org table markup, preceded by any directive lines
func ToOrg(f *Frame, opts ...OrgOption) (string, error) {
	cfg := &orgConfig{
		encoding: DefaultEncoding,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var result strings.Builder
	if cfg.attr != "" {
		result.WriteString("#+ATTR_LATEX: " + cfg.attr + "\n")
	}
	if cfg.caption != "" {
		result.WriteString("#+CAPTION: " + cfg.caption + "\n")
	}
	if cfg.name != "" {
		result.WriteString("#+NAME: " + cfg.name + "\n")
	}

	body, err := serialize(f, cfg)
	if err != nil {
		return "", err
	}
	if err := checkEncoding(cfg.encoding, body); err != nil {
		return "", err
	}

	// Quoted cells may span lines; they are split like any other line.
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")

	rules := make(map[int]bool)
	if !cfg.hlinesSet {
		rules[1] = true
	}
	for _, h := range cfg.hlines {
		if h < 0 {
			h += len(lines)
		}
		rules[h] = true
	}

	for i, line := range lines {
		if rules[i] {
			result.WriteString(hline + "\n")
		}
		result.WriteString(line + "\n")
	}

	cfg.log.TableRendered(cfg.name, len(lines), cfg.encoding)
	return result.String(), nil
}

// serialize writes the header and every row as |a|b|c| lines
func serialize(f *Frame, cfg *orgConfig) (string, error) {
	var dateFmt *strftime.Strftime
	if cfg.dateFormat != "" {
		var err error
		dateFmt, err = strftime.New(cfg.dateFormat)
		if err != nil {
			return "", fmt.Errorf("invalid date format %q: %w", cfg.dateFormat, err)
		}
	}

	columns := f.Columns
	if !cfg.noIndex {
		columns = append([]*Column{f.Index}, f.Columns...)
	}

	var b strings.Builder
	fields := make([]string, len(columns))

	for j, c := range columns {
		fields[j] = c.Name
	}
	writeRow(&b, fields)

	for i := 0; i < f.Len(); i++ {
		for j, c := range columns {
			fields[j] = cellText(c, i, dateFmt)
		}
		writeRow(&b, fields)
	}

	return b.String(), nil
}

// cellText renders one cell, formatting dates as YYYY-MM-DD unless a pattern is given
func cellText(c *Column, i int, dateFmt *strftime.Strftime) string {
	if c.Kind != Date {
		return c.Cells[i]
	}

	d := c.Dates[i]
	if !d.Valid {
		return ""
	}
	if dateFmt != nil {
		return dateFmt.FormatString(d.Time)
	}
	return d.Time.Format("2006-01-02")
}

func writeRow(b *strings.Builder, fields []string) {
	b.WriteByte('|')
	if len(fields) == 1 && fields[0] == "" {
		// a lone empty field is quoted so the row is not mistaken for a blank line
		b.WriteString(`""`)
	} else {
		for j, field := range fields {
			if j > 0 {
				b.WriteByte('|')
			}
			b.WriteString(quoteField(field))
		}
	}
	b.WriteString("|\n")
}

// quoteField applies minimal CSV quoting with | as the separator
func quoteField(s string) string {
	if !strings.ContainsAny(s, "|\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
