package orgtable

import (
	"fmt"
	"regexp"
	"strings"
)

// Source is a single org table read back from text
type Source struct {
	Name    string
	Caption string
	Attr    string
	Rows    [][]string

	// HLines holds the line positions of rules, in the coordinates HLines accepts
	HLines []int
}

var directiveRe = regexp.MustCompile(`(?i)^#\+(NAME|CAPTION|ATTR_LATEX):\s*(.*)$`)

// ParseOrg reads the first table in text along with the directives above it.
// Anything after the table is ignored.
func ParseOrg(text string) (*Source, error) {
	src := &Source{}
	inTable := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if !strings.HasPrefix(line, "|") {
			if inTable {
				break
			}
			if m := directiveRe.FindStringSubmatch(line); m != nil {
				switch strings.ToUpper(m[1]) {
				case "NAME":
					src.Name = m[2]
				case "CAPTION":
					src.Caption = m[2]
				case "ATTR_LATEX":
					src.Attr = m[2]
				}
			}
			continue
		}

		inTable = true
		if strings.HasPrefix(line, "|-") {
			pos := len(src.Rows)
			if n := len(src.HLines); n == 0 || src.HLines[n-1] != pos {
				src.HLines = append(src.HLines, pos)
			}
			continue
		}

		src.Rows = append(src.Rows, splitRow(line))
	}

	if len(src.Rows) == 0 {
		return nil, fmt.Errorf("%w: no table rows found", ErrStructure)
	}
	return src, nil
}

// splitRow splits "| a | b |" into trimmed cells; the closing pipe is optional
func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
