package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gerunddev/orgbabel/internal/styles"
	"github.com/gerunddev/orgbabel/orgtable"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [FILE]",
		Short: "Show how a table is typed, as a styled terminal table",
		Long: `Preview reads a table the same way as 'table' and renders it in the
terminal, coloring each column by its inferred kind: numbers, dates or text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, frame, err := a.loadFrame(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(frame))
			return nil
		},
	}

	addInputFlags(cmd)
	return cmd
}

// renderPreview draws the frame with the index first and a kind line under the header
func renderPreview(frame *orgtable.Frame) string {
	columns := append([]*orgtable.Column{frame.Index}, frame.Columns...)

	headers := make([]string, len(columns))
	kinds := make([]string, len(columns))
	for j, c := range columns {
		headers[j] = c.Name
		kinds[j] = c.Kind.String()
	}
	kinds[0] = "index"

	rows := [][]string{kinds}
	for i := 0; i < frame.Len(); i++ {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = c.Cells[i]
			if c.Kind == orgtable.Date && c.Dates[i].Valid {
				row[j] = c.Dates[i].Time.Format("2006-01-02")
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle
			case row == 0:
				return styles.DimStyle.Padding(0, 1)
			case col == 0:
				return styles.IndexStyle
			}
			switch columns[col].Kind {
			case orgtable.Numeric:
				return styles.NumberStyle
			case orgtable.Date:
				return styles.DateStyle
			default:
				return styles.TextStyle
			}
		})

	return t.String()
}
