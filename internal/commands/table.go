package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gerunddev/orgbabel/internal/sheet"
	"github.com/gerunddev/orgbabel/internal/styles"
	"github.com/gerunddev/orgbabel/orgtable"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [FILE]",
		Short: "Rewrite a table as org markup",
		Long: `Table reads one table from FILE (org, csv or xlsx, by extension) or from an
org table on stdin, and prints it as org table markup. Date columns listed with
--datecols are converted where every cell is an org date; columns that do not
parse are left as they are.`,
		Example: `  orgbabel table data.org --datecols auto --index date
  orgbabel table report.xlsx --sheet Q3 --caption "Q3 numbers" --hlines 1,-1
  orgbabel table data.csv --no-index --date-format "%d.%m.%Y" --xlsx out.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, frame, err := a.loadFrame(cmd, args)
			if err != nil {
				return err
			}

			out, err := orgtable.ToOrg(frame, a.orgOptions(cmd, src)...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			xlsxPath, _ := cmd.Flags().GetString("xlsx")
			if xlsxPath != "" {
				noIndex, _ := cmd.Flags().GetBool("no-index")
				if err := sheet.WriteXLSX(xlsxPath, frame, !noIndex); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), styles.SuccessStyle.Render("✓ Wrote "+xlsxPath))
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("name", "", "table name for the #+NAME: line (default: the input's name)")
	cmd.Flags().String("caption", "", "#+CAPTION: line")
	cmd.Flags().String("attr", "", "#+ATTR_LATEX: line")
	cmd.Flags().Bool("auto-name", false, "generate a table name when none is given")
	cmd.Flags().Bool("no-index", false, "leave the row index out of the output")
	cmd.Flags().String("date-format", "", "strftime pattern for date cells (default YYYY-MM-DD)")
	cmd.Flags().IntSlice("hlines", nil, "line positions for horizontal rules; negative counts from the end")
	cmd.Flags().String("encoding", "", "encoding the table must fit in (default from config, ascii)")
	cmd.Flags().String("xlsx", "", "also write the table to this xlsx file")
	return cmd
}

// addInputFlags registers the flags that control reading and shaping the frame
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("sheet", "", "sheet to read from an xlsx file (default: first sheet)")
	cmd.Flags().String("index", "", "column to use as the row index")
	cmd.Flags().Int("index-pos", 0, "position of the column to use as the row index; negative counts from the end")
	cmd.Flags().String("datecols", "", "columns to convert to dates: 'auto' or a comma separated list")
}

// loadFrame reads the input named by args, or stdin, and builds the frame
func (a *app) loadFrame(cmd *cobra.Command, args []string) (*orgtable.Source, *orgtable.Frame, error) {
	sheetName, _ := cmd.Flags().GetString("sheet")

	var (
		src    *orgtable.Source
		err    error
		source = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		src, err = sheet.ReadOrg(cmd.InOrStdin())
	} else {
		source = args[0]
		src, err = sheet.Load(source, sheetName)
	}
	if err != nil {
		a.log.InputError(source, err)
		return nil, nil, err
	}

	frame, err := orgtable.FromRows(src.Rows, a.frameOptions(cmd)...)
	if err != nil {
		a.log.InputError(source, err)
		return nil, nil, err
	}
	return src, frame, nil
}

func (a *app) frameOptions(cmd *cobra.Command) []orgtable.FrameOption {
	opts := []orgtable.FrameOption{orgtable.WithLogger(a.log.Logger)}

	if index, _ := cmd.Flags().GetString("index"); index != "" {
		opts = append(opts, orgtable.IndexName(index))
	} else if cmd.Flags().Changed("index-pos") {
		pos, _ := cmd.Flags().GetInt("index-pos")
		opts = append(opts, orgtable.IndexPos(pos))
	}

	switch datecols, _ := cmd.Flags().GetString("datecols"); datecols {
	case "":
	case "auto":
		opts = append(opts, orgtable.AutoDateCols())
	default:
		var names []string
		for _, name := range strings.Split(datecols, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		opts = append(opts, orgtable.DateCols(names...))
	}

	return opts
}

func (a *app) orgOptions(cmd *cobra.Command, src *orgtable.Source) []orgtable.OrgOption {
	flags := cmd.Flags()
	opts := []orgtable.OrgOption{orgtable.WithOrgLogger(a.log.Logger)}

	name, _ := flags.GetString("name")
	if name == "" {
		name = src.Name
	}
	autoName, _ := flags.GetBool("auto-name")
	if name == "" && (autoName || a.cfg.AutoName) {
		name = orgtable.GenerateName()
	}
	opts = append(opts, orgtable.Name(name))

	caption, _ := flags.GetString("caption")
	if caption == "" {
		caption = src.Caption
	}
	attr, _ := flags.GetString("attr")
	if attr == "" {
		attr = src.Attr
	}
	opts = append(opts, orgtable.Caption(caption), orgtable.Attr(attr))

	if noIndex, _ := flags.GetBool("no-index"); noIndex {
		opts = append(opts, orgtable.WithoutIndex())
	}

	dateFormat, _ := flags.GetString("date-format")
	if dateFormat == "" {
		dateFormat = a.cfg.DateFormat
	}
	opts = append(opts, orgtable.DateFormat(dateFormat))

	if flags.Changed("hlines") {
		hlines, _ := flags.GetIntSlice("hlines")
		opts = append(opts, orgtable.HLines(hlines...))
	}

	encoding, _ := flags.GetString("encoding")
	if encoding == "" {
		encoding = a.cfg.Encoding
	}
	opts = append(opts, orgtable.Encoding(encoding))

	return opts
}
