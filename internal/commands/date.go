package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gerunddev/orgbabel/orgdate"
)

func newDateCmd(a *app) *cobra.Command {
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Convert single org date stamps",
	}

	parseCmd := &cobra.Command{
		Use:   "parse STAMP",
		Short: "Print the calendar day of an org stamp such as [2024-03-01 Fri]",
		Long: `Parse prints the YYYY-MM-DD day of an org date stamp. A blank stamp prints
an empty line; anything else that is not a stamp is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := orgdate.Parse(args[0])
			if err != nil {
				return err
			}
			if !d.Valid {
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Time.Format(time.DateOnly))
			return nil
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format YYYY-MM-DD",
		Short: "Print the org stamp for a calendar day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.ParseInLocation(time.DateOnly, args[0], time.UTC)
			if err != nil {
				return fmt.Errorf("%w: %w", orgdate.ErrInvalidDate, err)
			}

			active := a.cfg.ActiveDates
			if cmd.Flags().Changed("active") {
				active, _ = cmd.Flags().GetBool("active")
			}
			fmt.Fprintln(cmd.OutOrStdout(), orgdate.Format(t, active))
			return nil
		},
	}
	formatCmd.Flags().Bool("active", false, "print an active <...> stamp instead of an inactive [...] one")

	dateCmd.AddCommand(parseCmd, formatCmd)
	return dateCmd
}
