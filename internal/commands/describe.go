package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gerunddev/orgbabel/orgtable"
)

func newDescribeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [FILE]",
		Short: "Print summary statistics of the numeric columns as an org table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, frame, err := a.loadFrame(cmd, args)
			if err != nil {
				return err
			}

			summary, err := orgtable.Describe(frame)
			if err != nil {
				return err
			}

			out, err := orgtable.ToOrg(summary, orgtable.Encoding(a.cfg.Encoding), orgtable.WithOrgLogger(a.log.Logger))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	addInputFlags(cmd)
	return cmd
}
