package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gerunddev/orgbabel/internal/config"
	"github.com/gerunddev/orgbabel/internal/logger"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd builds the orgbabel command tree
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "orgbabel",
		Short: "Convert org-mode tables and dates for babel source blocks",
		Long: `orgbabel converts org-mode tables and date stamps for use in literate
programming source blocks. It reads a table from an org file, a CSV file, a
spreadsheet or stdin, optionally turns date columns into real dates and picks a
row index, and prints the result as org table markup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", fmt.Sprintf("config file (default: %s)", config.ConfigPath()))
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newDateCmd(a),
		newTableCmd(a),
		newDescribeCmd(a),
		newPreviewCmd(a),
		newConfigCmd(),
		newVersionCmd(version),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	var err error
	if path != "" {
		a.cfg, err = config.LoadFile(path)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	levelName, _ := cmd.Flags().GetString("log-level")
	if levelName == "" {
		levelName = a.cfg.LogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", levelName, err)
	}

	a.log = logger.NewWithLevel(cmd.ErrOrStderr(), level)
	if path == "" {
		path = config.ConfigPath()
	}
	a.log.ConfigLoaded(path, a.cfg.Encoding)
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of orgbabel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orgbabel v%s\n", version)
		},
	}
}
