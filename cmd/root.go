package cmd

import (
	"fmt"
	"os"

	"sharedprint/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath string
	csvPath    string
	debugMode  bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sharedprint [INPUT]",
	Short: "Shared Print circulating holdings tool",
	Long: `sharedprint reads a Koha MARC export and keeps the bib records that hold
at least one circulating item.

With --output (or no flag) it writes the filtered export. With --csv it
compares the circulating bibs against a GreenGlass listing instead.

Examples:
  sharedprint koha.mrc --output circulating.mrc
  sharedprint koha.mrc --csv greenglass.csv
  sharedprint s3://exports/koha.mrc --output s3://exports/circulating.mrc`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if csvPath != "" {
			return runReconcile(cmd, args)
		}
		return runExport(cmd, args)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for a CLI tool
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Log the status of every classified item")
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Filtered export destination (default catalog.output)")
	RootCmd.Flags().StringVar(&csvPath, "csv", "", "GreenGlass listing; switches to reconciliation")
	RootCmd.MarkFlagsMutuallyExclusive("output", "csv")
}
