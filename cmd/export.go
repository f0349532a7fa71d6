package cmd

import (
	"fmt"
	"io"

	"sharedprint/feature/holdings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd writes the filtered export.
var exportCmd = &cobra.Command{
	Use:   "export INPUT",
	Short: "Write only the bib records with circulating items",
	Long: `Reads a MARC export and writes every bib record holding at least one
valid circulating item, unchanged and in input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// statsCmd counts without writing.
var statsCmd = &cobra.Command{
	Use:   "stats INPUT",
	Short: "Count items and circulating items without writing an export",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Filtered export destination (default catalog.output)")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(statsCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	input := args[0]
	output := outputPath
	if output == "" {
		output = s.cfg.Catalog.Output
	}
	if err := s.connectStorage(input, output); err != nil {
		return err
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	s.logger.Info("Filtering catalog export", zap.String("input", input), zap.String("output", output))

	svc := holdings.NewService(s.cfg.Catalog, s.client, s.logger)
	totals, err := svc.Export(ctx, input, output)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printTotals(cmd.OutOrStdout(), totals)
	warnUnknown(s, totals)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	input := args[0]
	if err := s.connectStorage(input); err != nil {
		return err
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	svc := holdings.NewService(s.cfg.Catalog, s.client, s.logger)
	totals, err := svc.Count(ctx, input)
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}

	printTotals(cmd.OutOrStdout(), totals)
	warnUnknown(s, totals)
	return nil
}

func printTotals(w io.Writer, totals holdings.Totals) {
	fmt.Fprintf(w, "Total items: %d | Items included: %d\n", totals.Items, totals.ValidItems)
}

func warnUnknown(s *session, totals holdings.Totals) {
	if totals.UnknownCodes > 0 {
		s.logger.Warn("Items with unknown status codes were excluded", zap.Int("count", totals.UnknownCodes))
	}
}
