package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"sharedprint/core/database"
	"sharedprint/core/reconcile"
	"sharedprint/core/storage"
	"sharedprint/feature/holdings"
	"sharedprint/feature/holdings/koha"
	"sharedprint/feature/inventory"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sourceMARC = "marc"
	sourceDB   = "db"
)

var (
	idColumn      string
	catalogSource string
	showDetails   bool
	reportPath    string
)

// reconcileCmd compares circulating bibs against the GreenGlass listing.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [INPUT]",
	Short: "Compare circulating bibs against a GreenGlass listing",
	Long: `Builds the set of bib records with at least one circulating item and
compares it with the bib record numbers of a GreenGlass CSV listing.

Weeded bibs are in GreenGlass but no longer circulate in Koha.
Added bibs circulate in Koha but are unknown to GreenGlass.

Examples:
  # From a MARC export
  reconcile koha.mrc --csv greenglass.csv

  # Straight from the Koha database, listing every identifier
  reconcile --source db --csv greenglass.csv --details

  # Keep the full report
  reconcile koha.mrc --csv greenglass.csv --json s3://reports/reconcile.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&csvPath, "csv", "", "GreenGlass listing (required)")
	reconcileCmd.Flags().StringVar(&idColumn, "column", "", "Identifier column of the listing (default inventory.id_column)")
	reconcileCmd.Flags().StringVar(&catalogSource, "source", sourceMARC, "Catalog source: marc or db")
	reconcileCmd.Flags().BoolVar(&showDetails, "details", false, "List added and weeded identifiers")
	reconcileCmd.Flags().StringVar(&reportPath, "json", "", "Write the full report as JSON to this path")
	_ = reconcileCmd.MarkFlagRequired("csv")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if csvPath == "" {
		return errors.New("a GreenGlass listing is required (--csv)")
	}
	var input string
	if len(args) > 0 {
		input = args[0]
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.connectStorage(input, csvPath, reportPath); err != nil {
		return err
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	invCfg := s.cfg.Inventory
	if idColumn != "" {
		invCfg.IDColumn = idColumn
	}
	listing := csvPath
	external := func(ctx context.Context) (reconcile.Set, error) {
		return inventory.LoadFile(ctx, s.client, listing, invCfg)
	}

	svc := holdings.NewService(s.cfg.Catalog, s.client, s.logger)

	var adapter *holdings.Adapter
	switch catalogSource {
	case sourceMARC:
		if input == "" {
			return errors.New("reconciling from a MARC export needs INPUT")
		}
		adapter = holdings.NewAdapter("marc", svc.Filter(), svc.MARCOpener(input), external)

	case sourceDB:
		if !s.cfg.Koha.IsValidProfile() {
			return fmt.Errorf("invalid koha profile %q", s.cfg.Koha.Profile)
		}
		db, err := database.Connect(s.cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		profile := koha.GetProfileByName(s.cfg.Koha.Profile)
		open := func(ctx context.Context) (holdings.SourceCloser, error) {
			src, err := koha.Open(ctx, db, profile)
			if err != nil {
				return nil, err
			}
			return src, nil
		}
		adapter = holdings.NewAdapter("koha-db", svc.Filter(), open, external)

	default:
		return fmt.Errorf("unknown catalog source %q (want %s or %s)", catalogSource, sourceMARC, sourceDB)
	}

	report, err := svc.Reconcile(ctx, adapter)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	printReport(out, report)
	if showDetails {
		fmt.Fprintln(out, renderDetails(report))
	}

	if reportPath != "" {
		if err := writeReport(ctx, s.client, reportPath, report); err != nil {
			return err
		}
		s.logger.Info("Report written", zap.String("path", reportPath))
	}
	return nil
}

func printReport(w io.Writer, report *reconcile.Report) {
	sum := report.Summary
	fmt.Fprintf(w, "Total Koha Bibs: %d\n", sum.TotalRecords)
	fmt.Fprintf(w, "Koha Bibs with circulating items: %d\n", sum.CirculatingRecords)
	fmt.Fprintf(w, "Total GreenGlass Bibs: %d\n", sum.ExternalRecords)
	fmt.Fprintf(w, "Weeded Items (in GreenGlass & not in Koha): %d\n", sum.Weeded)
	fmt.Fprintf(w, "Added Items (in Koha & not in GreenGlass): %d\n", sum.Added)
}

func writeReport(ctx context.Context, client storage.Client, path string, report *reconcile.Report) error {
	data, err := jsoniter.ConfigFastest.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	out, err := storage.Create(ctx, client, path)
	if err != nil {
		return err
	}

	if _, err := out.Write(data); err != nil {
		_ = out.Abort()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
