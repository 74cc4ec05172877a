package cmd

import (
	"context"
	"fmt"

	"bom-manager/core/config"
	"bom-manager/core/logger"
	"bom-manager/feature/printcheck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strictPrintCheck bool

// printCheckCmd reconciles exported mesh files against the part catalog.
var printCheckCmd = &cobra.Command{
	Use:   "printcheck",
	Short: "Reconcile exported mesh files against the part catalog",
	Long: `Reconcile exported mesh files against the part catalog.

Every mesh file is matched to its CAD part and bucketed by print color.
Files without a confident match land in the missing, unknown or conflicting
buckets for manual review.

Examples:
  # Check the local checkout
  bom-manager printcheck

  # Use the stricter fuzzy-match cutoff
  bom-manager printcheck --strict`,
	RunE: runPrintCheck,
}

func init() {
	printCheckCmd.Flags().BoolVar(&strictPrintCheck, "strict", false, "Use the stricter 0.9 fuzzy-match cutoff")

	RootCmd.AddCommand(printCheckCmd)
}

func runPrintCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	walker, store, err := newWalker(cfg, l)
	if err != nil {
		return err
	}

	source, err := newFileSource(cfg, store)
	if err != nil {
		return err
	}

	threshold := cfg.Printcheck.Threshold
	if strictPrintCheck {
		threshold = 0.9
	}

	svc := printcheck.NewService(walker, source, threshold, l)
	buckets, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("print check failed: %w", err)
	}

	return printcheck.WriteBuckets(cfg.Printcheck.OutDir, buckets, l)
}
