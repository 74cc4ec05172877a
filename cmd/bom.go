package cmd

import (
	"context"
	"fmt"

	"bom-manager/core/config"
	"bom-manager/core/logger"
	"bom-manager/core/storage"
	"bom-manager/feature/bom"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadBom     bool
	noConsumables bool
)

// bomCmd generates the bill of materials from the parts export.
var bomCmd = &cobra.Command{
	Use:   "bom",
	Short: "Generate the bill of materials",
	Long: `Generate the bill of materials from the parts export.

Classifies every part of the assembly (printed main/accent, fastener, other),
aggregates counts globally and per CAD document, and writes the report files.

Examples:
  # Generate reports into the configured output directory
  bom-manager bom

  # Generate and publish the reports to the release bucket
  bom-manager bom --upload

  # CAD-tree counts only, no off-model hardware
  bom-manager bom --no-consumables`,
	RunE: runBom,
}

func init() {
	bomCmd.Flags().BoolVar(&uploadBom, "upload", false, "Upload report files to the release bucket")
	bomCmd.Flags().BoolVar(&noConsumables, "no-consumables", false, "Skip fixed off-model hardware quantities")

	RootCmd.AddCommand(bomCmd)
}

func runBom(cmd *cobra.Command, args []string) error {
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

	consumables := bom.DefaultConsumables
	if noConsumables || !cfg.Bom.Consumables {
		consumables = nil
	}

	svc := bom.NewService(walker, consumables, l)
	snap, _, err := svc.Generate(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate BOM: %w", err)
	}

	if err := bom.WriteSnapshot(cfg.Bom.OutDir, snap, l); err != nil {
		return err
	}

	if uploadBom {
		if store == nil {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		if err := bom.UploadSnapshot(ctx, store, cfg.Storage.Bucket, cfg.Bom.UploadPrefix, snap, l); err != nil {
			return err
		}
	}

	l.Info("BOM generation complete", zap.String("out_dir", cfg.Bom.OutDir))
	return nil
}
