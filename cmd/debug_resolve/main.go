package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"bom-manager/core/config"
	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"
	"bom-manager/feature/printcheck"

	"go.uber.org/zap"
)

// Resolves a single mesh file name against the parts export and prints the
// verdict, for chasing down why a file lands in the wrong bucket.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_resolve <filename.stl>")
		os.Exit(1)
	}
	fileName := os.Args[1]

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	logg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	zap.ReplaceGlobals(logg)

	ctx := context.Background()
	walker := catalog.NewFileWalker(cfg.Catalog.PartsExport, logg)

	records, err := walker.Parts(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total part records loaded: %d\n", len(records))

	parts := make([]models.Part, 0, len(records))
	for _, rec := range records {
		part, err := catalog.Classify(rec)
		if err != nil {
			log.Fatal(err)
		}
		parts = append(parts, part)
	}

	key, err := catalog.Normalize(fileName)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Normalized key: %q\n", key)

	resolver := printcheck.NewResolver(parts, cfg.Printcheck.Threshold, logg)
	verdict, err := resolver.Resolve(fileName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Verdict: %s\n", verdict.Code)
	if verdict.Detail != "" {
		fmt.Printf("Detail: %s\n", verdict.Detail)
	}
}
