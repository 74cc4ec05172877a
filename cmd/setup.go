package cmd

import (
	"fmt"

	"bom-manager/core/config"
	"bom-manager/core/database"
	"bom-manager/core/storage"
	"bom-manager/feature/catalog"
	"bom-manager/feature/printcheck"

	"go.uber.org/zap"
)

// newWalker builds the parts export walker selected by configuration. The
// storage client is returned alongside so commands that also talk to the
// bucket can reuse the connection; it is nil for the file source.
func newWalker(cfg *config.Config, logg *zap.Logger) (catalog.Walker, storage.Client, error) {
	var (
		inner catalog.Walker
		store storage.Client
	)
	switch cfg.Catalog.Source {
	case catalog.SourceStorage:
		var err error
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		inner = catalog.NewStorageWalker(store, cfg.Storage.Bucket, cfg.Catalog.Object, logg)
	case catalog.SourceFile, "":
		inner = catalog.NewFileWalker(cfg.Catalog.PartsExport, logg)
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if !cfg.Catalog.UseCache {
		return inner, store, nil
	}

	// The cache is an optimization; a broken cache never fails a run.
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Part cache unavailable, reading export directly", zap.Error(err))
		return inner, store, nil
	}
	key := cfg.Catalog.PartsExport
	if cfg.Catalog.Source == catalog.SourceStorage {
		key = cfg.Catalog.Object
	}
	cached, err := catalog.NewCachedWalker(inner, db, key, logg)
	if err != nil {
		logg.Warn("Part cache unavailable, reading export directly", zap.Error(err))
		return inner, store, nil
	}
	return cached, store, nil
}

// newFileSource builds the mesh file source selected by configuration,
// reusing an existing storage client when one is passed in.
func newFileSource(cfg *config.Config, store storage.Client) (printcheck.FileSource, error) {
	switch cfg.Printcheck.Source {
	case printcheck.SourceStorage:
		if store == nil {
			var err error
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		return printcheck.StorageFiles{
			Client:         store,
			Bucket:         cfg.Storage.Bucket,
			Prefix:         cfg.Printcheck.Prefix,
			Extension:      cfg.Printcheck.Extension,
			ExcludeDirs:    cfg.Printcheck.ExcludeDirList(),
			ExcludeStrings: cfg.Printcheck.ExcludeStringList(),
		}, nil
	case printcheck.SourceLocal, "":
		return printcheck.LocalFiles{
			Root:           cfg.Printcheck.Root,
			Glob:           cfg.Printcheck.Glob,
			ExcludeDirs:    cfg.Printcheck.ExcludeDirList(),
			ExcludeStrings: cfg.Printcheck.ExcludeStringList(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown printcheck source %q", cfg.Printcheck.Source)
	}
}
