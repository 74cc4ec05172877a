// Package database handles connections for the part cache store.
//
// Reading the CAD assembly export is the expensive step of a BOM run, so the
// catalog walker may persist the flattened part list keyed by source file
// name. This package provides the GORM connection backing that cache.
//
// # Connect
//
// Connect opens the configured driver: a local SQLite file by default (the
// usual choice for a CLI run), or MySQL for shared setups. The pipeline never
// depends on the cache being present; connection failures are surfaced so the
// caller can fall back to an uncached walk.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("cache unavailable", zap.Error(err))
//	}
package database
