package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"bom-manager/core/storage"
	"bom-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Walker supplies the flattened part list of a CAD assembly. Implementations
// read the export produced by the CAD-side exporter script; walking the
// document/link graph itself happens outside this tool.
type Walker interface {
	Parts(ctx context.Context) ([]models.PartRecord, error)
}

// FileWalker reads a parts export from the local filesystem.
type FileWalker struct {
	path   string
	logger *zap.Logger
}

// NewFileWalker creates a walker over a local parts export file.
func NewFileWalker(path string, logger *zap.Logger) *FileWalker {
	return &FileWalker{path: path, logger: logger}
}

func (w *FileWalker) Parts(ctx context.Context) ([]models.PartRecord, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parts export: %w", err)
	}
	return decodeParts(data, w.path, w.logger)
}

// StorageWalker reads a parts export object from the release bucket.
type StorageWalker struct {
	client storage.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewStorageWalker creates a walker over a parts export stored in a bucket.
func NewStorageWalker(client storage.Client, bucket, object string, logger *zap.Logger) *StorageWalker {
	return &StorageWalker{client: client, bucket: bucket, object: object, logger: logger}
}

func (w *StorageWalker) Parts(ctx context.Context) ([]models.PartRecord, error) {
	obj, err := w.client.GetObject(ctx, w.bucket, w.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parts export: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read parts export object: %w", err)
	}
	return decodeParts(data, w.object, w.logger)
}

func decodeParts(data []byte, source string, logger *zap.Logger) ([]models.PartRecord, error) {
	var records []models.PartRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode parts export %s: %w", source, err)
	}
	logger.Info("Loaded parts export",
		zap.String("source", source),
		zap.Int("parts", len(records)),
	)
	return records, nil
}

// partCacheEntry is the persisted cache row for one parts export.
type partCacheEntry struct {
	SourceKey string `gorm:"primaryKey;column:source_key"`
	Payload   []byte `gorm:"column:payload"`
	UpdatedAt time.Time
}

func (partCacheEntry) TableName() string {
	return "part_cache"
}

// CachedWalker memoizes another walker's result, keyed by source file name.
// Reading the assembly export is the expensive step of a run; the pipeline
// behaves identically with or without the cache.
type CachedWalker struct {
	inner  Walker
	db     *gorm.DB
	key    string
	logger *zap.Logger
}

// NewCachedWalker wraps a walker with a persisted cache.
func NewCachedWalker(inner Walker, db *gorm.DB, key string, logger *zap.Logger) (*CachedWalker, error) {
	if err := db.AutoMigrate(&partCacheEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate part cache: %w", err)
	}
	return &CachedWalker{inner: inner, db: db, key: key, logger: logger}, nil
}

func (w *CachedWalker) Parts(ctx context.Context) ([]models.PartRecord, error) {
	var entry partCacheEntry
	err := w.db.WithContext(ctx).First(&entry, "source_key = ?", w.key).Error
	switch {
	case err == nil:
		var records []models.PartRecord
		if jsonErr := json.Unmarshal(entry.Payload, &records); jsonErr == nil {
			w.logger.Info("Loaded parts from cache",
				zap.String("key", w.key),
				zap.Int("parts", len(records)),
			)
			return records, nil
		}
		w.logger.Warn("Discarding unreadable cache entry", zap.String("key", w.key))
	case errors.Is(err, gorm.ErrRecordNotFound):
		w.logger.Info("No cached parts found, reading export", zap.String("key", w.key))
	default:
		w.logger.Warn("Cache lookup failed, reading export", zap.Error(err))
	}

	records, err := w.inner.Parts(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parts for cache: %w", err)
	}
	if saveErr := w.db.WithContext(ctx).Save(&partCacheEntry{
		SourceKey: w.key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}).Error; saveErr != nil {
		// Cache writes are best-effort.
		w.logger.Warn("Failed to write part cache", zap.Error(saveErr))
	}

	return records, nil
}
