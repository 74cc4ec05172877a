package bom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bom-manager/core/storage"
	"bom-manager/core/utils"
	"bom-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// reportFiles lays a snapshot out into the report files the documentation
// build consumes. Key names are part of the published format.
func reportFiles(snap Snapshot) map[string]any {
	return map[string]any{
		"bom-all.json":       snap.Global,
		"bom-fasteners.json": snap.Global[models.CategoryFastener],
		"bom-printed-parts.json": map[string]map[string]int{
			"printed (main color)":   snap.Global[models.CategoryMain],
			"printed (accent color)": snap.Global[models.CategoryAccent],
		},
		"bom-other.json":  snap.Global[models.CategoryOther],
		"bom-detail.json": snap.ByDocument,
	}
}

// WriteSnapshot writes the BOM report files into dir.
func WriteSnapshot(dir string, snap Snapshot, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := reportFiles(snap)
	for _, name := range utils.SortedKeys(files) {
		data, err := json.MarshalIndent(files[name], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		logger.Info("Writing BOM report", zap.String("file", name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// UploadSnapshot publishes the BOM report files to the release bucket under
// the given prefix.
func UploadSnapshot(ctx context.Context, client storage.Client, bucket, prefix string, snap Snapshot, logger *zap.Logger) error {
	files := reportFiles(snap)
	for _, name := range utils.SortedKeys(files) {
		data, err := json.MarshalIndent(files[name], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		object := prefix + name
		logger.Info("Uploading BOM report", zap.String("object", object))
		_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", object, err)
		}
	}
	return nil
}
