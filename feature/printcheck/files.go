package printcheck

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"bom-manager/core/storage"

	"github.com/bmatcuk/doublestar"
	"github.com/minio/minio-go/v7"
)

// FileSource lists the exported mesh files to reconcile.
type FileSource interface {
	Files(ctx context.Context) ([]string, error)
}

// LocalFiles globs a checkout on disk. Returned identifiers are
// slash-separated paths relative to Root.
type LocalFiles struct {
	Root           string
	Glob           string
	ExcludeDirs    []string
	ExcludeStrings []string
}

func (l LocalFiles) Files(ctx context.Context) ([]string, error) {
	matches, err := doublestar.Glob(filepath.Join(l.Root, l.Glob))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", l.Glob, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(l.Root, match)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", match, err)
		}
		files = append(files, filepath.ToSlash(rel))
	}
	return FilterFiles(files, l.ExcludeDirs, l.ExcludeStrings), nil
}

// StorageFiles lists exported meshes from the release bucket. Objects not
// ending in Extension are skipped.
type StorageFiles struct {
	Client         storage.Client
	Bucket         string
	Prefix         string
	Extension      string
	ExcludeDirs    []string
	ExcludeStrings []string
}

func (s StorageFiles) Files(ctx context.Context) ([]string, error) {
	var files []string
	for obj := range s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Prefix:    s.Prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if s.Extension != "" && !strings.HasSuffix(obj.Key, s.Extension) {
			continue
		}
		files = append(files, obj.Key)
	}
	return FilterFiles(files, s.ExcludeDirs, s.ExcludeStrings), nil
}

// FilterFiles drops files under any excluded directory prefix or containing
// any excluded substring. Substring matching is case-insensitive, prefix
// matching is not.
func FilterFiles(files, excludeDirs, excludeStrings []string) []string {
	kept := make([]string, 0, len(files))
	for _, file := range files {
		if excluded(file, excludeDirs, excludeStrings) {
			continue
		}
		kept = append(kept, file)
	}
	return kept
}

func excluded(file string, excludeDirs, excludeStrings []string) bool {
	for _, dir := range excludeDirs {
		if strings.HasPrefix(file, dir) {
			return true
		}
	}
	lower := strings.ToLower(file)
	for _, substr := range excludeStrings {
		if strings.Contains(lower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
