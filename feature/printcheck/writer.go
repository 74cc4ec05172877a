package printcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// WriteBuckets writes one color-results-<bucket>.txt per bucket, entries
// sorted line by line, plus color-results-overview.txt with the count
// summary.
func WriteBuckets(dir string, b Buckets, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	buckets := []struct {
		name    string
		entries []string
	}{
		{string(VerdictMain), b.Main},
		{string(VerdictAccent), b.Accent},
		{string(VerdictMissing), b.Missing},
		{string(VerdictUnknown), b.Unknown},
		{string(VerdictConflicting), b.Conflicting},
	}
	for _, bucket := range buckets {
		lines := append([]string(nil), bucket.entries...)
		sort.Strings(lines)

		name := fmt.Sprintf("color-results-%s.txt", bucket.name)
		logger.Info("Writing color results", zap.String("file", name))
		if err := os.WriteFile(filepath.Join(dir, name), []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	overview := filepath.Join(dir, "color-results-overview.txt")
	if err := os.WriteFile(overview, []byte(b.Summary().Text()), 0o644); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}
	return nil
}
