package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"bom-manager/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var sampleExport = `[
  {"label": "Frame-Left", "color": [0.3333333432674408, 1.0, 1.0, 0.0], "document": "frame"},
  {"label": "M3x10-Screw", "color": [0.8, 0.8, 0.8, 0.0], "fastener_type": "ISO4762", "document": "frame", "parent": "XY-Joint"}
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bom-parts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileWalker(t *testing.T) {
	t.Run("reads export", func(t *testing.T) {
		w := NewFileWalker(writeExport(t, sampleExport), zap.NewNop())
		records, err := w.Parts(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Frame-Left", records[0].Label)
		assert.Equal(t, "ISO4762", records[1].FastenerType)
		assert.Equal(t, "XY-Joint", records[1].Parent)
	})

	t.Run("missing file", func(t *testing.T) {
		w := NewFileWalker(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
		_, err := w.Parts(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed export", func(t *testing.T) {
		w := NewFileWalker(writeExport(t, "{not json"), zap.NewNop())
		_, err := w.Parts(context.Background())
		assert.Error(t, err)
	})
}

// stubWalker counts how often the underlying source is consulted.
type stubWalker struct {
	records []models.PartRecord
	err     error
	calls   int
}

func (s *stubWalker) Parts(ctx context.Context) ([]models.PartRecord, error) {
	s.calls++
	return s.records, s.err
}

func TestCachedWalker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	inner := &stubWalker{records: []models.PartRecord{
		{Label: "Frame-Left", Document: "frame"},
	}}

	w, err := NewCachedWalker(inner, db, "v1-180-assembly.FCStd", zap.NewNop())
	require.NoError(t, err)

	// First call misses the cache and hits the inner walker.
	records, err := w.Parts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, inner.calls)

	// Second call is served from the cache.
	records, err = w.Parts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Frame-Left", records[0].Label)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedWalkerFallsBackOnCacheError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	dialector := mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT (.+) FROM `part_cache`").WillReturnError(fmt.Errorf("cache store down"))

	inner := &stubWalker{records: []models.PartRecord{
		{Label: "Frame-Left", Document: "frame"},
	}}
	// Built directly to skip AutoMigrate against the mock.
	w := &CachedWalker{inner: inner, db: db, key: "assembly.FCStd", logger: zap.NewNop()}

	records, err := w.Parts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, inner.calls)
}
