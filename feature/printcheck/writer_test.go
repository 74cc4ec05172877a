package printcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteBuckets(t *testing.T) {
	dir := t.TempDir()
	buckets := Buckets{
		Main:        []string{"b.stl", "a.stl"},
		Accent:      []string{"c.stl"},
		Missing:     []string{},
		Unknown:     []string{},
		Conflicting: []string{},
	}

	require.NoError(t, WriteBuckets(dir, buckets, zap.NewNop()))

	main, err := os.ReadFile(filepath.Join(dir, "color-results-main.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a.stl\nb.stl", string(main))

	accent, err := os.ReadFile(filepath.Join(dir, "color-results-accent.txt"))
	require.NoError(t, err)
	assert.Equal(t, "c.stl", string(accent))

	for _, name := range []string{"missing", "unknown", "conflicting"} {
		data, err := os.ReadFile(filepath.Join(dir, "color-results-"+name+".txt"))
		require.NoError(t, err)
		assert.Empty(t, string(data))
	}

	overview, err := os.ReadFile(filepath.Join(dir, "color-results-overview.txt"))
	require.NoError(t, err)
	assert.Equal(t, buckets.Summary().Text(), string(overview))
}

func TestWriteBucketsDoesNotMutateInput(t *testing.T) {
	dir := t.TempDir()
	buckets := Buckets{
		Main:        []string{"b.stl", "a.stl"},
		Accent:      []string{},
		Missing:     []string{},
		Unknown:     []string{},
		Conflicting: []string{},
	}

	require.NoError(t, WriteBuckets(dir, buckets, zap.NewNop()))
	assert.Equal(t, []string{"b.stl", "a.stl"}, buckets.Main)
}
