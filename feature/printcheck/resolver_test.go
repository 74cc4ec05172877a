package printcheck

import (
	"testing"

	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mainPart(key string) models.Part {
	return models.Part{Label: key, Name: key, Key: key, Category: models.CategoryMain}
}

func accentPart(key string) models.Part {
	return models.Part{Label: key, Name: key, Key: key, Category: models.CategoryAccent}
}

func otherPart(key string) models.Part {
	return models.Part{Label: key, Name: key, Key: key, Category: models.CategoryOther}
}

func TestResolveContains(t *testing.T) {
	r := NewResolver([]models.Part{
		mainPart("Side-Panel"),
		accentPart("Back-Panel"),
	}, DefaultThreshold, zap.NewNop())

	// The part key is a substring of the normalized file name.
	v, err := r.Resolve("Side-Panel001.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictMain, v.Code)
	assert.Empty(t, v.Detail)
}

func TestResolveReverseContains(t *testing.T) {
	r := NewResolver([]models.Part{
		accentPart("Side-Panel-Long"),
	}, DefaultThreshold, zap.NewNop())

	// Truncated export: the file name is a substring of the part key.
	v, err := r.Resolve("Panel-Long.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictAccent, v.Code)
}

func TestResolveFuzzyThreshold(t *testing.T) {
	// Against "AAAABBBB": "AAAABBBZ" scores 14/16 = 0.875 and "AAAABBBXB"
	// scores 16/17 ~= 0.941. Neither contains the other, so tiers 1 and 2
	// stay empty and the cutoff decides.
	parts := []models.Part{
		mainPart("AAAABBBZ"),
		accentPart("AAAABBBXB"),
	}

	t.Run("default cutoff keeps both", func(t *testing.T) {
		r := NewResolver(parts, 0.8, zap.NewNop())
		v, err := r.Resolve("AAAABBBB.stl")
		require.NoError(t, err)
		assert.Equal(t, VerdictConflicting, v.Code)
		assert.Contains(t, v.Detail, "AAAABBBZ")
		assert.Contains(t, v.Detail, "AAAABBBXB")
	})

	t.Run("strict cutoff keeps only the close match", func(t *testing.T) {
		r := NewResolver(parts, 0.9, zap.NewNop())
		v, err := r.Resolve("AAAABBBB.stl")
		require.NoError(t, err)
		assert.Equal(t, VerdictAccent, v.Code)
	})
}

func TestResolveFuzzyBestOfTies(t *testing.T) {
	// Both candidates score an identical 0.5 against "XXXX", far below the
	// cutoff, so the best-of tier keeps the tied pair and the mixed colors
	// conflict.
	r := NewResolver([]models.Part{
		mainPart("XXAA"),
		accentPart("XXBB"),
	}, DefaultThreshold, zap.NewNop())

	v, err := r.Resolve("XXXX.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictConflicting, v.Code)
}

func TestResolveSameColorDuplicates(t *testing.T) {
	r := NewResolver([]models.Part{
		mainPart("Panel"),
		mainPart("Panel-Long"),
	}, DefaultThreshold, zap.NewNop())

	// Both keys are substrings of the file name; same color resolves.
	v, err := r.Resolve("Panel-Long001.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictMain, v.Code)
}

func TestResolveUnknownColor(t *testing.T) {
	r := NewResolver([]models.Part{
		otherPart("Frame"),
	}, DefaultThreshold, zap.NewNop())

	v, err := r.Resolve("Frame002.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictUnknown, v.Code)
	assert.Contains(t, v.Detail, "Frame")
	assert.Contains(t, v.String(), "unknown colors found:")
}

func TestResolveMissing(t *testing.T) {
	r := NewResolver(nil, DefaultThreshold, zap.NewNop())

	v, err := r.Resolve("Orphan.stl")
	require.NoError(t, err)
	assert.Equal(t, VerdictMissing, v.Code)
}

func TestResolveMalformedFileName(t *testing.T) {
	r := NewResolver([]models.Part{mainPart("Panel")}, DefaultThreshold, zap.NewNop())

	_, err := r.Resolve("12345.stl")
	assert.ErrorIs(t, err, catalog.ErrEmptyKey)
}

func TestSimilarityIsSymmetric(t *testing.T) {
	assert.Equal(t, similarity("Side-Panel", "Side-Pane"), similarity("Side-Pane", "Side-Panel"))
	assert.Equal(t, 1.0, similarity("Panel", "Panel"))
	assert.Equal(t, 0.0, similarity("AAAA", "BBBB"))
}
