package bom

import (
	"context"
	"fmt"
	"testing"

	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubWalker struct {
	records []models.PartRecord
	err     error
}

func (s *stubWalker) Parts(ctx context.Context) ([]models.PartRecord, error) {
	return s.records, s.err
}

func TestServiceGenerate(t *testing.T) {
	// Two auto-increment copies of the same accent-colored part: the kind
	// suffix is buried under digits, so they are printed parts, not
	// fasteners, and both count under the cleaned name.
	walker := &stubWalker{records: []models.PartRecord{
		{Label: "M3-Washer001", Color: catalog.ColorAccent, Document: "frame"},
		{Label: "M3-Washer002", Color: catalog.ColorAccent, Document: "frame"},
	}}

	svc := NewService(walker, nil, zap.NewNop())
	snap, parts, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, 2, snap.Global[models.CategoryAccent]["M3-Washer"])
	assert.Empty(t, snap.Global[models.CategoryFastener])
	assert.Equal(t, 2, snap.ByDocument["frame"][models.CategoryAccent]["M3-Washer"])
}

func TestServiceGenerateWithConsumables(t *testing.T) {
	walker := &stubWalker{records: []models.PartRecord{
		{Label: "M6x10-Screw", FastenerType: "ISO4762", Document: "frame"},
	}}

	svc := NewService(walker, DefaultConsumables, zap.NewNop())
	snap, _, err := svc.Generate(context.Background())
	require.NoError(t, err)

	fasteners := snap.Global[models.CategoryFastener]
	assert.Equal(t, 1, fasteners["Socket head M6x10-Screw"])
	assert.Equal(t, 1, fasteners["3030 M6-T-nut"])
	assert.Equal(t, 60, fasteners["Spring washer M3"])
}

func TestServiceGenerateErrors(t *testing.T) {
	t.Run("walker failure", func(t *testing.T) {
		svc := NewService(&stubWalker{err: fmt.Errorf("export unavailable")}, nil, zap.NewNop())
		_, _, err := svc.Generate(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed label", func(t *testing.T) {
		walker := &stubWalker{records: []models.PartRecord{
			{Label: "12345", Document: "frame"},
		}}
		svc := NewService(walker, nil, zap.NewNop())
		_, _, err := svc.Generate(context.Background())
		assert.ErrorIs(t, err, catalog.ErrEmptyKey)
	})
}
