package printcheck

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

type stubSource struct {
	files []string
	err   error
}

func (s *stubSource) Files(ctx context.Context) ([]string, error) {
	return s.files, s.err
}

func TestServiceRun(t *testing.T) {
	walker := &stubWalker{records: []models.PartRecord{
		{Label: "Side-Panel001", Color: catalog.ColorMain, Document: "panels"},
		{Label: "Back-Panel", Color: catalog.ColorAccent, Document: "panels"},
	}}
	source := &stubSource{files: []string{
		"STLs/panels/Side-Panel001.stl",
		"STLs/panels/Back-Panel.stl",
		"STLs/panels/Orphan-Widget.stl",
	}}

	svc := NewService(walker, source, DefaultThreshold, zap.NewNop())
	buckets, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"STLs/panels/Side-Panel001.stl"}, buckets.Main)
	assert.Equal(t, []string{"STLs/panels/Back-Panel.stl"}, buckets.Accent)
	assert.Equal(t, len(source.files), buckets.total())
}

func TestServiceRunErrors(t *testing.T) {
	t.Run("walker failure", func(t *testing.T) {
		svc := NewService(&stubWalker{err: fmt.Errorf("export unavailable")}, &stubSource{}, DefaultThreshold, zap.NewNop())
		_, err := svc.Run(context.Background())
		assert.Error(t, err)
	})

	t.Run("source failure", func(t *testing.T) {
		svc := NewService(&stubWalker{}, &stubSource{err: fmt.Errorf("bucket gone")}, DefaultThreshold, zap.NewNop())
		_, err := svc.Run(context.Background())
		assert.Error(t, err)
	})
}
