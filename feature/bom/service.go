package bom

import (
	"context"

	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"

	"go.uber.org/zap"
)

// Service runs the BOM pipeline: walk the export, classify every record,
// aggregate counts, apply consumables.
type Service struct {
	walker      catalog.Walker
	consumables []Consumable
	logger      *zap.Logger
}

// NewService creates a new BOM service. A nil consumables slice skips the
// off-model hardware entirely.
func NewService(walker catalog.Walker, consumables []Consumable, logger *zap.Logger) *Service {
	return &Service{
		walker:      walker,
		consumables: consumables,
		logger:      logger,
	}
}

// Generate produces the BOM snapshot and the classified part list. The part
// list is returned so a print check in the same run can reuse the walk.
func (s *Service) Generate(ctx context.Context) (Snapshot, []models.Part, error) {
	records, err := s.walker.Parts(ctx)
	if err != nil {
		return Snapshot{}, nil, err
	}

	agg := NewAggregator()
	parts := make([]models.Part, 0, len(records))
	for _, rec := range records {
		part, err := catalog.Classify(rec)
		if err != nil {
			return Snapshot{}, nil, err
		}
		agg.Add(part)
		parts = append(parts, part)
	}

	if len(s.consumables) > 0 {
		agg.ApplyConsumables(s.consumables)
	}

	s.logger.Info("BOM aggregated",
		zap.Int("parts", len(parts)),
		zap.Int("documents", len(agg.byDocument)),
	)

	return agg.Snapshot(), parts, nil
}
