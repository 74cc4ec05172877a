package printcheck

import (
	"context"

	"bom-manager/feature/catalog"
	"bom-manager/feature/catalog/models"

	"go.uber.org/zap"
)

// Service runs the reconciliation pipeline: walk the parts export, classify
// every record, list the exported mesh files, and bucket each file by its
// resolved print color.
type Service struct {
	walker    catalog.Walker
	source    FileSource
	threshold float64
	logger    *zap.Logger
}

// NewService creates a new print check service.
func NewService(walker catalog.Walker, source FileSource, threshold float64, logger *zap.Logger) *Service {
	return &Service{
		walker:    walker,
		source:    source,
		threshold: threshold,
		logger:    logger,
	}
}

// Run produces the reconciliation buckets for the current catalog and file
// set.
func (s *Service) Run(ctx context.Context) (Buckets, error) {
	records, err := s.walker.Parts(ctx)
	if err != nil {
		return Buckets{}, err
	}

	parts := make([]models.Part, 0, len(records))
	for _, rec := range records {
		part, err := catalog.Classify(rec)
		if err != nil {
			return Buckets{}, err
		}
		parts = append(parts, part)
	}

	files, err := s.source.Files(ctx)
	if err != nil {
		return Buckets{}, err
	}
	s.logger.Info("Found mesh files", zap.Int("count", len(files)))

	resolver := NewResolver(parts, s.threshold, s.logger)
	buckets, err := BuildReport(files, resolver)
	if err != nil {
		return Buckets{}, err
	}
	buckets.Summary().Log(s.logger)
	return buckets, nil
}
