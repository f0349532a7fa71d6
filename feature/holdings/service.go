package holdings

import (
	"context"
	"fmt"

	"sharedprint/core/reconcile"
	"sharedprint/core/storage"

	"go.uber.org/zap"
)

// Service runs holdings passes against local or object-storage paths.
type Service struct {
	cfg    Config
	client storage.Client
	logger *zap.Logger
	filter *Filter
}

// NewService creates a new holdings service. client may be nil when no
// path refers to object storage.
func NewService(cfg Config, client storage.Client, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		logger: logger,
		filter: NewFilter(logger),
	}
}

// Filter returns the service's record filter.
func (s *Service) Filter() *Filter {
	return s.filter
}

// Export writes the records of input that hold a valid item to output. The
// output is only published when the whole input was processed.
func (s *Service) Export(ctx context.Context, input, output string) (Totals, error) {
	src, err := OpenMARC(ctx, s.client, input, s.cfg)
	if err != nil {
		return Totals{}, err
	}
	defer src.Close()

	sink, err := CreateMARC(ctx, s.client, output)
	if err != nil {
		return Totals{}, err
	}

	totals, err := s.filter.Export(ctx, src, sink)
	if err != nil {
		if aerr := sink.Abort(); aerr != nil {
			s.logger.Warn("Failed to discard partial export", zap.String("output", output), zap.Error(aerr))
		}
		return Totals{}, err
	}

	if err := sink.Close(); err != nil {
		return Totals{}, fmt.Errorf("failed to finalize %s: %w", output, err)
	}

	s.logger.Debug("Export written", zap.String("output", output), zap.Int("records", sink.Count()))
	return totals, nil
}

// Count classifies every item of input without writing anything.
func (s *Service) Count(ctx context.Context, input string) (Totals, error) {
	src, err := OpenMARC(ctx, s.client, input, s.cfg)
	if err != nil {
		return Totals{}, err
	}
	defer src.Close()

	return s.filter.Export(ctx, src, nil)
}

// MARCOpener returns an Opener reading the MARC file at input.
func (s *Service) MARCOpener(input string) Opener {
	return func(ctx context.Context) (SourceCloser, error) {
		src, err := OpenMARC(ctx, s.client, input, s.cfg)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
}

// Reconcile runs a reconciliation through adapter.
func (s *Service) Reconcile(ctx context.Context, adapter reconcile.Adapter) (*reconcile.Report, error) {
	s.logger.Debug("Starting reconciliation", zap.String("adapter", adapter.Name()))
	return reconcile.Reconcile(ctx, adapter)
}
