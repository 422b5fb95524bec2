package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptofolio/portfolio-api/internal/metrics"
	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

const (
	defaultSnapshotLimit = 7
	maxSnapshotLimit     = 30
)

// SnapshotService implements the append-only snapshot ledger.
type SnapshotService struct {
	repo      ports.SnapshotRepository
	valuation ports.ValuationService
	log       zerolog.Logger
}

func NewSnapshotService(repo ports.SnapshotRepository, valuation ports.ValuationService, log zerolog.Logger) *SnapshotService {
	return &SnapshotService{repo: repo, valuation: valuation, log: log}
}

// Capture values the portfolio now and appends the result. The valuation
// read and the insert are separate store operations; concurrent holdings
// mutations may be partially reflected in the captured total.
func (s *SnapshotService) Capture(ctx context.Context, userID string) (*domain.PortfolioSnapshot, error) {
	total, err := s.valuation.ComputeTotal(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.PortfolioSnapshot{
		UserID:        userID,
		TotalValueEUR: total,
		CapturedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	metrics.SnapshotsCapturedTotal.Inc()
	s.log.Info().Str("user_id", userID).Float64("total_value_eur", total).Msg("snapshot captured")
	return created, nil
}

// List returns the user's most recent snapshots re-ordered oldest first, so
// callers can plot evolution directly. A limit below 1 (including unparsed
// input reported as 0) falls back to the default of 7; anything above 30 is
// clamped to 30.
func (s *SnapshotService) List(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
	limit = clampLimit(limit)

	snapshots, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	// ListRecent returns newest first; reverse to chronological order.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}
	return snapshots, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return defaultSnapshotLimit
	}
	if limit > maxSnapshotLimit {
		return maxSnapshotLimit
	}
	return limit
}
