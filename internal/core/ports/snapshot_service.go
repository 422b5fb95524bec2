package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// SnapshotService exposes the snapshot ledger use cases.
type SnapshotService interface {
	// Capture values the portfolio now and appends the result to the ledger.
	Capture(ctx context.Context, userID string) (*domain.PortfolioSnapshot, error)
	// List returns up to limit snapshots ordered oldest first. Limits below 1
	// fall back to the default; limits above the maximum are clamped.
	List(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error)
}
