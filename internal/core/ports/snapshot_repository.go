package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// SnapshotRepository defines persistence for the append-only snapshot ledger.
type SnapshotRepository interface {
	// Insert appends a snapshot and returns it with its assigned id.
	Insert(ctx context.Context, snapshot *domain.PortfolioSnapshot) (*domain.PortfolioSnapshot, error)
	// ListRecent returns the user's most recent snapshots, newest first,
	// capped at limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error)
}
