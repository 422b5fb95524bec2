package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// PortfolioRepository defines persistence operations for holdings.
// Every method is scoped to the owning user; an asset that exists but
// belongs to someone else behaves exactly like one that does not exist.
type PortfolioRepository interface {
	// ListByUser returns the user's holdings, newest-created first.
	ListByUser(ctx context.Context, userID string) ([]domain.PortfolioAsset, error)
	// Create inserts a new holding and returns it with its assigned id.
	Create(ctx context.Context, asset *domain.PortfolioAsset) (*domain.PortfolioAsset, error)
	// UpdateQuantity sets the quantity of the user's asset and returns the
	// updated record. Unknown or foreign ids yield domain.ErrAssetNotFound.
	UpdateQuantity(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error)
	// Delete removes the user's asset, with the same not-found semantics.
	Delete(ctx context.Context, userID, assetID string) error
}
