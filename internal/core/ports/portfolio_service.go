package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// PortfolioService exposes the holdings use cases for one authenticated user.
type PortfolioService interface {
	List(ctx context.Context, userID string) ([]domain.PortfolioAsset, error)
	Create(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error)
	Update(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error)
	Delete(ctx context.Context, userID, assetID string) error
}

// ValuationService computes the current total value of a user's holdings.
type ValuationService interface {
	// ComputeTotal sums quantity × price over the user's holdings, treating
	// missing prices as zero, and rounds to two decimal places. Pure read.
	ComputeTotal(ctx context.Context, userID string) (float64, error)
}
