package ports

import (
	"context"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// PriceService exposes the price registry use cases.
type PriceService interface {
	List(ctx context.Context) ([]domain.AssetPrice, error)
	Upsert(ctx context.Context, symbol string, priceEUR float64) error
}
