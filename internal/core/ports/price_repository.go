package ports

import (
	"context"
	"time"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

// PriceRepository defines persistence operations for the shared price registry.
type PriceRepository interface {
	// List returns every registered price sorted by symbol ascending.
	List(ctx context.Context) ([]domain.AssetPrice, error)
	// Upsert inserts or overwrites the price for a symbol. Repeated upserts
	// with the same symbol never create a second row.
	Upsert(ctx context.Context, symbol string, priceEUR float64, updatedAt time.Time) error
	// FindBySymbols returns a symbol → price map for the given symbols.
	// Symbols with no registered price are simply absent from the map.
	FindBySymbols(ctx context.Context, symbols []string) (map[string]float64, error)
}
