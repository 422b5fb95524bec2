package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/portfolio-api/internal/metrics"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// ValuationService joins a user's holdings against the price registry to
// compute the portfolio's total value. It mutates nothing. The holdings read
// and the price read are two independent store queries with no snapshot
// isolation; a concurrent mutation may be partially reflected.
type ValuationService struct {
	portfolio ports.PortfolioRepository
	prices    ports.PriceRepository
	log       zerolog.Logger
}

func NewValuationService(portfolio ports.PortfolioRepository, prices ports.PriceRepository, log zerolog.Logger) *ValuationService {
	return &ValuationService{portfolio: portfolio, prices: prices, log: log}
}

// ComputeTotal returns the sum of quantity × price over the user's holdings,
// rounded to two decimal places, half away from zero. Symbols with no
// registered price contribute zero. A user with no holdings totals zero.
func (s *ValuationService) ComputeTotal(ctx context.Context, userID string) (float64, error) {
	start := time.Now()
	defer func() {
		metrics.ValuationDuration.Observe(time.Since(start).Seconds())
	}()

	assets, err := s.portfolio.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(assets) == 0 {
		return 0, nil
	}

	seen := make(map[string]struct{}, len(assets))
	symbols := make([]string, 0, len(assets))
	for _, a := range assets {
		if _, ok := seen[a.Symbol]; ok {
			continue
		}
		seen[a.Symbol] = struct{}{}
		symbols = append(symbols, a.Symbol)
	}

	priceBySymbol, err := s.prices.FindBySymbols(ctx, symbols)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, a := range assets {
		price := priceBySymbol[a.Symbol] // absent symbol → 0
		total = total.Add(decimal.NewFromFloat(a.Quantity).Mul(decimal.NewFromFloat(price)))
	}

	// decimal.Round is half away from zero on the cent boundary.
	value, _ := total.Round(2).Float64()
	return value, nil
}
