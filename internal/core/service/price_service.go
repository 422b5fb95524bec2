package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptofolio/portfolio-api/internal/metrics"
	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// PriceCache abstracts the read-through cache in front of the price list
// (Redis). Get reports ok=false on a miss.
type PriceCache interface {
	Get(ctx context.Context) ([]domain.AssetPrice, bool, error)
	Set(ctx context.Context, prices []domain.AssetPrice) error
	Invalidate(ctx context.Context) error
}

// PriceService implements the shared price registry.
type PriceService struct {
	repo  ports.PriceRepository
	cache PriceCache
	log   zerolog.Logger
}

// NewPriceService returns a PriceService. cache may be nil, in which case
// every List goes straight to the store.
func NewPriceService(repo ports.PriceRepository, cache PriceCache, log zerolog.Logger) *PriceService {
	return &PriceService{repo: repo, cache: cache, log: log}
}

// List returns every registered price sorted by symbol ascending. Cache
// failures are logged and bypassed, never surfaced.
func (s *PriceService) List(ctx context.Context) ([]domain.AssetPrice, error) {
	if s.cache != nil {
		prices, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("price cache read failed, falling back to store")
		} else if ok {
			metrics.PriceCacheTotal.WithLabelValues("hit").Inc()
			return prices, nil
		} else {
			metrics.PriceCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	prices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, prices); err != nil {
			s.log.Warn().Err(err).Msg("price cache write failed")
		}
	}
	return prices, nil
}

// Upsert validates and writes one price, overwriting any previous value and
// timestamp for the symbol.
func (s *PriceService) Upsert(ctx context.Context, symbol string, priceEUR float64) error {
	symbol = domain.NormalizeSymbol(symbol)
	if !domain.ValidSymbol(symbol) || !domain.ValidPrice(priceEUR) {
		return domain.Invalid("invalid symbol or price_eur")
	}

	if err := s.repo.Upsert(ctx, symbol, priceEUR, time.Now().UTC()); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("price cache invalidation failed")
		}
	}

	metrics.PriceUpsertsTotal.WithLabelValues(symbol).Inc()
	s.log.Info().Str("symbol", symbol).Float64("price_eur", priceEUR).Msg("price upserted")
	return nil
}
