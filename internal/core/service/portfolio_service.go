package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// PortfolioService implements owner-scoped CRUD on holdings. Ownership is
// enforced by the repository filter on every query path, including update
// and delete.
type PortfolioService struct {
	repo ports.PortfolioRepository
	log  zerolog.Logger
}

func NewPortfolioService(repo ports.PortfolioRepository, log zerolog.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, log: log}
}

func (s *PortfolioService) List(ctx context.Context, userID string) ([]domain.PortfolioAsset, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create records a new holding. The same symbol may be held in several
// independent records; no deduplication is attempted.
func (s *PortfolioService) Create(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error) {
	symbol = domain.NormalizeSymbol(symbol)
	if !domain.ValidSymbol(symbol) || !domain.ValidQuantity(quantity) {
		return nil, domain.Invalid("invalid symbol or quantity (must be > 0)")
	}

	asset := &domain.PortfolioAsset{
		UserID:    userID,
		Symbol:    symbol,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, asset)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("symbol", symbol).Msg("asset created")
	return created, nil
}

func (s *PortfolioService) Update(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error) {
	if !domain.ValidQuantity(quantity) {
		return nil, domain.Invalid("invalid id or quantity")
	}
	return s.repo.UpdateQuantity(ctx, userID, assetID, quantity)
}

func (s *PortfolioService) Delete(ctx context.Context, userID, assetID string) error {
	return s.repo.Delete(ctx, userID, assetID)
}
