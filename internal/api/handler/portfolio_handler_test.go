package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

type stubPortfolioService struct {
	listFn   func(ctx context.Context, userID string) ([]domain.PortfolioAsset, error)
	createFn func(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error)
	updateFn func(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error)
	deleteFn func(ctx context.Context, userID, assetID string) error
}

func (s *stubPortfolioService) List(ctx context.Context, userID string) ([]domain.PortfolioAsset, error) {
	return s.listFn(ctx, userID)
}

func (s *stubPortfolioService) Create(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error) {
	return s.createFn(ctx, userID, symbol, quantity)
}

func (s *stubPortfolioService) Update(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error) {
	return s.updateFn(ctx, userID, assetID, quantity)
}

func (s *stubPortfolioService) Delete(ctx context.Context, userID, assetID string) error {
	return s.deleteFn(ctx, userID, assetID)
}

type stubValuationService struct {
	total float64
	err   error
}

func (s *stubValuationService) ComputeTotal(context.Context, string) (float64, error) {
	return s.total, s.err
}

func TestPortfolioHandler_List_Success(t *testing.T) {
	stub := &stubPortfolioService{
		listFn: func(ctx context.Context, userID string) ([]domain.PortfolioAsset, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return []domain.PortfolioAsset{
				{ID: "a2", Symbol: "ETH", Quantity: 2, CreatedAt: time.Now()},
				{ID: "a1", Symbol: "BTC", Quantity: 0.1, CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	c, rec := newTestContext(t, http.MethodGet, "/portfolio/assets", "")
	c.Set("user_id", "user_1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	assets := resp["assets"]
	if len(assets) != 2 || assets[0]["symbol"] != "ETH" {
		t.Fatalf("unexpected assets payload: %+v", assets)
	}
	if _, leaked := assets[0]["user_id"]; leaked {
		t.Fatalf("owner id must never be serialised")
	}
}

func TestPortfolioHandler_MissingClaims(t *testing.T) {
	h := NewPortfolioHandler(&stubPortfolioService{}, &stubValuationService{})

	c, _ := newTestContext(t, http.MethodGet, "/portfolio/assets", "")

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestPortfolioHandler_Create_Success(t *testing.T) {
	stub := &stubPortfolioService{
		createFn: func(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error) {
			if userID != "user_1" || symbol != "btc" || quantity != 0.5 {
				t.Fatalf("unexpected args: %s %s %v", userID, symbol, quantity)
			}
			return &domain.PortfolioAsset{ID: "a1", Symbol: "BTC", Quantity: 0.5, CreatedAt: time.Now()}, nil
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	c, rec := newTestContext(t, http.MethodPost, "/portfolio/assets",
		`{"symbol":"btc","quantity":0.5}`)
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["asset"]["symbol"] != "BTC" {
		t.Fatalf("unexpected asset payload: %+v", resp["asset"])
	}
}

func TestPortfolioHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubPortfolioService{
		createFn: func(ctx context.Context, userID, symbol string, quantity float64) (*domain.PortfolioAsset, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"missing symbol", `{"quantity":1}`},
		{"zero quantity", `{"symbol":"BTC","quantity":0}`},
		{"negative quantity", `{"symbol":"BTC","quantity":-2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/portfolio/assets", tc.body)
			c.Set("user_id", "user_1")

			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestPortfolioHandler_Update_Success(t *testing.T) {
	stub := &stubPortfolioService{
		updateFn: func(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error) {
			if assetID != "a1" || quantity != 3.5 {
				t.Fatalf("unexpected args: %s %v", assetID, quantity)
			}
			return &domain.PortfolioAsset{ID: "a1", Symbol: "BTC", Quantity: 3.5, CreatedAt: time.Now()}, nil
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	c, rec := newTestContext(t, http.MethodPatch, "/portfolio/assets/a1",
		`{"quantity":3.5}`)
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Update_NotFound(t *testing.T) {
	stub := &stubPortfolioService{
		updateFn: func(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error) {
			return nil, domain.ErrAssetNotFound
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	c, _ := newTestContext(t, http.MethodPatch, "/portfolio/assets/ghost",
		`{"quantity":1}`)
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Update(c); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound to propagate, got %v", err)
	}
}

func TestPortfolioHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubPortfolioService{
		deleteFn: func(ctx context.Context, userID, assetID string) error {
			deleted = assetID
			return nil
		},
	}
	h := NewPortfolioHandler(stub, &stubValuationService{})

	c, rec := newTestContext(t, http.MethodDelete, "/portfolio/assets/a1", "")
	c.Set("user_id", "user_1")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "a1" {
		t.Fatalf("expected delete of a1, got %q", deleted)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["ok"] {
		t.Fatalf("expected ok acknowledgement, got %v", resp)
	}
}

func TestPortfolioHandler_Summary(t *testing.T) {
	h := NewPortfolioHandler(&stubPortfolioService{}, &stubValuationService{total: 11000.00})

	c, rec := newTestContext(t, http.MethodGet, "/portfolio/summary", "")
	c.Set("user_id", "user_1")

	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_value_eur"] != 11000.00 {
		t.Fatalf("expected total 11000.00, got %v", resp["total_value_eur"])
	}
}
