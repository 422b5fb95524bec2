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

type stubSnapshotService struct {
	captureFn func(ctx context.Context, userID string) (*domain.PortfolioSnapshot, error)
	listFn    func(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error)
}

func (s *stubSnapshotService) Capture(ctx context.Context, userID string) (*domain.PortfolioSnapshot, error) {
	return s.captureFn(ctx, userID)
}

func (s *stubSnapshotService) List(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
	return s.listFn(ctx, userID, limit)
}

func TestSnapshotHandler_Capture_Success(t *testing.T) {
	stub := &stubSnapshotService{
		captureFn: func(ctx context.Context, userID string) (*domain.PortfolioSnapshot, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &domain.PortfolioSnapshot{ID: "s1", TotalValueEUR: 11000.00, CapturedAt: time.Now()}, nil
		},
	}
	h := NewSnapshotHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/portfolio/snapshots", "")
	c.Set("user_id", "user_1")

	if err := h.Capture(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	snapshot := resp["snapshot"]
	if snapshot["id"] != "s1" || snapshot["total_value_eur"] != 11000.0 {
		t.Fatalf("unexpected snapshot payload: %+v", snapshot)
	}
}

func TestSnapshotHandler_List_PassesParsedLimit(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"absent", "", 0},
		{"explicit", "?limit=12", 12},
		{"unparsable becomes zero", "?limit=abc", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotLimit := -1
			stub := &stubSnapshotService{
				listFn: func(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			h := NewSnapshotHandler(stub)

			c, rec := newTestContext(t, http.MethodGet, "/portfolio/snapshots"+tc.query, "")
			c.Set("user_id", "user_1")

			if err := h.List(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if gotLimit != tc.wantLimit {
				t.Fatalf("expected limit %d passed to service, got %d", tc.wantLimit, gotLimit)
			}
		})
	}
}

func TestSnapshotHandler_List_Success(t *testing.T) {
	base := time.Now().UTC()
	stub := &stubSnapshotService{
		listFn: func(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
			return []domain.PortfolioSnapshot{
				{ID: "s1", TotalValueEUR: 100, CapturedAt: base.Add(-time.Hour)},
				{ID: "s2", TotalValueEUR: 200, CapturedAt: base},
			}, nil
		},
	}
	h := NewSnapshotHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/portfolio/snapshots", "")
	c.Set("user_id", "user_1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	snapshots := resp["snapshots"]
	if len(snapshots) != 2 || snapshots[0]["id"] != "s1" {
		t.Fatalf("unexpected snapshots payload: %+v", snapshots)
	}
}

func TestSnapshotHandler_MissingClaims(t *testing.T) {
	h := NewSnapshotHandler(&stubSnapshotService{})

	c, _ := newTestContext(t, http.MethodPost, "/portfolio/snapshots", "")

	err := h.Capture(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
