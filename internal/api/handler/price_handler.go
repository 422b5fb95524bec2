package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// PriceHandler handles the shared price registry endpoints. Prices are
// global: any authenticated user may read or upsert them.
type PriceHandler struct {
	priceService ports.PriceService
}

func NewPriceHandler(priceService ports.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// List handles GET /prices.
//
// @Summary      List all registered prices, sorted by symbol
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPricesResponse
// @Failure      401  {object}  errorResponse
// @Router       /prices [get]
func (h *PriceHandler) List(c echo.Context) error {
	prices, err := h.priceService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPricesResponse{Prices: toPriceResponses(prices)})
}

// Upsert handles PUT /prices/:symbol.
//
// @Summary      Insert or overwrite the price for a symbol
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        symbol  path      string              true  "Asset symbol (e.g. BTC)"
// @Param        body    body      upsertPriceRequest  true  "Price in the reference currency"
// @Success      200     {object}  okResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /prices/{symbol} [put]
func (h *PriceHandler) Upsert(c echo.Context) error {
	var req upsertPriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.PriceEUR == nil {
		return domain.Invalid("invalid symbol or price_eur")
	}

	if err := h.priceService.Upsert(c.Request().Context(), c.Param("symbol"), *req.PriceEUR); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func toPriceResponses(prices []domain.AssetPrice) []priceResponse {
	out := make([]priceResponse, len(prices))
	for i, p := range prices {
		out[i] = priceResponse{
			Symbol:    p.Symbol,
			PriceEUR:  p.PriceEUR,
			UpdatedAt: p.UpdatedAt.UTC(),
		}
	}
	return out
}
