package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// PortfolioHandler handles the authenticated user's holdings and the
// total-value summary. Every operation is scoped to the caller resolved by
// the Auth middleware.
type PortfolioHandler struct {
	portfolioService ports.PortfolioService
	valuationService ports.ValuationService
}

func NewPortfolioHandler(portfolioService ports.PortfolioService, valuationService ports.ValuationService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		valuationService: valuationService,
	}
}

// List handles GET /portfolio/assets.
//
// @Summary      List the caller's holdings, newest first
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAssetsResponse
// @Failure      401  {object}  errorResponse
// @Router       /portfolio/assets [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	assets, err := h.portfolioService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAssetsResponse{Assets: toAssetResponses(assets)})
}

// Create handles POST /portfolio/assets.
//
// @Summary      Record a new holding
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssetRequest  true  "Symbol and quantity"
// @Success      201   {object}  createAssetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /portfolio/assets [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asset, err := h.portfolioService.Create(c.Request().Context(), userID, req.Symbol, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createAssetResponse{Asset: toAssetResponse(*asset)})
}

// Update handles PATCH /portfolio/assets/:id.
//
// @Summary      Change the quantity of a holding
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Asset id"
// @Param        body  body      updateAssetRequest  true  "New quantity"
// @Success      200   {object}  createAssetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /portfolio/assets/{id} [patch]
func (h *PortfolioHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asset, err := h.portfolioService.Update(c.Request().Context(), userID, c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createAssetResponse{Asset: toAssetResponse(*asset)})
}

// Delete handles DELETE /portfolio/assets/:id.
//
// @Summary      Remove a holding
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Asset id"
// @Success      200  {object}  okResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /portfolio/assets/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.portfolioService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Summary handles GET /portfolio/summary.
//
// @Summary      Current total value of the caller's holdings
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /portfolio/summary [get]
func (h *PortfolioHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	total, err := h.valuationService.ComputeTotal(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaryResponse{TotalValueEUR: total})
}

func toAssetResponse(a domain.PortfolioAsset) assetResponse {
	return assetResponse{
		ID:        a.ID,
		Symbol:    a.Symbol,
		Quantity:  a.Quantity,
		CreatedAt: a.CreatedAt.UTC(),
	}
}

func toAssetResponses(assets []domain.PortfolioAsset) []assetResponse {
	out := make([]assetResponse, len(assets))
	for i, a := range assets {
		out[i] = toAssetResponse(a)
	}
	return out
}
