package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
	"github.com/cryptofolio/portfolio-api/internal/core/ports"
)

// SnapshotHandler handles the snapshot ledger endpoints.
type SnapshotHandler struct {
	snapshotService ports.SnapshotService
}

func NewSnapshotHandler(snapshotService ports.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Capture handles POST /portfolio/snapshots.
//
// @Summary      Capture the current total value into the ledger
// @Tags         snapshots
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  captureSnapshotResponse
// @Failure      401  {object}  errorResponse
// @Router       /portfolio/snapshots [post]
func (h *SnapshotHandler) Capture(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.snapshotService.Capture(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, captureSnapshotResponse{Snapshot: toSnapshotResponse(*snapshot)})
}

// List handles GET /portfolio/snapshots?limit=N.
//
// @Summary      List recent snapshots, oldest first
// @Tags         snapshots
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Number of snapshots (1-30, default 7)"
// @Success      200    {object}  listSnapshotsResponse
// @Failure      401    {object}  errorResponse
// @Router       /portfolio/snapshots [get]
func (h *SnapshotHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	// Unparsable input becomes 0, which the service treats as "use default".
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	snapshots, err := h.snapshotService.List(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listSnapshotsResponse{Snapshots: toSnapshotResponses(snapshots)})
}

func toSnapshotResponse(s domain.PortfolioSnapshot) snapshotResponse {
	return snapshotResponse{
		ID:            s.ID,
		TotalValueEUR: s.TotalValueEUR,
		CapturedAt:    s.CapturedAt.UTC(),
	}
}

func toSnapshotResponses(snapshots []domain.PortfolioSnapshot) []snapshotResponse {
	out := make([]snapshotResponse, len(snapshots))
	for i, s := range snapshots {
		out[i] = toSnapshotResponse(s)
	}
	return out
}
