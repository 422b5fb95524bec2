package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// okResponse acknowledges mutations that return no record.
type okResponse struct {
	OK bool `json:"ok"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// --- Prices ---

type upsertPriceRequest struct {
	// Pointer distinguishes an absent field from an explicit zero: zero is a
	// legal price, a missing one is rejected. No `required` tag because
	// validator's required also rejects a pointer to zero.
	PriceEUR *float64 `json:"price_eur"`
}

type priceResponse struct {
	Symbol    string    `json:"symbol"`
	PriceEUR  float64   `json:"price_eur"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listPricesResponse struct {
	Prices []priceResponse `json:"prices"`
}

// --- Portfolio assets ---

type createAssetRequest struct {
	Symbol   string  `json:"symbol"   validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type updateAssetRequest struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type assetResponse struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type createAssetResponse struct {
	Asset assetResponse `json:"asset"`
}

type listAssetsResponse struct {
	Assets []assetResponse `json:"assets"`
}

type summaryResponse struct {
	TotalValueEUR float64 `json:"total_value_eur"`
}

// --- Snapshots ---

type snapshotResponse struct {
	ID            string    `json:"id"`
	TotalValueEUR float64   `json:"total_value_eur"`
	CapturedAt    time.Time `json:"captured_at"`
}

type captureSnapshotResponse struct {
	Snapshot snapshotResponse `json:"snapshot"`
}

type listSnapshotsResponse struct {
	Snapshots []snapshotResponse `json:"snapshots"`
}
