package domain

import "time"

// PortfolioAsset is a single holding: a quantity of one symbol owned by one
// user. A user may hold the same symbol in several independent records.
// The symbol need not exist in the price registry; valuation treats a
// missing price as zero.
type PortfolioAsset struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Symbol    string    `json:"symbol"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// PortfolioSnapshot is an append-only record of a user's total portfolio
// value at capture time, rounded to two decimal places.
type PortfolioSnapshot struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	TotalValueEUR float64   `json:"total_value_eur"`
	CapturedAt    time.Time `json:"captured_at"`
}
