// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Stock is one row of the price table the portfolio tracker trades against.
// Prices are whole dollars.
type Stock struct {
	// Symbol is the upper-case ticker (e.g. "AAPL").
	Symbol string `json:"symbol" yaml:"symbol"`

	// Name is the company name shown in summaries and reports.
	Name string `json:"name" yaml:"name"`

	// Price is the current price per share.
	Price int64 `json:"price" yaml:"price"`

	// Cost is the purchase cost per share used for profit/loss.
	Cost int64 `json:"cost" yaml:"cost"`
}

// Position is a holding joined with its stock row.
type Position struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Price    int64  `json:"price" yaml:"price"`
	Cost     int64  `json:"cost" yaml:"cost"`
	Quantity int64  `json:"quantity" yaml:"quantity"`

	// Value is Quantity * Price.
	Value int64 `json:"value" yaml:"value"`

	// ProfitLoss is (Price - Cost) * Quantity.
	ProfitLoss int64 `json:"profit_loss" yaml:"profit_loss"`
}

// PortfolioSummary is the full set of positions with their totals.
type PortfolioSummary struct {
	Positions  []Position `json:"positions" yaml:"positions"`
	TotalValue int64      `json:"total_value" yaml:"total_value"`
	TotalPL    int64      `json:"total_pl" yaml:"total_pl"`
}

// IsEmpty reports whether the summary holds no positions.
func (s PortfolioSummary) IsEmpty() bool {
	return len(s.Positions) == 0
}
