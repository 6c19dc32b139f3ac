package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balances holds the four balance magnitudes of a user's portfolio.
// COP is the local fiat currency, CCOP the cCOP stable token, CELO the
// internal settlement unit. All magnitudes are non-negative display values.
type Balances struct {
	COP  decimal.Decimal `json:"cop"`
	USD  decimal.Decimal `json:"usd"`
	CCOP decimal.Decimal `json:"ccop"`
	CELO decimal.Decimal `json:"celo"`
}

// PositionProject is the denormalized project snapshot carried by a position.
// It is not a live reference; a project rename is only visible after a refetch.
type PositionProject struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         ProjectType `json:"type"`
	CoverAssetID string      `json:"coverAssetId,omitempty"`
}

// Position is a single investment held in a portfolio.
type Position struct {
	ID           string          `json:"id"`
	Project      PositionProject `json:"project"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Portfolio is an immutable snapshot of a user's holdings, rebuilt wholesale
// on every fetch. Positions is never nil.
type Portfolio struct {
	Balances  Balances   `json:"balances"`
	Positions []Position `json:"positions"`
}
