package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualInvestment is a trade a user recorded by hand: BaseAmount of the
// base equipment was exchanged for TargetAmount of the target equipment
// on InvestedOn. Amounts are stored as given; the ledger does not check
// signs or magnitudes.
//
// Investments are exclusively owned: only OwnerUserID may read or delete
// the row. There is no update operation.
type ManualInvestment struct {
	InvestmentID string          `json:"investmentID"`
	OwnerUserID  string          `json:"-"`
	BaseSymbol   string          `json:"baseSymbol"`
	TargetSymbol string          `json:"targetSymbol"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	InvestedOn   time.Time       `json:"date"` // day granularity, UTC
	AuditFields
}
