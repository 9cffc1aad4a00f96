package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualInvestment mirrors the manual_investments table.
type ManualInvestment struct {
	InvestmentID string          `db:"investment_id"`
	OwnerUserID  string          `db:"owner_user_id"`
	BaseSymbol   string          `db:"base_symbol"`
	TargetSymbol string          `db:"target_symbol"`
	BaseAmount   decimal.Decimal `db:"base_amount"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	InvestedOn   time.Time       `db:"invested_on"`
	AuditFields
}
