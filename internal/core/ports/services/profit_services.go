package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/traiders/practice-backend/internal/core/domain"
)

// ProfitSvcFacade converts investment outcomes into a settlement
// currency. Pure reads plus arithmetic; rounding for display happens at
// the DTO boundary, never here.
type ProfitSvcFacade interface {
	// ProfitOf returns current_value - cost_basis for one investment,
	// expressed in settlementSymbol. Missing rates are
	// apperrors.ErrNotFound; a derived or inverted rate is never used.
	ProfitOf(ctx context.Context, investment domain.ManualInvestment, settlementSymbol string) (decimal.Decimal, error)

	// TotalProfit sums ProfitOf over the investments. Any individual
	// failure fails the whole computation.
	TotalProfit(ctx context.Context, investments []domain.ManualInvestment, settlementSymbol string) (decimal.Decimal, error)
}
