package dto

import (
	"github.com/shopspring/decimal"
	"github.com/traiders/practice-backend/internal/core/domain"
)

// CreateInvestmentRequest defines the data needed to record an
// investment. Amounts are accepted as given, including zero or
// mismatched signs; the ledger is deliberately permissive there.
// Date is optional and defaults to the current UTC date.
type CreateInvestmentRequest struct {
	Base         string          `json:"base" binding:"required,symbol"`
	Target       string          `json:"target" binding:"required,symbol"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Date         string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID string          `json:"investmentID"`
	BaseSymbol   string          `json:"baseSymbol"`
	TargetSymbol string          `json:"targetSymbol"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Date         string          `json:"date"` // YYYY-MM-DD
}

// ListInvestmentsResponse wraps the list of a user's investments.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts a domain.ManualInvestment to its DTO
func ToInvestmentResponse(inv *domain.ManualInvestment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID: inv.InvestmentID,
		BaseSymbol:   inv.BaseSymbol,
		TargetSymbol: inv.TargetSymbol,
		BaseAmount:   inv.BaseAmount,
		TargetAmount: inv.TargetAmount,
		Date:         inv.InvestedOn.Format("2006-01-02"),
	}
}

// ToListInvestmentsResponse converts a slice of investments to the list DTO
func ToListInvestmentsResponse(investments []domain.ManualInvestment) ListInvestmentsResponse {
	res := make([]InvestmentResponse, len(investments))
	for i := range investments {
		res[i] = ToInvestmentResponse(&investments[i])
	}
	return ListInvestmentsResponse{Investments: res}
}
