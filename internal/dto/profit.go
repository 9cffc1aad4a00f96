package dto

import "github.com/shopspring/decimal"

// displayPrecision is the conventional display precision for currency
// profit figures. Rounding happens here, at the presentation boundary,
// never inside the calculator.
const displayPrecision = 2

// ProfitResponse defines the profit of a single investment expressed in
// the settlement currency.
type ProfitResponse struct {
	InvestmentID string  `json:"investmentID"`
	Symbol       string  `json:"symbol"`
	Profit       float64 `json:"profit"`
}

// TotalProfitResponse defines the summed profit over a user's ledger.
type TotalProfitResponse struct {
	Symbol      string  `json:"symbol"`
	TotalProfit float64 `json:"totalProfit"`
}

// ToProfitResponse rounds a profit figure for display.
func ToProfitResponse(investmentID, symbol string, profit decimal.Decimal) ProfitResponse {
	return ProfitResponse{
		InvestmentID: investmentID,
		Symbol:       symbol,
		Profit:       profit.Round(displayPrecision).InexactFloat64(),
	}
}

// ToTotalProfitResponse rounds a total profit figure for display.
func ToTotalProfitResponse(symbol string, total decimal.Decimal) TotalProfitResponse {
	return TotalProfitResponse{
		Symbol:      symbol,
		TotalProfit: total.Round(displayPrecision).InexactFloat64(),
	}
}
