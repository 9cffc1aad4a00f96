package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
)

// ProfitService converts investment outcomes into a settlement currency
// using the parity query engine as its rate source. It is a pure
// read-plus-arithmetic component: no writes, no rounding.
type ProfitService struct {
	parityQuery   portssvc.ParityReaderSvc
	equipmentRepo portsrepo.EquipmentReader
}

// NewProfitService creates a new ProfitService.
func NewProfitService(parityQuery portssvc.ParityReaderSvc, equipmentRepo portsrepo.EquipmentReader) *ProfitService {
	return &ProfitService{
		parityQuery:   parityQuery,
		equipmentRepo: equipmentRepo,
	}
}

// ProfitOf returns current_value - cost_basis for one investment,
// expressed in settlementSymbol:
//
//	cost_basis    = base_amount   × rate(base   -> settlement)
//	current_value = target_amount × rate(target -> settlement)
//
// An unknown settlement symbol or a missing rate is
// apperrors.ErrNotFound. Inverted or derived rates are never used.
func (s *ProfitService) ProfitOf(ctx context.Context, investment domain.ManualInvestment, settlementSymbol string) (decimal.Decimal, error) {
	if _, err := s.equipmentRepo.FindEquipmentBySymbol(ctx, settlementSymbol); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: unknown settlement symbol %s", apperrors.ErrNotFound, settlementSymbol)
		}
		return decimal.Zero, fmt.Errorf("failed to validate settlement symbol %s: %w", settlementSymbol, err)
	}

	baseRate, err := s.rateOf(ctx, investment.BaseSymbol, settlementSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	targetRate, err := s.rateOf(ctx, investment.TargetSymbol, settlementSymbol)
	if err != nil {
		return decimal.Zero, err
	}

	costBasis := investment.BaseAmount.Mul(baseRate)
	currentValue := investment.TargetAmount.Mul(targetRate)
	return currentValue.Sub(costBasis), nil
}

// TotalProfit sums ProfitOf over the investments. All-or-nothing: any
// individual failure fails the whole computation.
func (s *ProfitService) TotalProfit(ctx context.Context, investments []domain.ManualInvestment, settlementSymbol string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, investment := range investments {
		profit, err := s.ProfitOf(ctx, investment, settlementSymbol)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to compute profit of investment %s: %w", investment.InvestmentID, err)
		}
		total = total.Add(profit)
	}
	return total, nil
}

// rateOf resolves symbol -> settlement. A symbol settles against itself
// at exactly 1 without touching the parity store; otherwise the most
// recent direct observation is used.
func (s *ProfitService) rateOf(ctx context.Context, symbol, settlementSymbol string) (decimal.Decimal, error) {
	if symbol == settlementSymbol {
		return decimal.NewFromInt(1), nil
	}
	parities, err := s.parityQuery.Latest(ctx, &symbol, &settlementSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	return parities[0].Ratio, nil
}
