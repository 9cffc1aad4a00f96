package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
	"github.com/traiders/practice-backend/internal/core/services"
)

// --- Test Suite ---
type ProfitServiceTestSuite struct {
	suite.Suite
	mockParityQuery   *MockParityQuery
	mockEquipmentRepo *MockEquipmentRepository
	service           portssvc.ProfitSvcFacade
}

func (suite *ProfitServiceTestSuite) SetupTest() {
	suite.mockParityQuery = new(MockParityQuery)
	suite.mockEquipmentRepo = new(MockEquipmentRepository)
	suite.service = services.NewProfitService(suite.mockParityQuery, suite.mockEquipmentRepo)
}

func (suite *ProfitServiceTestSuite) expectKnownSymbol(symbol string) {
	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", mock.Anything, symbol).
		Return(&domain.Equipment{Symbol: symbol}, nil)
}

func (suite *ProfitServiceTestSuite) expectRate(base, target, ratio string) {
	suite.mockParityQuery.On("Latest", mock.Anything,
		mock.MatchedBy(func(s *string) bool { return s != nil && *s == base }),
		mock.MatchedBy(func(s *string) bool { return s != nil && *s == target }),
	).Return([]domain.Parity{
		{BaseSymbol: base, TargetSymbol: target, Ratio: decimal.RequireFromString(ratio)},
	}, nil)
}

func investment(base, target, baseAmount, targetAmount string) domain.ManualInvestment {
	return domain.ManualInvestment{
		InvestmentID: "inv-1",
		BaseSymbol:   base,
		TargetSymbol: target,
		BaseAmount:   decimal.RequireFromString(baseAmount),
		TargetAmount: decimal.RequireFromString(targetAmount),
	}
}

// --- ProfitOf ---

func (suite *ProfitServiceTestSuite) TestProfitOf_BothLegsConverted() {
	ctx := context.Background()
	// Bought 3500 TRY for 100 USD, settling in EUR:
	// cost basis 100 × 0.9 = 90, current value 3500 × 0.03 = 105.
	inv := investment("USD", "TRY", "100", "3500")

	suite.expectKnownSymbol("EUR")
	suite.expectRate("USD", "EUR", "0.9")
	suite.expectRate("TRY", "EUR", "0.03")

	profit, err := suite.service.ProfitOf(ctx, inv, "EUR")

	suite.Require().NoError(err)
	suite.True(profit.Equal(decimal.RequireFromString("15")), "got %s", profit)
	suite.mockParityQuery.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestProfitOf_SettlementLegIsExactlyOneWithoutLookup() {
	ctx := context.Background()
	// Settling in the target currency: only the base leg needs a rate.
	inv := investment("USD", "TRY", "100", "3500")

	suite.expectKnownSymbol("TRY")
	suite.expectRate("USD", "TRY", "32.5")

	profit, err := suite.service.ProfitOf(ctx, inv, "TRY")

	suite.Require().NoError(err)
	// 3500 - 100 × 32.5 = 250
	suite.True(profit.Equal(decimal.RequireFromString("250")), "got %s", profit)
	// The TRY -> TRY rate must never hit the parity store.
	suite.mockParityQuery.AssertNumberOfCalls(suite.T(), "Latest", 1)
}

func (suite *ProfitServiceTestSuite) TestProfitOf_SelfPairIsZero() {
	ctx := context.Background()
	inv := investment("TRY", "TRY", "500", "500")

	suite.expectKnownSymbol("TRY")

	profit, err := suite.service.ProfitOf(ctx, inv, "TRY")

	suite.Require().NoError(err)
	suite.True(profit.IsZero())
	suite.mockParityQuery.AssertNotCalled(suite.T(), "Latest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitServiceTestSuite) TestProfitOf_BreakEven() {
	ctx := context.Background()
	// 600 TRY bought 100 USD at 6.0; with the rate unchanged the
	// position is worth exactly what it cost.
	inv := investment("TRY", "USD", "600", "100")

	suite.expectKnownSymbol("TRY")
	suite.expectRate("USD", "TRY", "6.0")

	profit, err := suite.service.ProfitOf(ctx, inv, "TRY")

	suite.Require().NoError(err)
	suite.True(profit.IsZero(), "got %s", profit)
}

func (suite *ProfitServiceTestSuite) TestProfitOf_LinearInAmounts() {
	ctx := context.Background()
	single := investment("USD", "TRY", "100", "3500")
	double := investment("USD", "TRY", "200", "7000")

	suite.expectKnownSymbol("TRY")
	suite.expectRate("USD", "TRY", "32.5")

	p1, err := suite.service.ProfitOf(ctx, single, "TRY")
	suite.Require().NoError(err)
	p2, err := suite.service.ProfitOf(ctx, double, "TRY")
	suite.Require().NoError(err)

	suite.True(p2.Equal(p1.Mul(decimal.NewFromInt(2))), "got %s and %s", p1, p2)
}

func (suite *ProfitServiceTestSuite) TestProfitOf_UnknownSettlementSymbol() {
	ctx := context.Background()
	inv := investment("USD", "TRY", "100", "3500")

	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", mock.Anything, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ProfitOf(ctx, inv, "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockParityQuery.AssertNotCalled(suite.T(), "Latest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfitServiceTestSuite) TestProfitOf_MissingRateIsNotFound() {
	ctx := context.Background()
	inv := investment("USD", "TRY", "100", "3500")

	suite.expectKnownSymbol("EUR")
	suite.mockParityQuery.On("Latest", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ProfitOf(ctx, inv, "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- TotalProfit ---

func (suite *ProfitServiceTestSuite) TestTotalProfit_SumsAllInvestments() {
	ctx := context.Background()
	investments := []domain.ManualInvestment{
		investment("USD", "TRY", "100", "3500"), // 3500 - 3250 = 250
		investment("EUR", "TRY", "50", "1800"),  // 1800 - 1750 = 50
	}

	suite.expectKnownSymbol("TRY")
	suite.expectRate("USD", "TRY", "32.5")
	suite.expectRate("EUR", "TRY", "35")

	total, err := suite.service.TotalProfit(ctx, investments, "TRY")

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.RequireFromString("300")), "got %s", total)
}

func (suite *ProfitServiceTestSuite) TestTotalProfit_EmptyLedgerIsZero() {
	ctx := context.Background()

	suite.expectKnownSymbol("TRY")

	total, err := suite.service.TotalProfit(ctx, nil, "TRY")

	suite.Require().NoError(err)
	suite.True(total.IsZero())
}

func (suite *ProfitServiceTestSuite) TestTotalProfit_OneFailureFailsTheWhole() {
	ctx := context.Background()
	investments := []domain.ManualInvestment{
		investment("USD", "TRY", "100", "3500"),
		investment("GBP", "TRY", "10", "400"),
	}

	suite.expectKnownSymbol("TRY")
	suite.expectRate("USD", "TRY", "32.5")
	suite.mockParityQuery.On("Latest", mock.Anything,
		mock.MatchedBy(func(s *string) bool { return s != nil && *s == "GBP" }),
		mock.Anything,
	).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.TotalProfit(ctx, investments, "TRY")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProfitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitServiceTestSuite))
}
