package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
	"github.com/traiders/practice-backend/internal/core/services"
)

// --- Test Suite ---
type ParityServiceTestSuite struct {
	suite.Suite
	mockParityRepo    *MockParityRepository
	mockEquipmentRepo *MockEquipmentRepository
	service           portssvc.ParitySvcFacade
}

func (suite *ParityServiceTestSuite) SetupTest() {
	suite.mockParityRepo = new(MockParityRepository)
	suite.mockEquipmentRepo = new(MockEquipmentRepository)
	suite.service = services.NewParityService(suite.mockParityRepo, suite.mockEquipmentRepo)
}

func parityAt(base, target string, ratio string, seq int64, at time.Time) domain.Parity {
	return domain.Parity{
		RecordedSeq:  seq,
		BaseSymbol:   base,
		TargetSymbol: target,
		Ratio:        decimal.RequireFromString(ratio),
		RecordedAt:   at,
	}
}

// --- Latest ---

func (suite *ParityServiceTestSuite) TestLatest_KeepsOneRecordPerPair() {
	ctx := context.Background()
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)

	// Rows arrive in the repository ordering contract: pair ascending,
	// recency descending within the pair.
	rows := []domain.Parity{
		parityAt("EUR", "USD", "1.09", 40, t2),
		parityAt("EUR", "USD", "1.08", 30, t1),
		parityAt("USD", "TRY", "32.50", 41, t2),
		parityAt("USD", "TRY", "32.10", 31, t1),
	}
	suite.mockParityRepo.On("FindParities", ctx, portsrepo.ParityFilter{}).Return(rows, nil).Once()

	parities, err := suite.service.Latest(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(parities, 2)
	suite.Equal(int64(40), parities[0].RecordedSeq)
	suite.Equal(int64(41), parities[1].RecordedSeq)
	suite.mockParityRepo.AssertExpectations(suite.T())
}

func (suite *ParityServiceTestSuite) TestLatest_TimestampTieBrokenByInsertionOrder() {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rows := []domain.Parity{
		parityAt("USD", "TRY", "32.60", 51, at),
		parityAt("USD", "TRY", "32.50", 50, at),
	}
	suite.mockParityRepo.On("FindParities", ctx, mock.Anything).Return(rows, nil).Once()

	parities, err := suite.service.Latest(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(parities, 1)
	suite.Equal(int64(51), parities[0].RecordedSeq)
	suite.Equal("32.6", parities[0].Ratio.String())
}

func (suite *ParityServiceTestSuite) TestLatest_IncludesStoredSelfPairRows() {
	ctx := context.Background()
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// The store may hold same-symbol observations (ratio 1); they are
	// ordinary pairs to the engine.
	rows := []domain.Parity{
		parityAt("TRY", "TRY", "1", 61, t2),
		parityAt("TRY", "TRY", "1", 60, t1),
		parityAt("USD", "TRY", "32.50", 62, t2),
	}
	suite.mockParityRepo.On("FindParities", ctx, portsrepo.ParityFilter{}).Return(rows, nil).Once()

	parities, err := suite.service.Latest(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(parities, 2)
	suite.Equal("TRY", parities[0].BaseSymbol)
	suite.Equal("TRY", parities[0].TargetSymbol)
	suite.Equal(int64(61), parities[0].RecordedSeq)
	suite.Equal("USD", parities[1].BaseSymbol)
}

func (suite *ParityServiceTestSuite) TestLatest_FullySpecifiedPairWithoutHistoryIsNotFound() {
	ctx := context.Background()
	base, target := "USD", "TRY"

	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", ctx, base).Return(&domain.Equipment{Symbol: base}, nil).Once()
	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", ctx, target).Return(&domain.Equipment{Symbol: target}, nil).Once()
	suite.mockParityRepo.On("FindParities", ctx, mock.Anything).Return([]domain.Parity{}, nil).Once()

	parities, err := suite.service.Latest(ctx, &base, &target)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(parities)
	suite.mockParityRepo.AssertExpectations(suite.T())
}

func (suite *ParityServiceTestSuite) TestLatest_UnknownFilterSymbolIsNotFound() {
	ctx := context.Background()
	base := "XXX"

	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", ctx, base).Return(nil, apperrors.ErrNotFound).Once()

	parities, err := suite.service.Latest(ctx, &base, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(parities)
	suite.mockParityRepo.AssertNotCalled(suite.T(), "FindParities", mock.Anything, mock.Anything)
}

func (suite *ParityServiceTestSuite) TestLatest_BaseFilterOnlyReturnsAllTargets() {
	ctx := context.Background()
	base := "USD"
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rows := []domain.Parity{
		parityAt("USD", "EUR", "0.91", 10, at),
		parityAt("USD", "TRY", "32.50", 11, at),
	}
	suite.mockEquipmentRepo.On("FindEquipmentBySymbol", ctx, base).Return(&domain.Equipment{Symbol: base}, nil).Once()
	suite.mockParityRepo.On("FindParities", ctx, mock.MatchedBy(func(f portsrepo.ParityFilter) bool {
		return f.BaseSymbol != nil && *f.BaseSymbol == base && f.TargetSymbol == nil && f.From == nil && f.To == nil
	})).Return(rows, nil).Once()

	parities, err := suite.service.Latest(ctx, &base, nil)

	suite.Require().NoError(err)
	suite.Len(parities, 2)
}

// --- Historic ---

func (suite *ParityServiceTestSuite) TestHistoric_QueriesTheUTCDayWindow() {
	ctx := context.Background()
	// A timestamp in the middle of the day, in a non-UTC zone
	day := time.Date(2025, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	suite.mockParityRepo.On("FindParities", ctx, mock.MatchedBy(func(f portsrepo.ParityFilter) bool {
		if f.From == nil || f.To == nil {
			return false
		}
		from := *f.From
		return from.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(from.Add(24*time.Hour))
	})).Return([]domain.Parity{}, nil).Once()

	parities, err := suite.service.Historic(ctx, day, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(parities)
	suite.mockParityRepo.AssertExpectations(suite.T())
}

func (suite *ParityServiceTestSuite) TestHistoric_KeepsLatestWithinTheDay() {
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := []domain.Parity{
		parityAt("USD", "TRY", "32.70", 22, day.Add(18*time.Hour)),
		parityAt("USD", "TRY", "32.40", 21, day.Add(6*time.Hour)),
	}
	suite.mockParityRepo.On("FindParities", ctx, mock.Anything).Return(rows, nil).Once()

	parities, err := suite.service.Historic(ctx, day, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(parities, 1)
	suite.Equal("32.7", parities[0].Ratio.String())
}

func (suite *ParityServiceTestSuite) TestHistoric_EmptyDayIsEmptySliceNotError() {
	ctx := context.Background()
	day := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockParityRepo.On("FindParities", ctx, mock.Anything).Return([]domain.Parity{}, nil).Once()

	parities, err := suite.service.Historic(ctx, day, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(parities)
	suite.Empty(parities)
}

// --- ListPairs ---

func (suite *ParityServiceTestSuite) TestListPairs_Success() {
	ctx := context.Background()
	pairs := []domain.ParityPair{
		{BaseSymbol: "EUR", TargetSymbol: "USD"},
		{BaseSymbol: "USD", TargetSymbol: "TRY"},
	}
	suite.mockParityRepo.On("ListParityPairs", ctx).Return(pairs, nil).Once()

	got, err := suite.service.ListPairs(ctx)

	suite.Require().NoError(err)
	suite.Equal(pairs, got)
}

func (suite *ParityServiceTestSuite) TestListPairs_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockParityRepo.On("ListParityPairs", ctx).Return(nil, nil).Once()

	got, err := suite.service.ListPairs(ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestParityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParityServiceTestSuite))
}
