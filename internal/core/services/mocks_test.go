package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
)

// --- Mock EquipmentRepository ---
type MockEquipmentRepository struct {
	mock.Mock
}

var _ portsrepo.EquipmentRepositoryFacade = (*MockEquipmentRepository)(nil)

func (m *MockEquipmentRepository) FindEquipmentBySymbol(ctx context.Context, symbol string) (*domain.Equipment, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) SaveEquipment(ctx context.Context, equipment domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

// --- Mock ParityRepository ---
type MockParityRepository struct {
	mock.Mock
}

var _ portsrepo.ParityRepositoryFacade = (*MockParityRepository)(nil)

func (m *MockParityRepository) FindParities(ctx context.Context, filter portsrepo.ParityFilter) ([]domain.Parity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Parity), args.Error(1)
}

func (m *MockParityRepository) ListParityPairs(ctx context.Context) ([]domain.ParityPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParityPair), args.Error(1)
}

func (m *MockParityRepository) SaveParity(ctx context.Context, parity domain.Parity) error {
	args := m.Called(ctx, parity)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

var _ portsrepo.InvestmentRepositoryFacade = (*MockInvestmentRepository)(nil)

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, ownerUserID, investmentID string) (*domain.ManualInvestment, error) {
	args := m.Called(ctx, ownerUserID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualInvestment), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByOwner(ctx context.Context, ownerUserID string) ([]domain.ManualInvestment, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualInvestment), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.ManualInvestment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, ownerUserID, investmentID string) error {
	args := m.Called(ctx, ownerUserID, investmentID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ParityReaderSvc (as used by ProfitService) ---
type MockParityQuery struct {
	mock.Mock
}

var _ portssvc.ParityReaderSvc = (*MockParityQuery)(nil)

func (m *MockParityQuery) Latest(ctx context.Context, baseSymbol, targetSymbol *string) ([]domain.Parity, error) {
	args := m.Called(ctx, baseSymbol, targetSymbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Parity), args.Error(1)
}

func (m *MockParityQuery) Historic(ctx context.Context, day time.Time, baseSymbol, targetSymbol *string) ([]domain.Parity, error) {
	args := m.Called(ctx, day, baseSymbol, targetSymbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Parity), args.Error(1)
}

func (m *MockParityQuery) ListPairs(ctx context.Context) ([]domain.ParityPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParityPair), args.Error(1)
}
