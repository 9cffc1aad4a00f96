package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
	"github.com/traiders/practice-backend/internal/dto"
)

// InvestmentService manages a user's manually recorded investments.
type InvestmentService struct {
	investmentRepo portsrepo.InvestmentRepositoryFacade
	equipmentRepo  portsrepo.EquipmentReader
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepositoryFacade, equipmentRepo portsrepo.EquipmentReader) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		equipmentRepo:  equipmentRepo,
	}
}

// Record validates both symbols against the registry and persists a new
// investment. Amounts are accepted as given. A missing date defaults to
// the current UTC date.
func (s *InvestmentService) Record(ctx context.Context, ownerUserID string, req dto.CreateInvestmentRequest) (*domain.ManualInvestment, error) {
	for _, symbol := range []string{req.Base, req.Target} {
		if _, err := s.equipmentRepo.FindEquipmentBySymbol(ctx, symbol); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown symbol %s", apperrors.ErrNotFound, symbol)
			}
			return nil, fmt.Errorf("failed to validate symbol %s: %w", symbol, err)
		}
	}

	now := time.Now().UTC()
	investedOn := now.Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		investedOn = parsed
	}

	investment := domain.ManualInvestment{
		InvestmentID: uuid.NewString(),
		OwnerUserID:  ownerUserID,
		BaseSymbol:   req.Base,
		TargetSymbol: req.Target,
		BaseAmount:   req.BaseAmount,
		TargetAmount: req.TargetAmount,
		InvestedOn:   investedOn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.investmentRepo.SaveInvestment(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to record investment: %w", err)
	}
	return &investment, nil
}

// Remove deletes an investment owned by ownerUserID. An id that exists
// under a different owner is apperrors.ErrNotFound, the same as an id
// that does not exist at all.
func (s *InvestmentService) Remove(ctx context.Context, ownerUserID, investmentID string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, ownerUserID, investmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: no investment %s for this user", apperrors.ErrNotFound, investmentID)
		}
		return fmt.Errorf("failed to remove investment %s: %w", investmentID, err)
	}
	return nil
}

// GetInvestmentByID retrieves a single investment owned by ownerUserID.
func (s *InvestmentService) GetInvestmentByID(ctx context.Context, ownerUserID, investmentID string) (*domain.ManualInvestment, error) {
	investment, err := s.investmentRepo.FindInvestmentByID(ctx, ownerUserID, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no investment %s for this user", apperrors.ErrNotFound, investmentID)
		}
		return nil, fmt.Errorf("failed to get investment %s: %w", investmentID, err)
	}
	return investment, nil
}

// ListForOwner retrieves all investments of ownerUserID in storage order.
func (s *InvestmentService) ListForOwner(ctx context.Context, ownerUserID string) ([]domain.ManualInvestment, error) {
	investments, err := s.investmentRepo.FindInvestmentsByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	if investments == nil {
		return []domain.ManualInvestment{}, nil
	}
	return investments, nil
}
