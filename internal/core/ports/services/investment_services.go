package services

import (
	"context"

	"github.com/traiders/practice-backend/internal/core/domain"
	"github.com/traiders/practice-backend/internal/dto"
)

// InvestmentReaderSvc defines read operations on a user's ledger.
type InvestmentReaderSvc interface {
	// GetInvestmentByID retrieves a single investment owned by the user.
	GetInvestmentByID(ctx context.Context, ownerUserID, investmentID string) (*domain.ManualInvestment, error)

	// ListForOwner retrieves all investments of the user.
	ListForOwner(ctx context.Context, ownerUserID string) ([]domain.ManualInvestment, error)
}

// InvestmentWriterSvc defines write operations on a user's ledger.
type InvestmentWriterSvc interface {
	// Record validates the symbols and persists a new investment.
	Record(ctx context.Context, ownerUserID string, req dto.CreateInvestmentRequest) (*domain.ManualInvestment, error)

	// Remove deletes an investment owned by the user.
	Remove(ctx context.Context, ownerUserID, investmentID string) error
}

// InvestmentSvcFacade combines all ledger-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
