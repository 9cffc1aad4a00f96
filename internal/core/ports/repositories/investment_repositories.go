package repositories

import (
	"context"

	"github.com/traiders/practice-backend/internal/core/domain"
)

// InvestmentReader defines read operations for the investment ledger.
// All reads are scoped by owner; a row under another owner behaves as
// missing.
type InvestmentReader interface {
	// FindInvestmentByID retrieves an investment owned by ownerUserID.
	FindInvestmentByID(ctx context.Context, ownerUserID, investmentID string) (*domain.ManualInvestment, error)

	// FindInvestmentsByOwner retrieves all investments of ownerUserID in
	// insertion order.
	FindInvestmentsByOwner(ctx context.Context, ownerUserID string) ([]domain.ManualInvestment, error)
}

// InvestmentWriter defines write operations for the investment ledger.
type InvestmentWriter interface {
	// SaveInvestment persists a new investment.
	SaveInvestment(ctx context.Context, investment domain.ManualInvestment) error

	// DeleteInvestment removes an investment owned by ownerUserID.
	// Returns apperrors.ErrNotFound when no such row belongs to the owner.
	DeleteInvestment(ctx context.Context, ownerUserID, investmentID string) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
