package services

import (
	"context"
	"time"

	"github.com/traiders/practice-backend/internal/core/domain"
)

// ParityReaderSvc defines the parity query engine operations.
type ParityReaderSvc interface {
	// Latest returns the most recent observation for each ordered pair
	// matching the optional base/target filters, ordered by
	// (base, target). With both filters set it returns exactly one
	// record or apperrors.ErrNotFound when the pair has no history.
	// A filter symbol unknown to the registry is apperrors.ErrNotFound.
	Latest(ctx context.Context, baseSymbol, targetSymbol *string) ([]domain.Parity, error)

	// Historic returns, for each ordered pair matching the filters, the
	// latest observation whose timestamp falls within the UTC calendar
	// day of `day`. A day with no records yields an empty slice, not an
	// error.
	Historic(ctx context.Context, day time.Time, baseSymbol, targetSymbol *string) ([]domain.Parity, error)

	// ListPairs returns the distinct ordered pairs with recorded history.
	ListPairs(ctx context.Context) ([]domain.ParityPair, error)
}

// ParitySvcFacade combines all parity-related service interfaces
type ParitySvcFacade interface {
	ParityReaderSvc
}
