package repositories

import (
	"context"
	"time"

	"github.com/traiders/practice-backend/internal/core/domain"
)

// ParityFilter narrows a parity query. Nil fields are unconstrained.
// From is inclusive, To is exclusive.
type ParityFilter struct {
	BaseSymbol   *string
	TargetSymbol *string
	From         *time.Time
	To           *time.Time
}

// ParityReader defines read operations for the parity store.
type ParityReader interface {
	// FindParities retrieves all observations matching the filter, ordered
	// by (base_symbol ASC, target_symbol ASC, recorded_at DESC,
	// recorded_seq DESC). The query engine relies on this ordering to pick
	// the winning record per pair.
	FindParities(ctx context.Context, filter ParityFilter) ([]domain.Parity, error)

	// ListParityPairs retrieves the distinct ordered (base, target) pairs
	// that have at least one observation, ordered by (base, target).
	ListParityPairs(ctx context.Context) ([]domain.ParityPair, error)
}

// ParityWriter defines write operations for the parity store.
type ParityWriter interface {
	// SaveParity appends a new observation. The store is append-only;
	// there is no update or delete.
	SaveParity(ctx context.Context, parity domain.Parity) error
}

// ParityRepositoryFacade combines all parity-related repository interfaces
type ParityRepositoryFacade interface {
	ParityReader
	ParityWriter
}
