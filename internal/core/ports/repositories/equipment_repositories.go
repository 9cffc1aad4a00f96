package repositories

import (
	"context"

	"github.com/traiders/practice-backend/internal/core/domain"
)

// EquipmentReader defines read operations for the equipment registry
type EquipmentReader interface {
	// FindEquipmentBySymbol retrieves a specific equipment by its symbol.
	FindEquipmentBySymbol(ctx context.Context, symbol string) (*domain.Equipment, error)

	// ListEquipment retrieves all registered equipment ordered by symbol.
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

// EquipmentWriter defines write operations for the equipment registry
type EquipmentWriter interface {
	// SaveEquipment persists an equipment row (upsert; used by reseeding).
	SaveEquipment(ctx context.Context, equipment domain.Equipment) error
}

// EquipmentRepositoryFacade combines all equipment-related repository interfaces
type EquipmentRepositoryFacade interface {
	EquipmentReader
	EquipmentWriter
}
