package services

import (
	"context"

	"github.com/traiders/practice-backend/internal/core/domain"
)

// EquipmentReaderSvc defines read operations for the equipment registry
type EquipmentReaderSvc interface {
	// GetEquipmentBySymbol retrieves a specific equipment by symbol.
	GetEquipmentBySymbol(ctx context.Context, symbol string) (*domain.Equipment, error)

	// ListEquipment retrieves all registered equipment.
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

// EquipmentSvcFacade combines all equipment-related service interfaces.
// The registry is read-mostly reference data; writes happen through the
// rate-feed job's repository access, not through a service operation.
type EquipmentSvcFacade interface {
	EquipmentReaderSvc
}
