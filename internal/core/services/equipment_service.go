package services

import (
	"context"
	"fmt"

	"github.com/traiders/practice-backend/internal/core/domain"
	portsrepo "github.com/traiders/practice-backend/internal/core/ports/repositories"
)

// EquipmentService exposes the read-mostly equipment registry.
type EquipmentService struct {
	equipmentRepo portsrepo.EquipmentReader
}

// NewEquipmentService creates a new EquipmentService.
func NewEquipmentService(equipmentRepo portsrepo.EquipmentReader) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo}
}

func (s *EquipmentService) GetEquipmentBySymbol(ctx context.Context, symbol string) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipmentBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment %s: %w", symbol, err)
	}
	return equipment, nil
}

func (s *EquipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	equipment, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	if equipment == nil {
		return []domain.Equipment{}, nil
	}
	return equipment, nil
}
