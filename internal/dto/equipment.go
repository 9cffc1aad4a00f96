package dto

import (
	"github.com/traiders/practice-backend/internal/core/domain"
)

// EquipmentResponse defines the data returned for an equipment.
type EquipmentResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ToEquipmentResponse converts a domain.Equipment to EquipmentResponse DTO
func ToEquipmentResponse(eq *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		Symbol:   eq.Symbol,
		Name:     eq.Name,
		Category: string(eq.Category),
	}
}

// ToListEquipmentResponse converts a slice of domain.Equipment to DTOs
func ToListEquipmentResponse(equipment []domain.Equipment) []EquipmentResponse {
	res := make([]EquipmentResponse, len(equipment))
	for i := range equipment {
		res[i] = ToEquipmentResponse(&equipment[i])
	}
	return res
}
