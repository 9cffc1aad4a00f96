package mapping

import (
	"github.com/traiders/practice-backend/internal/core/domain"
	"github.com/traiders/practice-backend/internal/models"
)

// ToModelEquipment converts a domain.Equipment to its DB model.
func ToModelEquipment(d domain.Equipment) models.Equipment {
	return models.Equipment{
		Symbol:      d.Symbol,
		Name:        d.Name,
		Category:    string(d.Category),
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainEquipment converts a DB model equipment to its domain form.
func ToDomainEquipment(m models.Equipment) domain.Equipment {
	return domain.Equipment{
		Symbol:      m.Symbol,
		Name:        m.Name,
		Category:    domain.EquipmentCategory(m.Category),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainEquipmentSlice converts a slice of model equipment.
func ToDomainEquipmentSlice(ms []models.Equipment) []domain.Equipment {
	ds := make([]domain.Equipment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEquipment(m)
	}
	return ds
}
