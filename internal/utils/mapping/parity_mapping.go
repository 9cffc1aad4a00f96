package mapping

import (
	"github.com/traiders/practice-backend/internal/core/domain"
	"github.com/traiders/practice-backend/internal/models"
)

// ToModelParity converts a domain.Parity to its DB model.
func ToModelParity(d domain.Parity) models.Parity {
	return models.Parity{
		RecordedSeq:  d.RecordedSeq,
		BaseSymbol:   d.BaseSymbol,
		TargetSymbol: d.TargetSymbol,
		Ratio:        d.Ratio,
		RecordedAt:   d.RecordedAt,
	}
}

// ToDomainParity converts a DB model parity to its domain form.
func ToDomainParity(m models.Parity) domain.Parity {
	return domain.Parity{
		RecordedSeq:  m.RecordedSeq,
		BaseSymbol:   m.BaseSymbol,
		TargetSymbol: m.TargetSymbol,
		Ratio:        m.Ratio,
		RecordedAt:   m.RecordedAt,
	}
}

// ToDomainParitySlice converts a slice of model parities.
func ToDomainParitySlice(ms []models.Parity) []domain.Parity {
	ds := make([]domain.Parity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParity(m)
	}
	return ds
}
