package mapping

import (
	"github.com/traiders/practice-backend/internal/core/domain"
	"github.com/traiders/practice-backend/internal/models"
)

// ToModelInvestment converts a domain.ManualInvestment to its DB model.
func ToModelInvestment(d domain.ManualInvestment) models.ManualInvestment {
	return models.ManualInvestment{
		InvestmentID: d.InvestmentID,
		OwnerUserID:  d.OwnerUserID,
		BaseSymbol:   d.BaseSymbol,
		TargetSymbol: d.TargetSymbol,
		BaseAmount:   d.BaseAmount,
		TargetAmount: d.TargetAmount,
		InvestedOn:   d.InvestedOn,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainInvestment converts a DB model investment to its domain form.
func ToDomainInvestment(m models.ManualInvestment) domain.ManualInvestment {
	return domain.ManualInvestment{
		InvestmentID: m.InvestmentID,
		OwnerUserID:  m.OwnerUserID,
		BaseSymbol:   m.BaseSymbol,
		TargetSymbol: m.TargetSymbol,
		BaseAmount:   m.BaseAmount,
		TargetAmount: m.TargetAmount,
		InvestedOn:   m.InvestedOn,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts a slice of model investments.
func ToDomainInvestmentSlice(ms []models.ManualInvestment) []domain.ManualInvestment {
	ds := make([]domain.ManualInvestment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
