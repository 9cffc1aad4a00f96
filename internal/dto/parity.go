package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/traiders/practice-backend/internal/core/domain"
)

// ParityFilterParams defines the optional base/target query filters on
// parity endpoints.
type ParityFilterParams struct {
	Base   string `form:"base" binding:"omitempty,symbol"`
	Target string `form:"target" binding:"omitempty,symbol"`
}

// BasePtr returns the base filter as a nillable pointer.
func (p ParityFilterParams) BasePtr() *string {
	if p.Base == "" {
		return nil
	}
	return &p.Base
}

// TargetPtr returns the target filter as a nillable pointer.
func (p ParityFilterParams) TargetPtr() *string {
	if p.Target == "" {
		return nil
	}
	return &p.Target
}

// ParityResponse defines the data returned for a parity observation.
type ParityResponse struct {
	Base   string          `json:"base"`
	Target string          `json:"target"`
	Ratio  decimal.Decimal `json:"ratio"`
	Date   time.Time       `json:"date"`
}

// ParityPairResponse defines a distinct (base, target) pair.
type ParityPairResponse struct {
	Base   string `json:"base"`
	Target string `json:"target"`
}

// ToParityResponse converts a domain.Parity to ParityResponse DTO
func ToParityResponse(p *domain.Parity) ParityResponse {
	return ParityResponse{
		Base:   p.BaseSymbol,
		Target: p.TargetSymbol,
		Ratio:  p.Ratio,
		Date:   p.RecordedAt,
	}
}

// ToListParityResponse converts a slice of domain.Parity to DTOs
func ToListParityResponse(parities []domain.Parity) []ParityResponse {
	res := make([]ParityResponse, len(parities))
	for i := range parities {
		res[i] = ToParityResponse(&parities[i])
	}
	return res
}

// ToListParityPairResponse converts a slice of domain.ParityPair to DTOs
func ToListParityPairResponse(pairs []domain.ParityPair) []ParityPairResponse {
	res := make([]ParityPairResponse, len(pairs))
	for i, pair := range pairs {
		res[i] = ParityPairResponse{Base: pair.BaseSymbol, Target: pair.TargetSymbol}
	}
	return res
}
