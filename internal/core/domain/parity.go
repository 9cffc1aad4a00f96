package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Parity is an observed exchange rate: 1 unit of base = Ratio units of
// target at RecordedAt. The store is append-only; multiple observations
// may exist for the same ordered pair, including with identical
// timestamps. RecordedSeq is the insertion sequence and is the
// deterministic tie-break when timestamps collide: the higher sequence
// wins.
//
// (base, target) and (target, base) are independent observations; a
// reciprocal rate is never derived from the other direction.
type Parity struct {
	RecordedSeq  int64           `json:"recordedSeq"`
	BaseSymbol   string          `json:"base"`
	TargetSymbol string          `json:"target"`
	Ratio        decimal.Decimal `json:"ratio"` // strictly positive
	RecordedAt   time.Time       `json:"date"`
}

// ParityPair identifies an ordered (base, target) pair that has at least
// one recorded observation.
type ParityPair struct {
	BaseSymbol   string `json:"base"`
	TargetSymbol string `json:"target"`
}
