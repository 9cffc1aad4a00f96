package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Parity mirrors the parities table. RecordedSeq is a bigserial and
// doubles as the tie-break when two observations share a timestamp.
type Parity struct {
	RecordedSeq  int64           `db:"recorded_seq"`
	BaseSymbol   string          `db:"base_symbol"`
	TargetSymbol string          `db:"target_symbol"`
	Ratio        decimal.Decimal `db:"ratio"`
	RecordedAt   time.Time       `db:"recorded_at"`
}
