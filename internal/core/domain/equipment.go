package domain

// EquipmentCategory classifies a tradable symbol.
type EquipmentCategory string

const (
	// CategoryCurrency is the only category the rate feed currently supplies.
	CategoryCurrency EquipmentCategory = "currency"
)

// Equipment is a tradable symbol (a currency) with a display name.
// Identity is the symbol; rows are immutable after creation except by
// administrative reseeding.
type Equipment struct {
	Symbol   string            `json:"symbol"` // Primary key (e.g., "USD")
	Name     string            `json:"name"`   // e.g., "U.S. Dollar"
	Category EquipmentCategory `json:"category"`
	AuditFields
}
