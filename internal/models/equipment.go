package models

// Equipment mirrors the equipment table.
type Equipment struct {
	Symbol   string `db:"symbol"`
	Name     string `db:"name"`
	Category string `db:"category"`
	AuditFields
}
