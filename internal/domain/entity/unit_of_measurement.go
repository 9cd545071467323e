package entity

import "time"

// UnitOfMeasurement unidad de medida de un lote (ej. kg, L, piezas).
type UnitOfMeasurement struct {
	ID        int
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
