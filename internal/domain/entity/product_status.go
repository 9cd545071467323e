package entity

import "time"

// ProductStatus estado de un lote (ej. cuarentena, aprobado, rechazado).
type ProductStatus struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
