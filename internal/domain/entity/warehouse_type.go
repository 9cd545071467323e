package entity

import "time"

// WarehouseType tipo de almacén (ej. refrigerado, inflamables).
type WarehouseType struct {
	ID        int
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
