package entity

import "time"

// StockCatalogue entrada del diccionario de stock a la que pertenecen los
// lotes. No es contenedor de cantidades: el saldo vive en cada Product.
type StockCatalogue struct {
	ID              int
	Nombre          string
	SKU             string
	Descripcion     string
	Status          bool
	CreatedByUserID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
