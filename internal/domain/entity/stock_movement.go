package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del Kardex.
const (
	TipoMovimientoEntrada = "entrada"
	TipoMovimientoSalida  = "salida"
)

// TipoMovimientoValido valida el discriminador de tipo.
func TipoMovimientoValido(tipo string) bool {
	return tipo == TipoMovimientoEntrada || tipo == TipoMovimientoSalida
}

// StockMovement es una línea del Kardex: el libro cronológico de entradas y
// salidas a nivel de catálogo. Inmutable una vez escrita; deleted_at existe
// solo para depuración administrativa y no se usa en el flujo normal.
type StockMovement struct {
	ID               int
	UserID           string // UUID del actor
	StockCatalogueID int
	Tipo             string // entrada | salida
	Cantidad         decimal.Decimal
	Motivo           string
	Referencia       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}
