package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// ListMovementsRequest filtros del Kardex. Todos opcionales.
type ListMovementsRequest struct {
	PageRequest
	StockCatalogueID *int       `query:"stockCatalogueId"`
	Tipo             *string    `query:"tipo"` // entrada | salida
	FechaInicio      *time.Time `query:"fechaInicio"`
	FechaFin         *time.Time `query:"fechaFin"`
}

// MovementResponse línea del Kardex hacia afuera.
type MovementResponse struct {
	ID               int             `json:"id"`
	UserID           string          `json:"userId"`
	StockCatalogueID int             `json:"stockCatalogueId"`
	Tipo             string          `json:"tipo"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Motivo           string          `json:"motivo"`
	Referencia       string          `json:"referencia"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// NewMovementResponse mapea la entidad al DTO.
func NewMovementResponse(m *entity.StockMovement) *MovementResponse {
	return &MovementResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		StockCatalogueID: m.StockCatalogueID,
		Tipo:             m.Tipo,
		Cantidad:         m.Cantidad,
		Motivo:           m.Motivo,
		Referencia:       m.Referencia,
		CreatedAt:        m.CreatedAt,
	}
}
