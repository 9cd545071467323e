package dto

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// CreateDiscountRequest descuento sobre el saldo de un lote. Amount es
// puntero para distinguir "ausente" de cero.
type CreateDiscountRequest struct {
	Amount      *int   `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=500"`
}

// DiscountLogResponse registro inmutable de un descuento.
type DiscountLogResponse struct {
	ID                 int       `json:"id"`
	ProductID          int       `json:"productId"`
	ProductNombre      string    `json:"productNombre"`
	ProductLote        string    `json:"productLote"`
	Amount             int       `json:"amount"`
	Description        string    `json:"description"`
	QuantityBefore     int       `json:"quantityBefore"`
	QuantityAfter      int       `json:"quantityAfter"`
	CreatedByUserID    *string   `json:"createdByUserId,omitempty"`
	CreatedByUserName  string    `json:"createdByUserName"`
	CreatedByUserEmail string    `json:"createdByUserEmail"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewDiscountLogResponse mapea la entidad al DTO.
func NewDiscountLogResponse(l *entity.ProductDiscountLog) *DiscountLogResponse {
	return &DiscountLogResponse{
		ID:                 l.ID,
		ProductID:          l.ProductID,
		ProductNombre:      l.ProductNombre,
		ProductLote:        l.ProductLote,
		Amount:             l.Amount,
		Description:        l.Description,
		QuantityBefore:     l.QuantityBefore,
		QuantityAfter:      l.QuantityAfter,
		CreatedByUserID:    l.CreatedByUserID,
		CreatedByUserName:  l.CreatedByUserName,
		CreatedByUserEmail: l.CreatedByUserEmail,
		CreatedAt:          l.CreatedAt,
	}
}

// CreateDiscountResponse resultado de aplicar un descuento: el registro
// creado y el saldo resultante del lote.
type CreateDiscountResponse struct {
	Discount      *DiscountLogResponse `json:"discount"`
	CantidadTotal int                  `json:"cantidadTotal"`
}
