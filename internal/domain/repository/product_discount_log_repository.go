package repository

import "github.com/labmetricas/labstock-api/internal/domain/entity"

// ProductDiscountLogRepository puerto del log de descuentos: append-only.
type ProductDiscountLogRepository interface {
	// Create persiste el registro y asigna su ID.
	Create(log *entity.ProductDiscountLog) error
	// ListByProduct devuelve el historial del lote, más reciente primero.
	ListByProduct(productID int) ([]*entity.ProductDiscountLog, error)
}
