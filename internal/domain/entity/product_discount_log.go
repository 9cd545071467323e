package entity

import "time"

// ProductDiscountLog es el registro inmutable de un descuento aplicado a un
// lote. Desnormaliza nombre/lote del producto y la identidad del actor para
// que la auditoría sobreviva a ediciones posteriores del producto o usuario.
// Invariante: QuantityBefore - Amount == QuantityAfter.
type ProductDiscountLog struct {
	ID                 int
	ProductID          int
	ProductNombre      string
	ProductLote        string
	Amount             int
	Description        string
	QuantityBefore     int
	QuantityAfter      int
	CreatedByUserID    *string // UUID; nil si anónimo
	CreatedByUserName  string
	CreatedByUserEmail string
	CreatedAt          time.Time
}
