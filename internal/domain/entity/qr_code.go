package entity

import "time"

// QrCode identidad direccionada por contenido de un lote. El hash se genera
// una sola vez al crear el producto y nunca se regenera.
type QrCode struct {
	ID          int
	QrContenido string // sha256 hex, 64 caracteres
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
