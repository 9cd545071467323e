package entity

import "time"

// AuditLog línea legible del registro de acciones. Solo inserciones; los
// fallos al escribirla nunca interrumpen la operación de negocio.
type AuditLog struct {
	ID        int
	Action    string
	UserID    *string // UUID; nil si anónimo
	UserName  string
	UserEmail string
	CreatedAt time.Time
}
