package repository

import "github.com/labmetricas/labstock-api/internal/domain/entity"

// AuditLogRepository puerto del registro de acciones: solo inserciones y
// lectura paginada.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
	Count() (int, error)
}
