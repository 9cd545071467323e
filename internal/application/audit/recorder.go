package audit

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
	"github.com/labmetricas/labstock-api/pkg/logger"
)

// Recorder escribe líneas legibles en el registro de acciones. Es best-effort:
// un fallo al persistir se loguea y se descarta, nunca interrumpe la operación
// de negocio que lo originó.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el grabador de auditoría.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste la acción con el snapshot del actor. Para actores anónimos
// el userID queda nulo y el nombre se registra como ANONYMOUS.
func (r *Recorder) Record(action string, actor entity.ActorRef) {
	line := &entity.AuditLog{
		Action:    action,
		UserName:  actor.DisplayName(),
		UserEmail: actor.Email,
		CreatedAt: time.Now(),
	}
	if !actor.IsAnonymous() {
		id := actor.ID
		line.UserID = &id
	}
	if err := r.repo.Create(line); err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la auditoría")
	}
}
