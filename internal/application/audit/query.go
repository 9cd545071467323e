package audit

import (
	"context"
	"time"

	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// LogResponse línea del registro de acciones hacia afuera.
type LogResponse struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	UserID    *string   `json:"userId,omitempty"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Query lectura paginada del registro de acciones.
type Query struct {
	repo repository.AuditLogRepository
}

// NewQuery construye la consulta de auditoría.
func NewQuery(repo repository.AuditLogRepository) *Query {
	return &Query{repo: repo}
}

// List devuelve las líneas de auditoría, más reciente primero.
func (q *Query) List(ctx context.Context, page dto.PageRequest) (*dto.PagedData, error) {
	page.Normalize()
	items, err := q.repo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := q.repo.Count()
	if err != nil {
		return nil, err
	}
	content := make([]*LogResponse, 0, len(items))
	for _, l := range items {
		content = append(content, &LogResponse{
			ID:        l.ID,
			Action:    l.Action,
			UserID:    l.UserID,
			UserName:  l.UserName,
			UserEmail: l.UserEmail,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.PagedData{Content: content, Meta: dto.NewPageResponse(page, total)}, nil
}
