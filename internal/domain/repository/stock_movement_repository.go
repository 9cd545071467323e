package repository

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// MovementFilter filtros opcionales del Kardex; cualquier combinación es
// válida y la ausencia de filtros devuelve todo lo no borrado.
type MovementFilter struct {
	StockCatalogueID *int
	Tipo             *string
	FechaInicio      *time.Time
	FechaFin         *time.Time
}

// StockMovementRepository puerto del Kardex: solo inserciones y lecturas.
type StockMovementRepository interface {
	// Create persiste la línea y asigna su ID.
	Create(movement *entity.StockMovement) error
	GetByID(id int) (*entity.StockMovement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	Count(filter MovementFilter) (int, error)
}
