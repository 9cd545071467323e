package repository

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// StockCatalogueRepository puerto del diccionario de stock.
type StockCatalogueRepository interface {
	Create(catalogue *entity.StockCatalogue) error
	GetActiveByID(id int) (*entity.StockCatalogue, error)
	List(limit, offset int) ([]*entity.StockCatalogue, error)
	Count() (int, error)
	// Touch actualiza updated_at tras un alta de lote (los conteos se
	// calculan dinámicamente desde los productos).
	Touch(id int, at time.Time) error
}
