package repository

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para el listado de lotes.
type ProductFilter struct {
	StockCatalogueID *int
	ProductStatusID  *int
}

// ProductRepository puerto de persistencia de lotes. Los accesores GetActive*
// excluyen borrados lógicos en la propia consulta; ExistsByID es la única
// lectura que ve también los borrados (historial de descuentos).
type ProductRepository interface {
	// Create persiste el lote y asigna su ID.
	Create(product *entity.Product) error
	GetActiveByID(id int) (*entity.Product, error)
	// GetActiveForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la
	// transacción actual; serializa el read-modify-write del saldo.
	GetActiveForUpdate(id int) (*entity.Product, error)
	GetActiveByQrCodeID(qrCodeID int) (*entity.Product, error)
	ExistsByID(id int) (bool, error)
	Update(product *entity.Product) error
	// UpdateCantidadTotal actualiza solo el saldo (usado por descuentos).
	UpdateCantidadTotal(id, cantidadTotal int) error
	BindQrCode(productID, qrCodeID int) error
	SoftDelete(id int, at time.Time) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
}
