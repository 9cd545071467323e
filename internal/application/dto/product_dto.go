package dto

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// CreateProductRequest alta de lote. Las referencias se validan contra
// registros activos antes de abrir la transacción.
type CreateProductRequest struct {
	StockCatalogueID    int        `json:"stockCatalogueId" validate:"required,gt=0"`
	ProductStatusID     int        `json:"productStatusId" validate:"required,gt=0"`
	WarehouseTypeID     *int       `json:"warehouseTypeId" validate:"omitempty,gt=0"`
	UnitOfMeasurementID *int       `json:"unitOfMeasurementId" validate:"omitempty,gt=0"`
	Nombre              string     `json:"nombre" validate:"required,max=200"`
	Fecha               time.Time  `json:"fecha" validate:"required"`
	FechaMuestreo       *time.Time `json:"fechaMuestreo"`
	Codigo              string     `json:"codigo" validate:"max=100"` // si viene vacío se deriva
	CodigoProducto      string     `json:"codigoProducto" validate:"max=100"`
	Lote                string     `json:"lote" validate:"required,max=100"`
	LoteProveedor       string     `json:"loteProveedor" validate:"max=100"`
	Fabricante          string     `json:"fabricante" validate:"max=200"`
	Distribuidor        string     `json:"distribuidor" validate:"max=200"`
	NumeroAnalisis      string     `json:"numeroAnalisis" validate:"max=100"`
	Caducidad           *time.Time `json:"caducidad"`
	Reanalisis          *time.Time `json:"reanalisis"`
	NumeroContenedores  int        `json:"numeroContenedores" validate:"required,gt=0"`
	CantidadTotal       int        `json:"cantidadTotal" validate:"required,gt=0"`
	Descuentos          *int       `json:"descuentos" validate:"omitempty,gte=0"` // informativo; 0 si no viene
}

// UpdateProductRequest edición parcial de un lote: solo los campos presentes
// se aplican. El saldo (cantidadTotal) no se edita por esta vía.
type UpdateProductRequest struct {
	ID                  int        `json:"id" validate:"required,gt=0"`
	ProductStatusID     *int       `json:"productStatusId" validate:"omitempty,gt=0"`
	WarehouseTypeID     *int       `json:"warehouseTypeId" validate:"omitempty,gt=0"`
	UnitOfMeasurementID *int       `json:"unitOfMeasurementId" validate:"omitempty,gt=0"`
	Nombre              *string    `json:"nombre" validate:"omitempty,max=200"`
	FechaMuestreo       *time.Time `json:"fechaMuestreo"`
	CodigoProducto      *string    `json:"codigoProducto" validate:"omitempty,max=100"`
	LoteProveedor       *string    `json:"loteProveedor" validate:"omitempty,max=100"`
	Fabricante          *string    `json:"fabricante" validate:"omitempty,max=200"`
	Distribuidor        *string    `json:"distribuidor" validate:"omitempty,max=200"`
	NumeroAnalisis      *string    `json:"numeroAnalisis" validate:"omitempty,max=100"`
	Caducidad           *time.Time `json:"caducidad"`
	Reanalisis          *time.Time `json:"reanalisis"`
}

// ProductResponse representación de un lote hacia afuera.
type ProductResponse struct {
	ID                  int        `json:"id"`
	StockCatalogueID    int        `json:"stockCatalogueId"`
	ProductStatusID     int        `json:"productStatusId"`
	WarehouseTypeID     *int       `json:"warehouseTypeId,omitempty"`
	UnitOfMeasurementID *int       `json:"unitOfMeasurementId,omitempty"`
	QrCodeID            *int       `json:"qrCodeId,omitempty"`
	QrHash              string     `json:"qrHash,omitempty"`
	Nombre              string     `json:"nombre"`
	Fecha               time.Time  `json:"fecha"`
	FechaMuestreo       *time.Time `json:"fechaMuestreo,omitempty"`
	Codigo              string     `json:"codigo"`
	CodigoProducto      string     `json:"codigoProducto"`
	Lote                string     `json:"lote"`
	LoteProveedor       string     `json:"loteProveedor"`
	Fabricante          string     `json:"fabricante"`
	Distribuidor        string     `json:"distribuidor"`
	NumeroAnalisis      string     `json:"numeroAnalisis"`
	Caducidad           *time.Time `json:"caducidad,omitempty"`
	Reanalisis          *time.Time `json:"reanalisis,omitempty"`
	NumeroContenedores  int        `json:"numeroContenedores"`
	CantidadTotal       int        `json:"cantidadTotal"`
	Descuentos          int        `json:"descuentos"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// NewProductResponse mapea la entidad al DTO. qrHash puede venir vacío si el
// llamador no lo resolvió.
func NewProductResponse(p *entity.Product, qrHash string) *ProductResponse {
	return &ProductResponse{
		ID:                  p.ID,
		StockCatalogueID:    p.StockCatalogueID,
		ProductStatusID:     p.ProductStatusID,
		WarehouseTypeID:     p.WarehouseTypeID,
		UnitOfMeasurementID: p.UnitOfMeasurementID,
		QrCodeID:            p.QrCodeID,
		QrHash:              qrHash,
		Nombre:              p.Nombre,
		Fecha:               p.Fecha,
		FechaMuestreo:       p.FechaMuestreo,
		Codigo:              p.Codigo,
		CodigoProducto:      p.CodigoProducto,
		Lote:                p.Lote,
		LoteProveedor:       p.LoteProveedor,
		Fabricante:          p.Fabricante,
		Distribuidor:        p.Distribuidor,
		NumeroAnalisis:      p.NumeroAnalisis,
		Caducidad:           p.Caducidad,
		Reanalisis:          p.Reanalisis,
		NumeroContenedores:  p.NumeroContenedores,
		CantidadTotal:       p.CantidadTotal,
		Descuentos:          p.Descuentos,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// CreateProductResponse resultado del alta atómica de un lote.
type CreateProductResponse struct {
	Product    *ProductResponse `json:"product"`
	QrHash     string           `json:"qrHash"`
	MovementID int              `json:"movementId"`
}

// ListProductsRequest filtros del listado de lotes.
type ListProductsRequest struct {
	PageRequest
	StockCatalogueID *int `query:"stockCatalogueId"`
	ProductStatusID  *int `query:"productStatusId"`
}
