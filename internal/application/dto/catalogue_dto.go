package dto

import (
	"time"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

// CreateCatalogueRequest alta de una entrada del diccionario de stock.
type CreateCatalogueRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=200"`
	SKU         string `json:"sku" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

// CatalogueResponse entrada del diccionario hacia afuera.
type CatalogueResponse struct {
	ID          int       `json:"id"`
	Nombre      string    `json:"nombre"`
	SKU         string    `json:"sku"`
	Descripcion string    `json:"descripcion"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCatalogueResponse mapea la entidad al DTO.
func NewCatalogueResponse(c *entity.StockCatalogue) *CatalogueResponse {
	return &CatalogueResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		SKU:         c.SKU,
		Descripcion: c.Descripcion,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ReferenceResponse elemento de un catálogo de referencia (estados, bodegas,
// unidades).
type ReferenceResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}
