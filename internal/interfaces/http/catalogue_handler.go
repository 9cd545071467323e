package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/catalogue"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
)

// CatalogueHandler maneja el diccionario de stock y los catálogos de
// referencia (protegido).
type CatalogueHandler struct {
	uc *catalogue.UseCase
}

// NewCatalogueHandler construye el handler.
func NewCatalogueHandler(uc *catalogue.UseCase) *CatalogueHandler {
	return &CatalogueHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de entrada del diccionario de stock
// @Tags         catalogues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogueRequest  true  "nombre, sku, descripcion"
// @Success      201  {object}  dto.ResponseObject
// @Failure      409  {object}  dto.ResponseObject
// @Router       /api/catalogues [post]
func (h *CatalogueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogueRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateCatalogue(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "Catálogo creado exitosamente", out)
}

// List godoc
// @Summary      Listado paginado del diccionario de stock
// @Tags         catalogues
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/catalogues [get]
func (h *CatalogueHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.ListCatalogues(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Catálogos obtenidos exitosamente", out)
}

// GetByID godoc
// @Summary      Detalle de una entrada del diccionario
// @Tags         catalogues
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del catálogo"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/catalogues/{id} [get]
func (h *CatalogueHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.GetCatalogue(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Catálogo obtenido exitosamente", out)
}

// ListStatuses godoc
// @Summary      Catálogo de estados de producto
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/references/statuses [get]
func (h *CatalogueHandler) ListStatuses(c *fiber.Ctx) error {
	out, err := h.uc.ListStatuses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Estados obtenidos exitosamente", out)
}

// ListWarehouseTypes godoc
// @Summary      Catálogo de tipos de bodega
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/references/warehouse-types [get]
func (h *CatalogueHandler) ListWarehouseTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouseTypes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Tipos de bodega obtenidos exitosamente", out)
}

// ListUnits godoc
// @Summary      Catálogo de unidades de medida
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/references/units [get]
func (h *CatalogueHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Unidades obtenidas exitosamente", out)
}
