package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/application/movement"
	"github.com/labmetricas/labstock-api/internal/domain"
)

// MovementHandler maneja las consultas del Kardex (protegido).
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Kardex paginado
// @Description  Líneas de entradas y salidas, más reciente primero, con
//
//	filtros opcionales por catálogo, tipo y rango de fechas.
//
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        page              query  int     false  "página (desde 0)"
// @Param        size              query  int     false  "tamaño de página"
// @Param        stockCatalogueId  query  int     false  "filtrar por catálogo"
// @Param        tipo              query  string  false  "entrada | salida"
// @Param        fechaInicio       query  string  false  "RFC3339"
// @Param        fechaFin          query  string  false  "RFC3339"
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Movimientos obtenidos exitosamente", out)
}

// GetByID godoc
// @Summary      Detalle de una línea del Kardex
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Movimiento obtenido exitosamente", out)
}
