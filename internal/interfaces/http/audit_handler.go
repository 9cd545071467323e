package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
)

// AuditHandler expone el registro de acciones (solo ADMIN y SUPERVISOR).
type AuditHandler struct {
	query *audit.Query
}

// NewAuditHandler construye el handler.
func NewAuditHandler(query *audit.Query) *AuditHandler {
	return &AuditHandler{query: query}
}

// List godoc
// @Summary      Registro de acciones paginado
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "página (desde 0)"
// @Param        size  query  int  false  "tamaño de página"
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.query.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Auditoría obtenida exitosamente", out)
}
