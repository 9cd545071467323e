package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/application/product"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/infrastructure/pdf"
	"github.com/labmetricas/labstock-api/internal/infrastructure/qrimg"
)

// ProductHandler maneja las peticiones HTTP de lotes, descuentos y QR
// (protegido).
type ProductHandler struct {
	uc         *product.UseCase
	discountUC *product.DiscountUseCase
	qrRenderer *qrimg.Renderer
	labelGen   *pdf.LabelGenerator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *product.UseCase, discountUC *product.DiscountUseCase, qrRenderer *qrimg.Renderer, labelGen *pdf.LabelGenerator) *ProductHandler {
	return &ProductHandler{uc: uc, discountUC: discountUC, qrRenderer: qrRenderer, labelGen: labelGen}
}

// Create godoc
// @Summary      Alta atómica de lote (producto + QR + entrada de Kardex)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "datos del lote"
// @Success      201  {object}  dto.ResponseObject
// @Failure      400  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "Producto creado exitosamente", out)
}

// Update godoc
// @Summary      Edición parcial de lote
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductRequest  true  "campos a modificar (id obligatorio)"
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/products [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Producto actualizado exitosamente", out)
}

// List godoc
// @Summary      Listado paginado de lotes activos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page              query  int  false  "página (desde 0)"
// @Param        size              query  int  false  "tamaño de página (default 10, máx 100)"
// @Param        stockCatalogueId  query  int  false  "filtrar por catálogo"
// @Param        productStatusId   query  int  false  "filtrar por estado"
// @Success      200  {object}  dto.ResponseObject
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Productos obtenidos exitosamente", out)
}

// GetByID godoc
// @Summary      Detalle de un lote activo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del lote"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Producto obtenido exitosamente", out)
}

// Delete godoc
// @Summary      Baja lógica de un lote
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del lote"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Producto eliminado exitosamente", nil)
}

// CreateDiscount godoc
// @Summary      Aplicar descuento al saldo de un lote
// @Description  Descuenta piezas del saldo y registra la línea en el historial,
//
//	de forma atómica y con bloqueo de fila.
//
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del lote"
// @Param        body  body  dto.CreateDiscountRequest  true  "amount, description"
// @Success      201  {object}  dto.ResponseObject
// @Failure      400  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/{id}/discounts [post]
func (h *ProductHandler) CreateDiscount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	var in dto.CreateDiscountRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.discountUC.Create(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "Descuento aplicado exitosamente", out)
}

// ListDiscounts godoc
// @Summary      Historial de descuentos de un lote
// @Description  Consultable aunque el lote esté dado de baja.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del lote"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/{id}/discounts [get]
func (h *ProductHandler) ListDiscounts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.discountUC.ListByProduct(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Historial de descuentos obtenido exitosamente", out)
}

// GetByQrHash godoc
// @Summary      Resolver lote por hash QR
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        hash  path  string  true  "hash sha256 (64 hex)"
// @Success      200  {object}  dto.ResponseObject
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/qr/{hash} [get]
func (h *ProductHandler) GetByQrHash(c *fiber.Ctx) error {
	hash := c.Params("hash")
	out, err := h.uc.GetByQrHash(c.Context(), hash)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Producto obtenido exitosamente", out)
}

// GetQrImage godoc
// @Summary      Imagen PNG del QR de un lote
// @Tags         products
// @Security     Bearer
// @Produce      png
// @Param        hash  path  string  true  "hash sha256 (64 hex)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/qr/{hash}/image [get]
func (h *ProductHandler) GetQrImage(c *fiber.Ctx) error {
	hash := c.Params("hash")
	// Verificar que el hash corresponda a un lote activo antes de renderizar.
	if _, err := h.uc.GetByQrHash(c.Context(), hash); err != nil {
		return respondError(c, err)
	}
	img, err := h.qrRenderer.Render(hash)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	// El hash incluye el instante de creación: la imagen nunca cambia.
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Send(img)
}

// GetLabel godoc
// @Summary      Etiqueta PDF imprimible de un lote (con QR)
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del lote"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ResponseObject
// @Router       /api/products/{id}/label [get]
func (h *ProductHandler) GetLabel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	p, hash, err := h.uc.GetForLabel(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.labelGen.GenerateLabel(p, hash)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}
