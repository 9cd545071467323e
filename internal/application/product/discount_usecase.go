package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

const maxDescriptionLength = 500

// DiscountUseCase aplica descuentos sobre el saldo de un lote y consulta su
// historial. El read-modify-write del saldo se serializa con bloqueo de fila
// (SELECT FOR UPDATE) dentro de la transacción.
type DiscountUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	discountRepo repository.ProductDiscountLogRepository
	auditor      *audit.Recorder
}

// NewDiscountUseCase construye el caso de uso de descuentos.
func NewDiscountUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	discountRepo repository.ProductDiscountLogRepository,
	auditor *audit.Recorder,
) *DiscountUseCase {
	return &DiscountUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		auditor:      auditor,
	}
}

// Create descuenta amount piezas del saldo del lote y registra la línea en el
// historial, todo en una transacción. Si el descuento excede el saldo
// disponible retorna ErrCantidadInsuficiente y no persiste nada.
func (uc *DiscountUseCase) Create(ctx context.Context, actor entity.ActorRef, productID int, in dto.CreateDiscountRequest) (*dto.CreateDiscountResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount == nil || *in.Amount <= 0 {
		return nil, fmt.Errorf("%w: el monto del descuento debe ser mayor que cero", domain.ErrInvalidInput)
	}
	description := strings.TrimSpace(in.Description)
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: la descripción excede %d caracteres", domain.ErrInvalidInput, maxDescriptionLength)
	}
	amount := *in.Amount

	var resp *dto.CreateDiscountResponse
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		p, err := r.Products.GetActiveForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		before := p.CantidadTotal
		if amount > before {
			return domain.ErrCantidadInsuficiente
		}
		after := before - amount

		if err := r.Products.UpdateCantidadTotal(productID, after); err != nil {
			return err
		}

		line := &entity.ProductDiscountLog{
			ProductID:          p.ID,
			ProductNombre:      p.Nombre,
			ProductLote:        p.Lote,
			Amount:             amount,
			Description:        description,
			QuantityBefore:     before,
			QuantityAfter:      after,
			CreatedByUserName:  actor.DisplayName(),
			CreatedByUserEmail: actor.Email,
			CreatedAt:          time.Now(),
		}
		if !actor.IsAnonymous() {
			id := actor.ID
			line.CreatedByUserID = &id
		}
		if err := r.Discounts.Create(line); err != nil {
			return err
		}

		resp = &dto.CreateDiscountResponse{
			Discount:      dto.NewDiscountLogResponse(line),
			CantidadTotal: after,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf(
		"DESCUENTO DE PRODUCTO - Usuario: %s | Producto: %s (ID: %d) | Lote: %s | Cantidad: %d -> %d | Descuento: %d",
		actor.DisplayName(), resp.Discount.ProductNombre, productID, resp.Discount.ProductLote,
		resp.Discount.QuantityBefore, resp.Discount.QuantityAfter, amount,
	)
	if description != "" {
		action += " | Descripción: " + description
	}
	uc.auditor.Record(action, actor)

	return resp, nil
}

// ListByProduct devuelve el historial de descuentos de un lote, más reciente
// primero. El historial es consultable aunque el lote esté dado de baja; solo
// un ID inexistente produce ErrNotFound.
func (uc *DiscountUseCase) ListByProduct(ctx context.Context, productID int) ([]*dto.DiscountLogResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.productRepo.ExistsByID(productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := uc.discountRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DiscountLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.NewDiscountLogResponse(l))
	}
	return out, nil
}
