package movement

import (
	"context"

	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre el Kardex. Las líneas se escriben
// únicamente desde los flujos de producto; aquí no hay mutaciones.
type UseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewUseCase construye el caso de uso del Kardex.
func NewUseCase(movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo}
}

// List devuelve las líneas del Kardex paginadas, más reciente primero, con
// filtros opcionales por catálogo, tipo y rango de fechas.
func (uc *UseCase) List(ctx context.Context, in dto.ListMovementsRequest) (*dto.PagedData, error) {
	if in.Tipo != nil && !entity.TipoMovimientoValido(*in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaInicio != nil && in.FechaFin != nil && in.FechaFin.Before(*in.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}
	in.Normalize()

	filter := repository.MovementFilter{
		StockCatalogueID: in.StockCatalogueID,
		Tipo:             in.Tipo,
		FechaInicio:      in.FechaInicio,
		FechaFin:         in.FechaFin,
	}
	items, err := uc.movementRepo.List(filter, in.Limit(), in.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.movementRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	content := make([]*dto.MovementResponse, 0, len(items))
	for _, m := range items {
		content = append(content, dto.NewMovementResponse(m))
	}
	return &dto.PagedData{Content: content, Meta: dto.NewPageResponse(in.PageRequest, total)}, nil
}

// Get devuelve una línea del Kardex por ID.
func (uc *UseCase) Get(ctx context.Context, id int) (*dto.MovementResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewMovementResponse(m), nil
}
