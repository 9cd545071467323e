package catalogue

import (
	"context"
	"fmt"
	"time"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// UseCase administra el diccionario de stock y expone los catálogos de
// referencia (estados, tipos de bodega, unidades de medida).
type UseCase struct {
	catalogueRepo repository.StockCatalogueRepository
	statusRepo    repository.ProductStatusRepository
	warehouseRepo repository.WarehouseTypeRepository
	unitRepo      repository.UnitOfMeasurementRepository
	auditor       *audit.Recorder
}

// NewUseCase construye el caso de uso de catálogos.
func NewUseCase(
	catalogueRepo repository.StockCatalogueRepository,
	statusRepo repository.ProductStatusRepository,
	warehouseRepo repository.WarehouseTypeRepository,
	unitRepo repository.UnitOfMeasurementRepository,
	auditor *audit.Recorder,
) *UseCase {
	return &UseCase{
		catalogueRepo: catalogueRepo,
		statusRepo:    statusRepo,
		warehouseRepo: warehouseRepo,
		unitRepo:      unitRepo,
		auditor:       auditor,
	}
}

// CreateCatalogue da de alta una entrada del diccionario de stock.
func (uc *UseCase) CreateCatalogue(ctx context.Context, actor entity.ActorRef, in dto.CreateCatalogueRequest) (*dto.CatalogueResponse, error) {
	if in.Nombre == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	c := &entity.StockCatalogue{
		Nombre:      in.Nombre,
		SKU:         in.SKU,
		Descripcion: in.Descripcion,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !actor.IsAnonymous() {
		id := actor.ID
		c.CreatedByUserID = &id
	}
	if err := uc.catalogueRepo.Create(c); err != nil {
		return nil, err
	}

	uc.auditor.Record(fmt.Sprintf(
		"CREACIÓN DE CATÁLOGO - Usuario: %s | Catálogo: %s (ID: %d) | SKU: %s",
		actor.DisplayName(), c.Nombre, c.ID, c.SKU,
	), actor)

	return dto.NewCatalogueResponse(c), nil
}

// GetCatalogue devuelve una entrada activa del diccionario por ID.
func (uc *UseCase) GetCatalogue(ctx context.Context, id int) (*dto.CatalogueResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.catalogueRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCatalogueResponse(c), nil
}

// ListCatalogues lista el diccionario paginado.
func (uc *UseCase) ListCatalogues(ctx context.Context, page dto.PageRequest) (*dto.PagedData, error) {
	page.Normalize()
	items, err := uc.catalogueRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.catalogueRepo.Count()
	if err != nil {
		return nil, err
	}
	content := make([]*dto.CatalogueResponse, 0, len(items))
	for _, c := range items {
		content = append(content, dto.NewCatalogueResponse(c))
	}
	return &dto.PagedData{Content: content, Meta: dto.NewPageResponse(page, total)}, nil
}

// ListStatuses catálogo de estados de producto.
func (uc *UseCase) ListStatuses(ctx context.Context) ([]*dto.ReferenceResponse, error) {
	items, err := uc.statusRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReferenceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, &dto.ReferenceResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return out, nil
}

// ListWarehouseTypes catálogo de tipos de bodega.
func (uc *UseCase) ListWarehouseTypes(ctx context.Context) ([]*dto.ReferenceResponse, error) {
	items, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReferenceResponse, 0, len(items))
	for _, w := range items {
		out = append(out, &dto.ReferenceResponse{ID: w.ID, Name: w.Name, Code: w.Code})
	}
	return out, nil
}

// ListUnits catálogo de unidades de medida.
func (uc *UseCase) ListUnits(ctx context.Context) ([]*dto.ReferenceResponse, error) {
	items, err := uc.unitRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReferenceResponse, 0, len(items))
	for _, u := range items {
		out = append(out, &dto.ReferenceResponse{ID: u.ID, Name: u.Name, Code: u.Code})
	}
	return out, nil
}
