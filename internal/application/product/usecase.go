package product

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/qr"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// UseCase operaciones sobre lotes: alta atómica (producto + QR + línea de
// Kardex), edición parcial, baja lógica, listado y resolución por hash QR.
type UseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	qrRepo        repository.QrCodeRepository
	catalogueRepo repository.StockCatalogueRepository
	statusRepo    repository.ProductStatusRepository
	warehouseRepo repository.WarehouseTypeRepository
	unitRepo      repository.UnitOfMeasurementRepository
	auditor       *audit.Recorder
}

// NewUseCase construye el caso de uso de lotes.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	qrRepo repository.QrCodeRepository,
	catalogueRepo repository.StockCatalogueRepository,
	statusRepo repository.ProductStatusRepository,
	warehouseRepo repository.WarehouseTypeRepository,
	unitRepo repository.UnitOfMeasurementRepository,
	auditor *audit.Recorder,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		qrRepo:        qrRepo,
		catalogueRepo: catalogueRepo,
		statusRepo:    statusRepo,
		warehouseRepo: warehouseRepo,
		unitRepo:      unitRepo,
		auditor:       auditor,
	}
}

// Create da de alta un lote de forma atómica: inserta el producto, genera y
// asocia su identidad QR y asienta la entrada inicial en el Kardex. Si
// cualquier paso falla no persiste nada.
func (uc *UseCase) Create(ctx context.Context, actor entity.ActorRef, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if in.NumeroContenedores <= 0 || in.CantidadTotal <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Nombre == "" || in.Lote == "" {
		return nil, domain.ErrInvalidInput
	}
	descuentos := 0
	if in.Descuentos != nil {
		if *in.Descuentos < 0 {
			return nil, domain.ErrInvalidInput
		}
		descuentos = *in.Descuentos
	}

	// Resolver referencias activas antes de abrir la transacción.
	catalogue, err := uc.catalogueRepo.GetActiveByID(in.StockCatalogueID)
	if err != nil {
		return nil, err
	}
	if catalogue == nil {
		return nil, fmt.Errorf("%w: catálogo de stock %d", domain.ErrNotFound, in.StockCatalogueID)
	}
	status, err := uc.statusRepo.GetActiveByID(in.ProductStatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, fmt.Errorf("%w: estado de producto %d", domain.ErrNotFound, in.ProductStatusID)
	}
	if in.WarehouseTypeID != nil {
		wh, err := uc.warehouseRepo.GetActiveByID(*in.WarehouseTypeID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, fmt.Errorf("%w: tipo de bodega %d", domain.ErrNotFound, *in.WarehouseTypeID)
		}
	}
	if in.UnitOfMeasurementID != nil {
		unit, err := uc.unitRepo.GetActiveByID(*in.UnitOfMeasurementID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, fmt.Errorf("%w: unidad de medida %d", domain.ErrNotFound, *in.UnitOfMeasurementID)
		}
	}

	now := time.Now()

	codigo := in.Codigo
	if codigo == "" {
		codigo = deriveCodigo(catalogue.SKU, in.Lote, now)
	}

	p := &entity.Product{
		StockCatalogueID:    in.StockCatalogueID,
		ProductStatusID:     in.ProductStatusID,
		WarehouseTypeID:     in.WarehouseTypeID,
		UnitOfMeasurementID: in.UnitOfMeasurementID,
		Nombre:              in.Nombre,
		Fecha:               in.Fecha,
		FechaMuestreo:       in.FechaMuestreo,
		Codigo:              codigo,
		CodigoProducto:      in.CodigoProducto,
		Lote:                in.Lote,
		LoteProveedor:       in.LoteProveedor,
		Fabricante:          in.Fabricante,
		Distribuidor:        in.Distribuidor,
		NumeroAnalisis:      in.NumeroAnalisis,
		Caducidad:           in.Caducidad,
		Reanalisis:          in.Reanalisis,
		NumeroContenedores:  in.NumeroContenedores,
		CantidadTotal:       in.CantidadTotal,
		Descuentos:          descuentos,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !actor.IsAnonymous() {
		id := actor.ID
		p.CreatedByUserID = &id
	}

	var (
		qrHash     string
		movementID int
	)
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.Products.Create(p); err != nil {
			return err
		}

		// La identidad QR depende del ID asignado: se genera dentro de la
		// misma transacción y se asocia una sola vez.
		qrHash = qr.Hash(p.ID, p.Lote)
		code := &entity.QrCode{QrContenido: qrHash, CreatedAt: now, UpdatedAt: now}
		if err := r.QrCodes.Create(code); err != nil {
			return err
		}
		if err := r.Products.BindQrCode(p.ID, code.ID); err != nil {
			return err
		}
		p.QrCodeID = &code.ID

		mov := &entity.StockMovement{
			UserID:           actor.ID,
			StockCatalogueID: p.StockCatalogueID,
			Tipo:             entity.TipoMovimientoEntrada,
			Cantidad:         decimal.NewFromInt(int64(p.NumeroContenedores)),
			Motivo:           "Ingreso de lote",
			Referencia:       fmt.Sprintf("Ingreso Inicial - Lote %s", p.Lote),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := r.Movements.Create(mov); err != nil {
			return err
		}
		movementID = mov.ID

		return r.Catalogues.Touch(p.StockCatalogueID, now)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(fmt.Sprintf(
		"CREACIÓN DE PRODUCTO - Usuario: %s | Producto: %s (ID: %d) | Lote: %s | Cantidad: %d",
		actor.DisplayName(), p.Nombre, p.ID, p.Lote, p.CantidadTotal,
	), actor)

	return &dto.CreateProductResponse{
		Product:    dto.NewProductResponse(p, qrHash),
		QrHash:     qrHash,
		MovementID: movementID,
	}, nil
}

// deriveCodigo construye el código interno cuando el alta no lo trae:
// sku-lote-sufijo, con sufijo derivado del reloj.
func deriveCodigo(sku, lote string, now time.Time) string {
	base := sku
	if base == "" {
		base = "PROD"
	}
	return fmt.Sprintf("%s-%s-%d", base, lote, now.UnixMilli()%10000)
}

// Get devuelve un lote activo por ID.
func (uc *UseCase) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p, uc.resolveQrHash(p)), nil
}

// GetByQrHash resuelve el lote activo asociado a una identidad QR.
func (uc *UseCase) GetByQrHash(ctx context.Context, hash string) (*dto.ProductResponse, error) {
	if hash == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := uc.qrRepo.GetActiveByHash(hash)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.productRepo.GetActiveByQrCodeID(code.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(p, code.QrContenido), nil
}

// Update aplica una edición parcial sobre un lote activo. El saldo y la
// identidad QR no se tocan por esta vía.
func (uc *UseCase) Update(ctx context.Context, actor entity.ActorRef, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetActiveByID(in.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.ProductStatusID != nil {
		status, err := uc.statusRepo.GetActiveByID(*in.ProductStatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, fmt.Errorf("%w: estado de producto %d", domain.ErrNotFound, *in.ProductStatusID)
		}
		p.ProductStatusID = *in.ProductStatusID
	}
	if in.WarehouseTypeID != nil {
		wh, err := uc.warehouseRepo.GetActiveByID(*in.WarehouseTypeID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, fmt.Errorf("%w: tipo de bodega %d", domain.ErrNotFound, *in.WarehouseTypeID)
		}
		p.WarehouseTypeID = in.WarehouseTypeID
	}
	if in.UnitOfMeasurementID != nil {
		unit, err := uc.unitRepo.GetActiveByID(*in.UnitOfMeasurementID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, fmt.Errorf("%w: unidad de medida %d", domain.ErrNotFound, *in.UnitOfMeasurementID)
		}
		p.UnitOfMeasurementID = in.UnitOfMeasurementID
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.FechaMuestreo != nil {
		p.FechaMuestreo = in.FechaMuestreo
	}
	if in.CodigoProducto != nil {
		p.CodigoProducto = *in.CodigoProducto
	}
	if in.LoteProveedor != nil {
		p.LoteProveedor = *in.LoteProveedor
	}
	if in.Fabricante != nil {
		p.Fabricante = *in.Fabricante
	}
	if in.Distribuidor != nil {
		p.Distribuidor = *in.Distribuidor
	}
	if in.NumeroAnalisis != nil {
		p.NumeroAnalisis = *in.NumeroAnalisis
	}
	if in.Caducidad != nil {
		p.Caducidad = in.Caducidad
	}
	if in.Reanalisis != nil {
		p.Reanalisis = in.Reanalisis
	}
	p.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}

	uc.auditor.Record(fmt.Sprintf(
		"MODIFICACIÓN DE PRODUCTO - Usuario: %s | Producto: %s (ID: %d) | Lote: %s",
		actor.DisplayName(), p.Nombre, p.ID, p.Lote,
	), actor)

	return dto.NewProductResponse(p, uc.resolveQrHash(p)), nil
}

// Delete da de baja lógica un lote activo. El historial de descuentos y el
// Kardex permanecen intactos.
func (uc *UseCase) Delete(ctx context.Context, actor entity.ActorRef, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetActiveByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	if err := uc.productRepo.SoftDelete(id, time.Now()); err != nil {
		return err
	}

	uc.auditor.Record(fmt.Sprintf(
		"ELIMINACIÓN DE PRODUCTO - Usuario: %s | Producto: %s (ID: %d) | Lote: %s",
		actor.DisplayName(), p.Nombre, p.ID, p.Lote,
	), actor)

	return nil
}

// List devuelve los lotes activos paginados, con filtros opcionales por
// catálogo y estado.
func (uc *UseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.PagedData, error) {
	in.Normalize()
	filter := repository.ProductFilter{
		StockCatalogueID: in.StockCatalogueID,
		ProductStatusID:  in.ProductStatusID,
	}
	items, err := uc.productRepo.List(filter, in.Limit(), in.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	content := make([]*dto.ProductResponse, 0, len(items))
	for _, p := range items {
		content = append(content, dto.NewProductResponse(p, ""))
	}
	return &dto.PagedData{Content: content, Meta: dto.NewPageResponse(in.PageRequest, total)}, nil
}

// GetForLabel devuelve el lote activo junto con su hash QR, para la etiqueta
// imprimible.
func (uc *UseCase) GetForLabel(ctx context.Context, id int) (*entity.Product, string, error) {
	if id <= 0 {
		return nil, "", domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetActiveByID(id)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}
	hash := uc.resolveQrHash(p)
	if hash == "" {
		return nil, "", domain.ErrNotFound
	}
	return p, hash, nil
}

// resolveQrHash recupera el hash asociado al lote; cadena vacía si no se
// puede resolver.
func (uc *UseCase) resolveQrHash(p *entity.Product) string {
	if p.QrCodeID == nil {
		return ""
	}
	code, err := uc.qrRepo.GetActiveByID(*p.QrCodeID)
	if err != nil || code == nil {
		return ""
	}
	return code.QrContenido
}
