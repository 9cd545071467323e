package product_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/dto"
	"github.com/labmetricas/labstock-api/internal/application/product"
	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store      *memStore
	productUC  *product.UseCase
	discountUC *product.DiscountUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newMemStore()
	now := time.Now()
	s.catalogues[1] = entity.StockCatalogue{ID: 1, Nombre: "Ácido Clorhídrico 37%", SKU: "HCL-37", Status: true, CreatedAt: now, UpdatedAt: now}
	s.statuses[1] = entity.ProductStatus{ID: 1, Name: "Cuarentena", CreatedAt: now, UpdatedAt: now}
	s.warehouses[1] = entity.WarehouseType{ID: 1, Code: "GEN", Name: "Almacén general", CreatedAt: now, UpdatedAt: now}
	s.units[1] = entity.UnitOfMeasurement{ID: 1, Code: "KG", Name: "Kilogramo", CreatedAt: now, UpdatedAt: now}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	auditor := audit.NewRecorder(&memAuditRepo{s: s}, log)
	tx := &memTxRunner{s: s}
	productRepo := &memProductRepo{s: s}

	return &fixture{
		store: s,
		productUC: product.NewUseCase(
			tx, productRepo, &memQrRepo{s: s}, &memCatalogueRepo{s: s},
			&memStatusRepo{s: s}, &memWarehouseRepo{s: s}, &memUnitRepo{s: s}, auditor,
		),
		discountUC: product.NewDiscountUseCase(tx, productRepo, &memDiscountRepo{s: s}, auditor),
	}
}

func testActor() entity.ActorRef {
	return entity.ActorRef{
		ID:    "00000000-0000-0000-0000-000000000001",
		Name:  "Laura Gómez",
		Email: "laura@labmetricas.mx",
	}
}

func validCreateRequest() dto.CreateProductRequest {
	wh, unit := 1, 1
	return dto.CreateProductRequest{
		StockCatalogueID:    1,
		ProductStatusID:     1,
		WarehouseTypeID:     &wh,
		UnitOfMeasurementID: &unit,
		Nombre:              "Ácido Clorhídrico 37%",
		Fecha:               time.Now(),
		Lote:                "L-2024-001",
		LoteProveedor:       "PROV-88",
		Fabricante:          "Química del Norte",
		NumeroContenedores:  4,
		CantidadTotal:       100,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de lote
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: producto + identidad QR + entrada de Kardex, todo en una
// transacción.
func TestCreate_AltaAtomicaCompleta(t *testing.T) {
	f := newFixture(t)

	out, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	// Producto persistido con saldo inicial
	p := f.store.products[out.Product.ID]
	assert.Equal(t, 100, p.CantidadTotal)
	assert.Equal(t, 0, p.Descuentos)
	require.NotNil(t, p.CreatedByUserID)
	assert.Equal(t, testActor().ID, *p.CreatedByUserID)

	// Identidad QR de 64 hex, asociada al producto
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), out.QrHash)
	require.NotNil(t, p.QrCodeID)
	assert.Equal(t, out.QrHash, f.store.qrCodes[*p.QrCodeID].QrContenido)

	// Entrada inicial del Kardex: cantidad = número de contenedores
	require.NotZero(t, out.MovementID)
	mov := f.store.movements[out.MovementID]
	assert.Equal(t, entity.TipoMovimientoEntrada, mov.Tipo)
	assert.True(t, mov.Cantidad.Equal(decimal.NewFromInt(4)), "la entrada registra contenedores, no piezas")
	assert.Equal(t, "Ingreso Inicial - Lote L-2024-001", mov.Referencia)
	assert.Equal(t, testActor().ID, mov.UserID)

	// Auditoría registrada
	require.Len(t, f.store.audit, 1)
	assert.Contains(t, f.store.audit[0].Action, "CREACIÓN DE PRODUCTO")
	assert.Contains(t, f.store.audit[0].Action, "Laura Gómez")
}

// Si no se envía código se deriva de sku-lote-sufijo.
func TestCreate_CodigoDerivado(t *testing.T) {
	f := newFixture(t)

	out, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Product.Codigo, "HCL-37-L-2024-001-"),
		"código derivado del SKU y el lote, obtuvo %q", out.Product.Codigo)
}

// El contador informativo de descuentos se persiste si viene en el alta;
// ausente queda en cero y negativo se rechaza.
func TestCreate_DescuentosInformativo(t *testing.T) {
	f := newFixture(t)

	in := validCreateRequest()
	d := 3
	in.Descuentos = &d
	out, err := f.productUC.Create(context.Background(), testActor(), in)
	require.NoError(t, err)
	assert.Equal(t, 3, f.store.products[out.Product.ID].Descuentos)
	assert.Equal(t, 3, out.Product.Descuentos)

	in = validCreateRequest()
	neg := -1
	in.Descuentos = &neg
	_, err = f.productUC.Create(context.Background(), testActor(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Referencias inexistentes producen not found y nada se persiste.
func TestCreate_ReferenciaInexistente(t *testing.T) {
	f := newFixture(t)

	in := validCreateRequest()
	in.ProductStatusID = 99
	_, err := f.productUC.Create(context.Background(), testActor(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "estado de producto")
	assert.Empty(t, f.store.products)
	assert.Empty(t, f.store.movements)
}

// Cantidades no positivas se rechazan antes de abrir la transacción.
func TestCreate_CantidadesInvalidas(t *testing.T) {
	f := newFixture(t)

	in := validCreateRequest()
	in.CantidadTotal = 0
	_, err := f.productUC.Create(context.Background(), testActor(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCreateRequest()
	in.NumeroContenedores = -1
	_, err = f.productUC.Create(context.Background(), testActor(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Atomicidad: si la línea de Kardex falla, ni el producto ni el QR quedan
// persistidos.
func TestCreate_FalloEnKardexNoDejaRastro(t *testing.T) {
	f := newFixture(t)
	f.store.failMovementCreate = true

	_, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.Error(t, err)
	assert.Empty(t, f.store.products, "rollback debe deshacer el producto")
	assert.Empty(t, f.store.qrCodes, "rollback debe deshacer la identidad QR")
	assert.Empty(t, f.store.movements)
	assert.Empty(t, f.store.audit, "no se audita una operación fallida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura, edición y baja
// ──────────────────────────────────────────────────────────────────────────────

// La identidad QR resuelve al lote mientras esté activo.
func TestGetByQrHash_ResuelveLoteActivo(t *testing.T) {
	f := newFixture(t)
	out, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.NoError(t, err)

	got, err := f.productUC.GetByQrHash(context.Background(), out.QrHash)
	require.NoError(t, err)
	assert.Equal(t, out.Product.ID, got.ID)
	assert.Equal(t, out.QrHash, got.QrHash)

	_, err = f.productUC.GetByQrHash(context.Background(), strings.Repeat("0", 64))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Edición parcial: solo los campos presentes cambian; el saldo no se toca.
func TestUpdate_Parcial(t *testing.T) {
	f := newFixture(t)
	out, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.NoError(t, err)

	nombre := "Ácido Clorhídrico 37% (reetiquetado)"
	upd, err := f.productUC.Update(context.Background(), testActor(), dto.UpdateProductRequest{
		ID:     out.Product.ID,
		Nombre: &nombre,
	})
	require.NoError(t, err)
	assert.Equal(t, nombre, upd.Nombre)
	assert.Equal(t, 100, upd.CantidadTotal, "el saldo no se edita por esta vía")
	assert.Equal(t, "L-2024-001", upd.Lote, "los campos ausentes no cambian")

	_, err = f.productUC.Update(context.Background(), testActor(), dto.UpdateProductRequest{ID: 999})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// La baja es lógica: el lote desaparece de las lecturas activas pero su ID
// sigue existiendo.
func TestDelete_BajaLogica(t *testing.T) {
	f := newFixture(t)
	out, err := f.productUC.Create(context.Background(), testActor(), validCreateRequest())
	require.NoError(t, err)
	id := out.Product.ID

	require.NoError(t, f.productUC.Delete(context.Background(), testActor(), id))

	_, err = f.productUC.Get(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	p := f.store.products[id]
	require.NotNil(t, p.DeletedAt, "borrado lógico, no físico")

	// La identidad QR tampoco resuelve a lotes dados de baja
	_, err = f.productUC.GetByQrHash(context.Background(), out.QrHash)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Doble baja: el lote ya no está activo
	err = f.productUC.Delete(context.Background(), testActor(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Listado paginado con filtros.
func TestList_PaginadoYFiltrado(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		in := validCreateRequest()
		in.Lote = in.Lote + string(rune('A'+i))
		_, err := f.productUC.Create(context.Background(), testActor(), in)
		require.NoError(t, err)
	}

	out, err := f.productUC.List(context.Background(), dto.ListProductsRequest{
		PageRequest: dto.PageRequest{Page: 0, Size: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Meta.TotalElements)
	assert.Equal(t, 3, out.Meta.TotalPages)
	assert.Len(t, out.Content.([]*dto.ProductResponse), 2)

	otro := 99
	vacio, err := f.productUC.List(context.Background(), dto.ListProductsRequest{
		PageRequest:      dto.PageRequest{Page: 0, Size: 10},
		StockCatalogueID: &otro,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, vacio.Meta.TotalElements)
}
