package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, stock_catalogue_id, product_status_id, qr_code_id, created_by_user_id,
	warehouse_type_id, unit_of_measurement_id, nombre, fecha, fecha_muestreo, codigo, codigo_producto,
	lote, lote_proveedor, fabricante, distribuidor, numero_analisis, caducidad, reanalisis,
	numero_contenedores, cantidad_total, descuentos, created_at, updated_at, deleted_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el lote y asigna el ID generado.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (stock_catalogue_id, product_status_id, qr_code_id, created_by_user_id,
			warehouse_type_id, unit_of_measurement_id, nombre, fecha, fecha_muestreo, codigo,
			codigo_producto, lote, lote_proveedor, fabricante, distribuidor, numero_analisis,
			caducidad, reanalisis, numero_contenedores, cantidad_total, descuentos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.StockCatalogueID, p.ProductStatusID, p.QrCodeID, p.CreatedByUserID,
		p.WarehouseTypeID, p.UnitOfMeasurementID, p.Nombre, p.Fecha, p.FechaMuestreo, p.Codigo,
		p.CodigoProducto, p.Lote, p.LoteProveedor, p.Fabricante, p.Distribuidor, p.NumeroAnalisis,
		p.Caducidad, p.Reanalisis, p.NumeroContenedores, p.CantidadTotal, p.Descuentos, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetActiveByID obtiene un lote no borrado por ID; nil si no existe.
func (r *ProductRepo) GetActiveByID(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetActiveForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetActiveForUpdate(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// GetActiveByQrCodeID obtiene el lote asociado a una identidad QR.
func (r *ProductRepo) GetActiveByQrCodeID(qrCodeID int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE qr_code_id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, qrCodeID), "get product by qr")
}

// ExistsByID verifica existencia del ID incluyendo lotes dados de baja.
func (r *ProductRepo) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// Update persiste los campos editables de un lote activo.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET product_status_id = $2, warehouse_type_id = $3, unit_of_measurement_id = $4,
			nombre = $5, fecha_muestreo = $6, codigo_producto = $7, lote_proveedor = $8,
			fabricante = $9, distribuidor = $10, numero_analisis = $11, caducidad = $12,
			reanalisis = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProductStatusID, p.WarehouseTypeID, p.UnitOfMeasurementID,
		p.Nombre, p.FechaMuestreo, p.CodigoProducto, p.LoteProveedor,
		p.Fabricante, p.Distribuidor, p.NumeroAnalisis, p.Caducidad,
		p.Reanalisis, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateCantidadTotal actualiza solo el saldo del lote.
func (r *ProductRepo) UpdateCantidadTotal(id, cantidadTotal int) error {
	query := `UPDATE products SET cantidad_total = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, cantidadTotal)
	if err != nil {
		return fmt.Errorf("update cantidad total: %w", err)
	}
	return nil
}

// BindQrCode asocia la identidad QR al lote.
func (r *ProductRepo) BindQrCode(productID, qrCodeID int) error {
	query := `UPDATE products SET qr_code_id = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, productID, qrCodeID)
	if err != nil {
		return fmt.Errorf("bind qr code: %w", err)
	}
	return nil
}

// SoftDelete marca el lote como borrado.
func (r *ProductRepo) SoftDelete(id int, at time.Time) error {
	query := `UPDATE products SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// List lista lotes activos, más reciente primero, con filtros opcionales.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL`
	args := []any{}
	pos := 1
	if filter.StockCatalogueID != nil {
		query += fmt.Sprintf(" AND stock_catalogue_id = $%d", pos)
		args = append(args, *filter.StockCatalogueID)
		pos++
	}
	if filter.ProductStatusID != nil {
		query += fmt.Sprintf(" AND product_status_id = $%d", pos)
		args = append(args, *filter.ProductStatusID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta lotes activos con los mismos filtros del listado.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	query := `SELECT count(*) FROM products WHERE deleted_at IS NULL`
	args := []any{}
	pos := 1
	if filter.StockCatalogueID != nil {
		query += fmt.Sprintf(" AND stock_catalogue_id = $%d", pos)
		args = append(args, *filter.StockCatalogueID)
		pos++
	}
	if filter.ProductStatusID != nil {
		query += fmt.Sprintf(" AND product_status_id = $%d", pos)
		args = append(args, *filter.ProductStatusID)
		pos++
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.StockCatalogueID, &p.ProductStatusID, &p.QrCodeID, &p.CreatedByUserID,
		&p.WarehouseTypeID, &p.UnitOfMeasurementID, &p.Nombre, &p.Fecha, &p.FechaMuestreo,
		&p.Codigo, &p.CodigoProducto, &p.Lote, &p.LoteProveedor, &p.Fabricante, &p.Distribuidor,
		&p.NumeroAnalisis, &p.Caducidad, &p.Reanalisis, &p.NumeroContenedores, &p.CantidadTotal,
		&p.Descuentos, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
