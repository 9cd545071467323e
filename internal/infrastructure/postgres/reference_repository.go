package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var (
	_ repository.ProductStatusRepository     = (*ProductStatusRepo)(nil)
	_ repository.WarehouseTypeRepository     = (*WarehouseTypeRepo)(nil)
	_ repository.UnitOfMeasurementRepository = (*UnitOfMeasurementRepo)(nil)
)

// ProductStatusRepo catálogo de estados de producto.
type ProductStatusRepo struct {
	q Querier
}

// NewProductStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductStatusRepository(q Querier) *ProductStatusRepo {
	return &ProductStatusRepo{q: q}
}

func (r *ProductStatusRepo) GetActiveByID(id int) (*entity.ProductStatus, error) {
	query := `SELECT id, name, description, created_at, updated_at, deleted_at
		FROM product_statuses WHERE id = $1 AND deleted_at IS NULL`
	var s entity.ProductStatus
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product status: %w", err)
	}
	return &s, nil
}

func (r *ProductStatusRepo) List() ([]*entity.ProductStatus, error) {
	query := `SELECT id, name, description, created_at, updated_at, deleted_at
		FROM product_statuses WHERE deleted_at IS NULL ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list product statuses: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductStatus
	for rows.Next() {
		var s entity.ProductStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// WarehouseTypeRepo catálogo de tipos de bodega.
type WarehouseTypeRepo struct {
	q Querier
}

// NewWarehouseTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseTypeRepository(q Querier) *WarehouseTypeRepo {
	return &WarehouseTypeRepo{q: q}
}

func (r *WarehouseTypeRepo) GetActiveByID(id int) (*entity.WarehouseType, error) {
	query := `SELECT id, code, name, created_at, updated_at, deleted_at
		FROM warehouse_types WHERE id = $1 AND deleted_at IS NULL`
	var w entity.WarehouseType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Code, &w.Name, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse type: %w", err)
	}
	return &w, nil
}

func (r *WarehouseTypeRepo) List() ([]*entity.WarehouseType, error) {
	query := `SELECT id, code, name, created_at, updated_at, deleted_at
		FROM warehouse_types WHERE deleted_at IS NULL ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouse types: %w", err)
	}
	defer rows.Close()

	var list []*entity.WarehouseType
	for rows.Next() {
		var w entity.WarehouseType
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse type: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// UnitOfMeasurementRepo catálogo de unidades de medida.
type UnitOfMeasurementRepo struct {
	q Querier
}

// NewUnitOfMeasurementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitOfMeasurementRepository(q Querier) *UnitOfMeasurementRepo {
	return &UnitOfMeasurementRepo{q: q}
}

func (r *UnitOfMeasurementRepo) GetActiveByID(id int) (*entity.UnitOfMeasurement, error) {
	query := `SELECT id, code, name, created_at, updated_at, deleted_at
		FROM units_of_measurement WHERE id = $1 AND deleted_at IS NULL`
	var u entity.UnitOfMeasurement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Code, &u.Name, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit of measurement: %w", err)
	}
	return &u, nil
}

func (r *UnitOfMeasurementRepo) List() ([]*entity.UnitOfMeasurement, error) {
	query := `SELECT id, code, name, created_at, updated_at, deleted_at
		FROM units_of_measurement WHERE deleted_at IS NULL ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list units of measurement: %w", err)
	}
	defer rows.Close()

	var list []*entity.UnitOfMeasurement
	for rows.Next() {
		var u entity.UnitOfMeasurement
		if err := rows.Scan(&u.ID, &u.Code, &u.Name, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan unit of measurement: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
