package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var _ repository.StockCatalogueRepository = (*StockCatalogueRepo)(nil)

const catalogueColumns = `id, nombre, sku, descripcion, status, created_by_user_id, created_at, updated_at, deleted_at`

// StockCatalogueRepo implementación del diccionario de stock sobre PostgreSQL
// (usable con pool o tx).
type StockCatalogueRepo struct {
	q Querier
}

// NewStockCatalogueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockCatalogueRepository(q Querier) *StockCatalogueRepo {
	return &StockCatalogueRepo{q: q}
}

// Create persiste la entrada y asigna el ID generado. El SKU tiene constraint
// único; un duplicado retorna ErrDuplicate.
func (r *StockCatalogueRepo) Create(c *entity.StockCatalogue) error {
	query := `
		INSERT INTO stock_catalogues (nombre, sku, descripcion, status, created_by_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nombre, c.SKU, c.Descripcion, c.Status, c.CreatedByUserID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create catalogue: %w", err)
	}
	return nil
}

// GetActiveByID obtiene una entrada no borrada por ID; nil si no existe.
func (r *StockCatalogueRepo) GetActiveByID(id int) (*entity.StockCatalogue, error) {
	query := `SELECT ` + catalogueColumns + ` FROM stock_catalogues WHERE id = $1 AND deleted_at IS NULL`
	c, err := scanCatalogue(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalogue: %w", err)
	}
	return c, nil
}

// List lista entradas activas, más reciente primero.
func (r *StockCatalogueRepo) List(limit, offset int) ([]*entity.StockCatalogue, error) {
	query := `SELECT ` + catalogueColumns + ` FROM stock_catalogues WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalogues: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockCatalogue
	for rows.Next() {
		c, err := scanCatalogue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalogue: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta entradas activas.
func (r *StockCatalogueRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_catalogues WHERE deleted_at IS NULL`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count catalogues: %w", err)
	}
	return total, nil
}

// Touch actualiza updated_at de la entrada.
func (r *StockCatalogueRepo) Touch(id int, at time.Time) error {
	query := `UPDATE stock_catalogues SET updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("touch catalogue: %w", err)
	}
	return nil
}

func scanCatalogue(row pgx.Row) (*entity.StockCatalogue, error) {
	var c entity.StockCatalogue
	err := row.Scan(&c.ID, &c.Nombre, &c.SKU, &c.Descripcion, &c.Status, &c.CreatedByUserID,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
