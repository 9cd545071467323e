package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, user_id, stock_catalogue_id, tipo, cantidad, motivo, referencia,
	created_at, updated_at, deleted_at`

// StockMovementRepo implementación del Kardex sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del Kardex. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste la línea del Kardex y asigna el ID generado.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (user_id, stock_catalogue_id, tipo, cantidad, motivo, referencia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.UserID, m.StockCatalogueID, m.Tipo, m.Cantidad, m.Motivo, m.Referencia, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID; nil si no existe.
func (r *StockMovementRepo) GetByID(id int) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1 AND deleted_at IS NULL`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista líneas del Kardex, más reciente primero, con filtros opcionales.
func (r *StockMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE deleted_at IS NULL`
	args := []any{}
	pos := 1
	query, args, pos = applyMovementFilter(query, args, pos, filter)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta líneas con los mismos filtros del listado.
func (r *StockMovementRepo) Count(filter repository.MovementFilter) (int, error) {
	query := `SELECT count(*) FROM stock_movements WHERE deleted_at IS NULL`
	args := []any{}
	pos := 1
	query, args, _ = applyMovementFilter(query, args, pos, filter)

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

func applyMovementFilter(query string, args []any, pos int, filter repository.MovementFilter) (string, []any, int) {
	if filter.StockCatalogueID != nil {
		query += fmt.Sprintf(" AND stock_catalogue_id = $%d", pos)
		args = append(args, *filter.StockCatalogueID)
		pos++
	}
	if filter.Tipo != nil {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, *filter.Tipo)
		pos++
	}
	if filter.FechaInicio != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.FechaInicio)
		pos++
	}
	if filter.FechaFin != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.FechaFin)
		pos++
	}
	return query, args, pos
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.UserID, &m.StockCatalogueID, &m.Tipo, &m.Cantidad, &m.Motivo, &m.Referencia,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
