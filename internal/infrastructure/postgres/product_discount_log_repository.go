package postgres

import (
	"context"
	"fmt"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var _ repository.ProductDiscountLogRepository = (*ProductDiscountLogRepo)(nil)

// ProductDiscountLogRepo implementación del historial de descuentos sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only: no hay UPDATE
// ni DELETE.
type ProductDiscountLogRepo struct {
	q Querier
}

// NewProductDiscountLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductDiscountLogRepository(q Querier) *ProductDiscountLogRepo {
	return &ProductDiscountLogRepo{q: q}
}

// Create persiste el registro de descuento y asigna el ID generado.
func (r *ProductDiscountLogRepo) Create(l *entity.ProductDiscountLog) error {
	query := `
		INSERT INTO product_discount_logs (product_id, product_nombre, product_lote, amount, description,
			quantity_before, quantity_after, created_by_user_id, created_by_user_name, created_by_user_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.ProductID, l.ProductNombre, l.ProductLote, l.Amount, l.Description,
		l.QuantityBefore, l.QuantityAfter, l.CreatedByUserID, l.CreatedByUserName, l.CreatedByUserEmail, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("create discount log: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del lote, más reciente primero.
func (r *ProductDiscountLogRepo) ListByProduct(productID int) ([]*entity.ProductDiscountLog, error) {
	query := `
		SELECT id, product_id, product_nombre, product_lote, amount, description,
			quantity_before, quantity_after, created_by_user_id, created_by_user_name, created_by_user_email, created_at
		FROM product_discount_logs
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list discount logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductDiscountLog
	for rows.Next() {
		var l entity.ProductDiscountLog
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.ProductNombre, &l.ProductLote, &l.Amount, &l.Description,
			&l.QuantityBefore, &l.QuantityAfter, &l.CreatedByUserID, &l.CreatedByUserName, &l.CreatedByUserEmail, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan discount log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
