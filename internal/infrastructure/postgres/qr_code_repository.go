package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/labmetricas/labstock-api/internal/domain"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

var _ repository.QrCodeRepository = (*QrCodeRepo)(nil)

// QrCodeRepo implementación de identidades QR sobre PostgreSQL (usable con pool o tx).
type QrCodeRepo struct {
	q Querier
}

// NewQrCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQrCodeRepository(q Querier) *QrCodeRepo {
	return &QrCodeRepo{q: q}
}

// Create persiste la identidad QR y asigna el ID generado. El hash tiene
// constraint único; una colisión retorna ErrDuplicate.
func (r *QrCodeRepo) Create(c *entity.QrCode) error {
	query := `
		INSERT INTO qr_codes (qr_contenido, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.QrContenido, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create qr code: %w", err)
	}
	return nil
}

// GetActiveByID obtiene una identidad no borrada por ID; nil si no existe.
func (r *QrCodeRepo) GetActiveByID(id int) (*entity.QrCode, error) {
	query := `SELECT id, qr_contenido, created_at, updated_at, deleted_at FROM qr_codes WHERE id = $1 AND deleted_at IS NULL`
	var c entity.QrCode
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.QrContenido, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get qr code: %w", err)
	}
	return &c, nil
}

// GetActiveByHash obtiene una identidad no borrada por su hash; nil si no existe.
func (r *QrCodeRepo) GetActiveByHash(hash string) (*entity.QrCode, error) {
	query := `SELECT id, qr_contenido, created_at, updated_at, deleted_at FROM qr_codes WHERE qr_contenido = $1 AND deleted_at IS NULL`
	var c entity.QrCode
	err := r.q.QueryRow(context.Background(), query, hash).Scan(&c.ID, &c.QrContenido, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get qr code by hash: %w", err)
	}
	return &c, nil
}
