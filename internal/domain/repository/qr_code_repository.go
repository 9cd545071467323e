package repository

import "github.com/labmetricas/labstock-api/internal/domain/entity"

// QrCodeRepository puerto de identidades QR.
type QrCodeRepository interface {
	// Create persiste la identidad y asigna su ID.
	Create(code *entity.QrCode) error
	GetActiveByID(id int) (*entity.QrCode, error)
	GetActiveByHash(hash string) (*entity.QrCode, error)
}
