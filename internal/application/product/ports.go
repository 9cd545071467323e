package product

import (
	"context"

	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de base de datos.
type TxRepos struct {
	Products   repository.ProductRepository
	QrCodes    repository.QrCodeRepository
	Movements  repository.StockMovementRepository
	Discounts  repository.ProductDiscountLogRepository
	Catalogues repository.StockCatalogueRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn retorna nil,
// Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
