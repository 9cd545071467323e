package repository

import "github.com/labmetricas/labstock-api/internal/domain/entity"

// Resolutores de referencias: devuelven la entidad activa o nil.

type ProductStatusRepository interface {
	GetActiveByID(id int) (*entity.ProductStatus, error)
	List() ([]*entity.ProductStatus, error)
}

type WarehouseTypeRepository interface {
	GetActiveByID(id int) (*entity.WarehouseType, error)
	List() ([]*entity.WarehouseType, error)
}

type UnitOfMeasurementRepository interface {
	GetActiveByID(id int) (*entity.UnitOfMeasurement, error)
	List() ([]*entity.UnitOfMeasurement, error)
}
