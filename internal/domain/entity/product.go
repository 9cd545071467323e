package entity

import "time"

// Product representa un lote físico de producto en el almacén del laboratorio.
// CantidadTotal es la única fuente de verdad del saldo de piezas: se fija al
// crear el lote y solo decrece vía descuentos. Descuentos es informativo.
type Product struct {
	ID                  int
	StockCatalogueID    int
	ProductStatusID     int
	QrCodeID            *int    // se asigna una sola vez, en la creación
	CreatedByUserID     *string // UUID
	WarehouseTypeID     *int
	UnitOfMeasurementID *int
	Nombre              string
	Fecha               time.Time // fecha de ingreso
	FechaMuestreo       *time.Time
	Codigo              string // derivado: sku-lote-sufijo si no se proporciona
	CodigoProducto      string
	Lote                string
	LoteProveedor       string
	Fabricante          string
	Distribuidor        string
	NumeroAnalisis      string
	Caducidad           *time.Time
	Reanalisis          *time.Time
	NumeroContenedores  int
	CantidadTotal       int
	Descuentos          int
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// Deleted indica si el lote fue dado de baja (borrado lógico).
func (p *Product) Deleted() bool {
	return p.DeletedAt != nil
}
