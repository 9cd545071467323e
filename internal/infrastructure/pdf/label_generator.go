// Package pdf implementa la generación de la etiqueta imprimible de un lote.
//
// Layout de la etiqueta (A6 apaisada):
//
//	┌───────────────────────────────────────────────┐
//	│  NOMBRE DEL PRODUCTO                          │
//	│  Lote: XXX          Código: YYY               │
//	│  Caducidad: dd/mm/aaaa                        │
//	│                                  ┌─────────┐  │
//	│  Fabricante / Distribuidor       │   QR    │  │
//	│                                  └─────────┘  │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/labmetricas/labstock-api/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// LabelGenerator genera la etiqueta PDF de un lote usando Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabel genera la etiqueta del lote con su QR y devuelve los bytes
// del PDF.
func (g *LabelGenerator) GenerateLabel(p *entity.Product, qrHash string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de Lote", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(detailRows(p)...)
	m.AddRows(qrRow(p, qrHash))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: nombre del producto en negrita.
func titleRow(p *entity.Product) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(p.Nombre, props.Text{
			Size: 14, Style: fontstyle.Bold, Align: align.Left,
		})),
	)
}

// detailRows: lote, código y fechas relevantes.
func detailRows(p *entity.Product) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Lote: %s", p.Lote), props.Text{Size: 10})),
			col.New(6).Add(text.New(fmt.Sprintf("Código: %s", p.Codigo), props.Text{Size: 10})),
		),
		row.New(6).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Ingreso: %s", p.Fecha.Format("02/01/2006")), props.Text{Size: 9, Color: colorGray})),
			col.New(6).Add(text.New(fmt.Sprintf("Cantidad: %d", p.CantidadTotal), props.Text{Size: 9, Color: colorGray})),
		),
	}
	if p.Caducidad != nil {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Caducidad: %s", p.Caducidad.Format("02/01/2006")), props.Text{
				Size: 10, Style: fontstyle.Bold,
			})),
		))
	}
	if p.Fabricante != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Fabricante: %s", p.Fabricante), props.Text{Size: 8, Color: colorGray})),
		))
	}
	return rows
}

// qrRow: identidad QR del lote con el hash legible debajo.
func qrRow(p *entity.Product, qrHash string) core.Row {
	return row.New(40).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("Lote proveedor: %s", p.LoteProveedor), props.Text{Size: 8, Color: colorGray, Top: 2}),
			text.New(qrHash, props.Text{Size: 6, Color: colorGray, Top: 30}),
		),
		col.New(5).Add(code.NewQr(qrHash, props.Rect{
			Center:  true,
			Percent: 90,
		})),
	)
}
