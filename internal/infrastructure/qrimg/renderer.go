// Package qrimg renderiza la identidad QR de un lote como imagen PNG para
// impresión o escaneo directo desde el navegador.
package qrimg

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultSize lado en píxeles de la imagen generada.
const DefaultSize = 300

// Renderer genera imágenes PNG a partir del contenido del QR.
type Renderer struct {
	size int
}

// NewRenderer construye el renderizador con el tamaño por defecto.
func NewRenderer() *Renderer {
	return &Renderer{size: DefaultSize}
}

// Render codifica el contenido como QR (nivel de corrección M) y lo escala a
// un PNG cuadrado.
func (r *Renderer) Render(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrimg: contenido vacío")
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrimg: codificar: %w", err)
	}
	scaled, err := barcode.Scale(code, r.size, r.size)
	if err != nil {
		return nil, fmt.Errorf("qrimg: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qrimg: png: %w", err)
	}
	return buf.Bytes(), nil
}
