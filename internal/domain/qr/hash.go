// Package qr genera la identidad direccionada por contenido de un lote.
//
// El hash concatena id del producto, lote y milisegundos actuales, por lo que
// el mismo lote recreado más tarde obtiene una identidad distinta. El digest
// SHA-256 está garantizado por la biblioteca estándar; no existe ruta
// degradada de concatenación plana.
package qr

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// HashLength longitud del hash hex resultante.
const HashLength = 64

// Hash genera el hash de identidad QR para un lote recién creado.
func Hash(productID int, lote string) string {
	return HashAt(productID, lote, time.Now())
}

// HashAt variante con reloj explícito, para tests.
func HashAt(productID int, lote string, now time.Time) string {
	raw := fmt.Sprintf("%d_%s_%d", productID, lote, now.UnixMilli())
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
