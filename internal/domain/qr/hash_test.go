package qr_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labmetricas/labstock-api/internal/domain/qr"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// El hash debe ser sha256 en hex minúsculo de 64 caracteres.
func TestHashAt_FormatoHex64(t *testing.T) {
	h := qr.HashAt(42, "L-2024-001", time.UnixMilli(1700000000000))
	require.Len(t, h, qr.HashLength)
	assert.Regexp(t, hexRe, h)
}

// Mismo producto, lote e instante producen el mismo hash (determinista).
func TestHashAt_Determinista(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, qr.HashAt(7, "LOTE-A", now), qr.HashAt(7, "LOTE-A", now))
}

// El instante de creación participa del hash: el mismo lote en milisegundos
// distintos produce identidades distintas.
func TestHashAt_SaladoPorTiempo(t *testing.T) {
	a := qr.HashAt(7, "LOTE-A", time.UnixMilli(1700000000000))
	b := qr.HashAt(7, "LOTE-A", time.UnixMilli(1700000000001))
	assert.NotEqual(t, a, b)
}

// Productos o lotes distintos producen identidades distintas.
func TestHashAt_DistinguePorProductoYLote(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.NotEqual(t, qr.HashAt(1, "LOTE-A", now), qr.HashAt(2, "LOTE-A", now))
	assert.NotEqual(t, qr.HashAt(1, "LOTE-A", now), qr.HashAt(1, "LOTE-B", now))
}

// Hash usa el reloj actual: dos llamadas son válidas aunque difieran.
func TestHash_Formato(t *testing.T) {
	h := qr.Hash(1, "LOTE-A")
	assert.Regexp(t, hexRe, h)
}
