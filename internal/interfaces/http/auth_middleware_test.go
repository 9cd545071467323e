package http_test

import (
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/labmetricas/labstock-api/internal/interfaces/http"
	"github.com/labmetricas/labstock-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-de-pruebas-no-usar"
	testIssuer    = "labstock-api"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserName  = "Laura Gómez"
	testEmail     = "laura@labmetricas.mx"
)

// buildTestApp app mínima con una ruta protegida; si se pasan roles, además
// exige uno de ellos. El handler devuelve la identidad vista desde Locals.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor := apphttp.GetActor(c)
		return c.JSON(fiber.Map{
			"user_id": actor.ID,
			"name":    actor.Name,
			"email":   actor.Email,
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, testUserID, testUserName, testEmail, role, testIssuer, 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

// Un token válido pasa y los claims quedan disponibles en el contexto.
func TestAuth_TokenValido(t *testing.T) {
	app := buildTestApp()

	resp, body := doRequest(t, app, "Bearer "+tokenForRole(t, "OPERADOR"))
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, testUserID)
	assert.Contains(t, body, testUserName, "el nombre del token llega al actor")
	assert.Contains(t, body, testEmail)
	assert.Contains(t, body, "OPERADOR")
}

// Sin header Authorization la petición se rechaza.
func TestAuth_SinHeader(t *testing.T) {
	app := buildTestApp()

	resp, _ := doRequest(t, app, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

// Formatos de header inválidos se rechazan.
func TestAuth_HeaderMalformado(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "ADMIN")

	for _, header := range []string{
		token,            // sin esquema
		"Basic " + token, // esquema equivocado
		"Bearer ",        // token vacío
	} {
		resp, _ := doRequest(t, app, header)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

// Un token firmado con otro secret no valida.
func TestAuth_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()

	token, err := jwt.Generate("otro-secret", testUserID, testUserName, testEmail, "ADMIN", testIssuer, 60)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por rol
// ──────────────────────────────────────────────────────────────────────────────

// El rol permitido entra; el resto recibe 403.
func TestRequireRole(t *testing.T) {
	app := buildTestApp("ADMIN", "SUPERVISOR")

	for role, want := range map[string]int{
		"ADMIN":      nethttp.StatusOK,
		"SUPERVISOR": nethttp.StatusOK,
		"OPERADOR":   nethttp.StatusForbidden,
	} {
		resp, _ := doRequest(t, app, "Bearer "+tokenForRole(t, role))
		assert.Equal(t, want, resp.StatusCode, "rol %s", role)
	}
}

// RequireRole sin token previo también rechaza (401 antes que 403).
func TestRequireRole_SinToken(t *testing.T) {
	app := buildTestApp("ADMIN")

	resp, _ := doRequest(t, app, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}
