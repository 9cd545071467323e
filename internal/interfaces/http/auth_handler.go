package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/auth"
	"github.com/labmetricas/labstock-api/internal/application/dto"
)

// AuthHandler maneja autenticación y registro de usuarios.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login con email y password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credenciales"
// @Success      200  {object}  dto.ResponseObject
// @Failure      401  {object}  dto.ResponseObject
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "Login exitoso", out)
}

// Register godoc
// @Summary      Registro de usuario (solo ADMIN)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "name, email, password, role"
// @Success      201  {object}  dto.ResponseObject
// @Failure      409  {object}  dto.ResponseObject
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := parseAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Register(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "Usuario registrado exitosamente", out)
}
