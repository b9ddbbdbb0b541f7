package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/application/auth"
	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/pkg/validate"
)

// SessionHandler maneja registro y login (público).
type SessionHandler struct {
	uc *auth.AuthUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *auth.AuthUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario (crea también su carrito)
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sessions/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Creation("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return respondError(c, domain.Creation(err.Error()))
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusCreated, out)
}

// Login godoc
// @Summary      Login (emite JWT con rol y verificación premium)
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return respondError(c, domain.Validation(err.Error()))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}
