package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP de usuarios: consulta, listado
// admin, documentación y promoción a premium.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{uid} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página (1-based)"  default(1)
// @Param        limit  query  int  false  "Límite"            default(20)
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("page debe ser un entero positivo"))
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// SetDocuments godoc
// @Summary      Registrar presencia de documentos (colaborador de subida)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "ID del usuario"
// @Param        body  body  dto.DocumentsRequest  true  "Flags de presencia"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{uid}/documents [post]
func (h *UserHandler) SetDocuments(c *fiber.Ctx) error {
	var in dto.DocumentsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.SetDocuments(c.Context(), c.Params("uid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// PromoteToPremium godoc
// @Summary      Promocionar usuario a premium (requiere documentación completa)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/premium/{uid} [post]
func (h *UserHandler) PromoteToPremium(c *fiber.Ctx) error {
	out, err := h.uc.PromoteToPremium(c.Context(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}
