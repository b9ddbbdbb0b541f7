package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/pkg/validate"
)

// CartHandler maneja las peticiones HTTP del carrito (protegido).
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Create godoc
// @Summary      Crear carrito vacío
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SuccessResponse
// @Router       /api/cart [post]
func (h *CartHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener carrito con productos resueltos y total
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID del carrito"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid} [get]
func (h *CartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("cid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// AddProduct godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID del carrito"
// @Param        pid  path  string  true  "ID del producto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid}/product/{pid} [post]
func (h *CartHandler) AddProduct(c *fiber.Ctx) error {
	out, err := h.uc.AddProduct(c.Context(), GetActor(c), c.Params("cid"), c.Params("pid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una entrada del carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cid   path  string  true  "ID del carrito"
// @Param        pid   path  string  true  "ID del producto"
// @Param        body  body  dto.SetQuantityRequest  true  "Cantidad (entero positivo)"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid}/product/{pid} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo inválido"))
	}
	out, err := h.uc.SetQuantity(c.Context(), GetActor(c), c.Params("cid"), c.Params("pid"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// RemoveProduct godoc
// @Summary      Quitar la entrada completa de un producto
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID del carrito"
// @Param        pid  path  string  true  "ID del producto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid}/product/{pid} [delete]
func (h *CartHandler) RemoveProduct(c *fiber.Ctx) error {
	out, err := h.uc.RemoveProduct(c.Context(), GetActor(c), c.Params("cid"), c.Params("pid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// Replace godoc
// @Summary      Reemplazar el contenido completo del carrito (all-or-nothing)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cid   path  string  true  "ID del carrito"
// @Param        body  body  dto.ReplaceCartRequest  true  "Lista completa {product, quantity}"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid} [put]
func (h *CartHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceCartRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return respondError(c, domain.Validation(err.Error()))
	}
	out, err := h.uc.Replace(c.Context(), GetActor(c), c.Params("cid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID del carrito"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid}/products [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.Context(), GetActor(c), c.Params("cid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID del carrito"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{cid} [delete]
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("cid")); err != nil {
		return respondError(c, err)
	}
	return respondPayload(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
