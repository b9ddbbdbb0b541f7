package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
)

// statusForKind mapea la clase de error de dominio a status HTTP. Es la
// única pieza del sistema que conoce ambos mundos.
func statusForKind(k domain.Kind) int {
	switch k {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindValidation, domain.KindCreation:
		return fiber.StatusBadRequest
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError serializa un error ya clasificado. Cualquier error que
// llegue sin clasificar se envuelve como Internal antes de salir.
func respondError(c *fiber.Ctx, err error) error {
	de := domain.Internal(err)
	return c.Status(statusForKind(de.Kind)).JSON(dto.ErrorResponse{
		Status: "error",
		Error: dto.ErrorBody{
			Kind:    de.Kind.String(),
			Code:    de.Code,
			Message: de.Cause,
		},
	})
}

// respondPayload serializa un resultado exitoso con el envoltorio
// estándar {status, payload}.
func respondPayload(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(dto.SuccessResponse{Status: "success", Payload: payload})
}
