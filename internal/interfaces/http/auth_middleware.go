package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/policy"
	"github.com/andreshreposo/ecommerce-api/pkg/jwt"
)

// Locals keys para el actor autenticado en Fiber.
const (
	localActor  = "actor"
	localCartID = "cart_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja en c.Locals el actor
// {id, rol, verificación premium} y su carrito. El núcleo nunca vuelve a
// tocar el token: consume el actor explícito.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(localActor, policy.Actor{
			ID:              id.UserID,
			Role:            id.Role,
			PremiumVerified: id.PremiumVerified,
		})
		c.Locals(localCartID, id.CartID)
		return c.Next()
	}
}

// RequireRole autoriza el acceso a los roles indicados. Debe usarse
// DESPUÉS de AuthMiddleware. Token sin rol responde 401; rol no permitido
// responde 403 con el error clasificado Forbidden.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.Role == "" {
			return unauthorized(c, "MISSING_ROLE", "el token no incluye rol")
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return respondError(c, domain.Forbidden("rol sin permiso para esta ruta"))
	}
}

// GetActor devuelve el actor autenticado del contexto (después del
// middleware de auth).
func GetActor(c *fiber.Ctx) policy.Actor {
	v := c.Locals(localActor)
	if v == nil {
		return policy.Actor{}
	}
	a, _ := v.(policy.Actor)
	return a
}

// GetCartID devuelve el carrito del actor autenticado.
func GetCartID(c *fiber.Ctx) string {
	v := c.Locals(localCartID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// unauthorized responde 401 con un código de transporte. La falla de
// autenticación es previa a la taxonomía de dominio (la verificación de
// credenciales es colaboración externa), así que no lleva código numérico.
func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  fiber.Map{"kind": code, "message": message},
	})
}
