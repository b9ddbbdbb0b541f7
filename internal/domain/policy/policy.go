// Package policy contiene la política de roles y ownership como funciones
// de decisión puras: sin I/O, sin estado, sin errores. Quien llama es
// responsable de traducir un veredicto negativo en domain.Forbidden.
package policy

import "github.com/andreshreposo/ecommerce-api/internal/domain/entity"

// Actor es la identidad autenticada que ejecuta una operación. La produce
// el middleware de sesión; el núcleo nunca verifica credenciales.
type Actor struct {
	ID              string
	Role            string
	PremiumVerified bool
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// CanCreateProduct permite crear productos a admin, o a premium con la
// documentación verificada. El creador premium queda como OwnerID del
// producto.
func CanCreateProduct(a Actor) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == entity.RolePremium && a.PremiumVerified
}

// RoleCanMutateProducts indica si el rol del actor podría, en algún caso,
// mutar o borrar un producto. Se evalúa ANTES de consultar persistencia:
// un rol que nunca pasaría recibe Forbidden sin revelar si el producto
// existe (precedencia Forbidden sobre NotFound).
func RoleCanMutateProducts(a Actor) bool {
	return a.IsAdmin() || a.Role == entity.RolePremium
}

// CanMutateProduct permite mutar o borrar un producto a admin (siempre,
// sin importar ownership) o al premium dueño del producto.
func CanMutateProduct(a Actor, ownerID *string) bool {
	if a.IsAdmin() {
		return true
	}
	if a.Role != entity.RolePremium || ownerID == nil {
		return false
	}
	return *ownerID == a.ID
}

// CanMutateCart permite operar sobre carritos a cualquier actor
// autenticado; no hay restricción de ownership sobre la identidad del
// carrito más allá de la autenticación.
func CanMutateCart(a Actor) bool {
	return a.ID != ""
}

// CanPromote permite ejecutar la promoción de rol solo a admin.
func CanPromote(a Actor) bool {
	return a.IsAdmin()
}
