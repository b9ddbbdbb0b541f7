package repository

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
)

// ReplaceEntry es un par {producto, cantidad} del reemplazo masivo.
type ReplaceEntry struct {
	ProductID string
	Quantity  int
}

// CartRepository define el puerto de persistencia para Cart (DIP).
//
// Las mutaciones de una entrada son primitivas atómicas de una sola
// sentencia (upsert condicional), no read-then-write: dos AddItem
// concurrentes sobre el mismo par carrito/producto deben reflejarse ambos.
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	// GetByID devuelve el carrito con sus entradas en orden de alta y el
	// producto de cada entrada resuelto; las entradas cuyo producto fue
	// borrado vienen con Product en nil.
	GetByID(ctx context.Context, id string) (*entity.Cart, error)
	Exists(ctx context.Context, id string) (bool, error)
	// AddItem incrementa en 1 la cantidad de la entrada, creándola con
	// cantidad 1 si no existe. Upsert atómico.
	AddItem(ctx context.Context, cartID, productID string) error
	// SetItemQuantity fija la cantidad de una entrada existente. Devuelve
	// false si la entrada no existe. La validación quantity > 0 es del
	// caso de uso.
	SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) (bool, error)
	// RemoveItem elimina la entrada completa (no decrementa). Devuelve
	// false si la entrada no existía.
	RemoveItem(ctx context.Context, cartID, productID string) (bool, error)
	// ReplaceItems sustituye la lista completa de entradas. Corre dentro
	// de la transacción del TxRunner; nunca se invoca sin validar antes.
	ReplaceItems(ctx context.Context, cartID string, entries []ReplaceEntry) error
	Clear(ctx context.Context, cartID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
