package usecase

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

// CartTxRunner ejecuta fn dentro de una transacción con la fila del
// carrito bloqueada, con repos atados a la tx. Devuelve domain.ErrNotFound
// si el carrito no existe. Lo usa replaceProducts para su validación
// all-or-nothing: o se valida todo y se aplica, o no se escribe nada.
type CartTxRunner interface {
	RunCart(ctx context.Context, cartID string, fn func(
		carts repository.CartRepository,
		products repository.ProductRepository,
	) error) error
}
