package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

var _ usecase.CartTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCart inicia una transacción, bloquea la fila del carrito (FOR
// UPDATE) y ejecuta fn con repos atados a la tx; Commit si fn retorna
// nil, Rollback en cualquier otro caso. Con el lock tomado, la validación
// y la escritura del reemplazo masivo son una unidad: ninguna otra
// mutación del mismo carrito puede intercalarse.
func (r *TxRunner) RunCart(ctx context.Context, cartID string, fn func(
	carts repository.CartRepository,
	products repository.ProductRepository,
) error) error {
	if !validID(cartID) {
		return domain.NotFound("carrito no encontrado")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM carts WHERE id = $1 FOR UPDATE`, cartID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("carrito no encontrado")
		}
		return fmt.Errorf("lock cart: %w", err)
	}

	if err := fn(NewCartRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
