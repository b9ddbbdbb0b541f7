package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL
// (usable con pool o tx).
//
// cart_items.product_id NO es foreign key hacia products: borrar un
// producto no cascadea sobre los carritos; la entrada queda stale y la
// lectura la resuelve con Product en nil.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos.
// Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste un carrito vacío.
func (r *CartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO carts (id, created_at, updated_at) VALUES ($1, $2, $3)`,
		cart.ID, cart.CreatedAt, cart.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// GetByID devuelve el carrito con sus entradas en orden de alta y el
// producto de cada una resuelto vía LEFT JOIN. (nil, nil) si no existe.
func (r *CartRepo) GetByID(ctx context.Context, id string) (*entity.Cart, error) {
	if !validID(id) {
		return nil, nil
	}
	var cart entity.Cart
	err := r.q.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM carts WHERE id = $1`, id,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	query := `
		SELECT ci.product_id, ci.quantity,
		       p.id, p.title, p.description, p.code, p.price, p.stock,
		       p.category, p.thumbnail, p.owner_id, p.created_at, p.updated_at
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.position, ci.product_id`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.CartItem
		// Columnas del producto como punteros: el LEFT JOIN las deja en
		// NULL cuando la entrada quedó stale.
		var (
			pid, title, description, code, category, thumbnail, ownerID *string
			price                                                       *decimal.Decimal
			stock                                                       *int
			createdAt, updatedAt                                        *time.Time
		)
		if err := rows.Scan(&it.ProductID, &it.Quantity,
			&pid, &title, &description, &code, &price, &stock,
			&category, &thumbnail, &ownerID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		if pid != nil {
			it.Product = &entity.Product{
				ID:          *pid,
				Title:       *title,
				Description: *description,
				Code:        *code,
				Price:       *price,
				Stock:       *stock,
				Category:    *category,
				Thumbnail:   *thumbnail,
				OwnerID:     ownerID,
				CreatedAt:   *createdAt,
				UpdatedAt:   *updatedAt,
			}
		}
		cart.Items = append(cart.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Exists verifica existencia del carrito.
func (r *CartRepo) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("cart exists: %w", err)
	}
	return exists, nil
}

// AddItem incrementa en 1 la cantidad de la entrada, creándola con
// cantidad 1 si no existe. Una sola sentencia: dos agregados concurrentes
// del mismo par carrito/producto se reflejan ambos, sin lost update.
func (r *CartRepo) AddItem(ctx context.Context, cartID, productID string) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity, position)
		VALUES ($1, $2, 1, (SELECT COALESCE(MAX(position), 0) + 1 FROM cart_items WHERE cart_id = $1))
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + 1`
	if _, err := r.q.Exec(ctx, query, cartID, productID); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

// SetItemQuantity fija la cantidad de una entrada existente con un UPDATE
// condicional. Devuelve false si la entrada no existe.
func (r *CartRepo) SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) (bool, error) {
	if !validID(cartID) || !validID(productID) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("set cart item quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// RemoveItem elimina la entrada completa. Devuelve false si no existía.
func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) (bool, error) {
	if !validID(cartID) || !validID(productID) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	)
	if err != nil {
		return false, fmt.Errorf("remove cart item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ReplaceItems sustituye la lista completa de entradas. Debe correr
// dentro de la transacción del TxRunner, con el carrito ya bloqueado.
func (r *CartRepo) ReplaceItems(ctx context.Context, cartID string, entries []repository.ReplaceEntry) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	for i, e := range entries {
		_, err := r.q.Exec(ctx,
			`INSERT INTO cart_items (cart_id, product_id, quantity, position) VALUES ($1, $2, $3, $4)`,
			cartID, e.ProductID, e.Quantity, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

// Clear vacía las entradas del carrito. Devuelve false si el carrito no
// existe.
func (r *CartRepo) Clear(ctx context.Context, cartID string) (bool, error) {
	exists, err := r.Exists(ctx, cartID)
	if err != nil || !exists {
		return false, err
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return false, fmt.Errorf("clear cart: %w", err)
	}
	return true, nil
}

// Delete borra el carrito en duro (las entradas caen por cascade).
// Devuelve false si no existía.
func (r *CartRepo) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete cart: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
