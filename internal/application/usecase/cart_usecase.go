package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/policy"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

// CartUseCase motor de carritos: alta incremental, edición de cantidades,
// reemplazo all-or-nothing y vaciado. "Agregar al carrito" y "editar el
// contenido" son entradas distintas a propósito: la primera es un
// incremento unitario repetible, la segunda un reemplazo masivo atómico.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	tx       CartTxRunner
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository, tx CartTxRunner) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, tx: tx}
}

// Create crea un carrito vacío. Siempre tiene éxito.
func (uc *CartUseCase) Create(ctx context.Context, actor policy.Actor) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	now := time.Now()
	cart := &entity.Cart{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := uc.carts.Create(ctx, cart); err != nil {
		return nil, domain.Internal(err)
	}
	return toCartResponse(cart), nil
}

// GetByID devuelve el carrito con entradas resueltas y total. NotFound si
// no existe.
func (uc *CartUseCase) GetByID(ctx context.Context, id string) (*dto.CartResponse, error) {
	cart, err := uc.carts.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if cart == nil {
		return nil, domain.NotFound("carrito no encontrado")
	}
	return toCartResponse(cart), nil
}

// AddProduct suma una unidad del producto al carrito: si ya hay entrada
// incrementa la cantidad en 1, si no la crea con cantidad 1. El upsert es
// atómico: dos agregados concurrentes del mismo par se reflejan ambos.
func (uc *CartUseCase) AddProduct(ctx context.Context, actor policy.Actor, cartID, productID string) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	if err := uc.ensureCartAndProduct(ctx, cartID, productID); err != nil {
		return nil, err
	}
	if err := uc.carts.AddItem(ctx, cartID, productID); err != nil {
		return nil, domain.Internal(err)
	}
	return uc.GetByID(ctx, cartID)
}

// SetQuantity fija la cantidad de una entrada existente. ValidationError
// si quantity <= 0 (nunca se recorta ni se elimina en silencio); NotFound
// si falta carrito, producto o entrada.
func (uc *CartUseCase) SetQuantity(ctx context.Context, actor policy.Actor, cartID, productID string, quantity int) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	if quantity <= 0 {
		return nil, domain.Validation("quantity debe ser un entero positivo")
	}
	if err := uc.ensureCartAndProduct(ctx, cartID, productID); err != nil {
		return nil, err
	}
	updated, err := uc.carts.SetItemQuantity(ctx, cartID, productID, quantity)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !updated {
		return nil, domain.NotFound("el producto no está en el carrito")
	}
	return uc.GetByID(ctx, cartID)
}

// RemoveProduct elimina la entrada completa del producto (no decrementa).
// NotFound si falta el carrito o la entrada.
func (uc *CartUseCase) RemoveProduct(ctx context.Context, actor policy.Actor, cartID, productID string) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	exists, err := uc.carts.Exists(ctx, cartID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !exists {
		return nil, domain.NotFound("carrito no encontrado")
	}
	removed, err := uc.carts.RemoveItem(ctx, cartID, productID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !removed {
		return nil, domain.NotFound("el producto no está en el carrito")
	}
	return uc.GetByID(ctx, cartID)
}

// Replace sustituye la lista completa de entradas del carrito. Valida el
// lote entero antes de escribir: cada par debe referenciar un producto
// existente, con cantidad positiva y sin productos repetidos. Si una sola
// entrada es inválida no se aplica nada y el carrito queda intacto.
func (uc *CartUseCase) Replace(ctx context.Context, actor policy.Actor, cartID string, in dto.ReplaceCartRequest) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	entries := make([]repository.ReplaceEntry, 0, len(in.Items))
	seen := make(map[string]struct{}, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" {
			return nil, domain.Validation("cada entrada debe referenciar un producto")
		}
		if it.Quantity <= 0 {
			return nil, domain.Validation("quantity debe ser un entero positivo")
		}
		if _, dup := seen[it.ProductID]; dup {
			return nil, domain.Validation("producto repetido en la lista: " + it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
		entries = append(entries, repository.ReplaceEntry{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	err := uc.tx.RunCart(ctx, cartID, func(carts repository.CartRepository, products repository.ProductRepository) error {
		missing, err := products.MissingIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return domain.NotFound("producto no encontrado: " + missing[0])
		}
		return carts.ReplaceItems(ctx, cartID, entries)
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return uc.GetByID(ctx, cartID)
}

// Clear vacía el carrito (lista de entradas en cero). NotFound si el
// carrito no existe.
func (uc *CartUseCase) Clear(ctx context.Context, actor policy.Actor, cartID string) (*dto.CartResponse, error) {
	if !policy.CanMutateCart(actor) {
		return nil, domain.Forbidden("requiere autenticación")
	}
	cleared, err := uc.carts.Clear(ctx, cartID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !cleared {
		return nil, domain.NotFound("carrito no encontrado")
	}
	return uc.GetByID(ctx, cartID)
}

// Delete borra el carrito en duro. NotFound si no existe.
func (uc *CartUseCase) Delete(ctx context.Context, actor policy.Actor, cartID string) error {
	if !policy.CanMutateCart(actor) {
		return domain.Forbidden("requiere autenticación")
	}
	deleted, err := uc.carts.Delete(ctx, cartID)
	if err != nil {
		return domain.Internal(err)
	}
	if !deleted {
		return domain.NotFound("carrito no encontrado")
	}
	return nil
}

// ensureCartAndProduct verifica existencia de carrito y producto antes de
// una mutación puntual de entrada.
func (uc *CartUseCase) ensureCartAndProduct(ctx context.Context, cartID, productID string) error {
	exists, err := uc.carts.Exists(ctx, cartID)
	if err != nil {
		return domain.Internal(err)
	}
	if !exists {
		return domain.NotFound("carrito no encontrado")
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return domain.Internal(err)
	}
	if product == nil {
		return domain.NotFound("producto no encontrado")
	}
	return nil
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   toProductResponse(it.Product),
		})
	}
	return &dto.CartResponse{
		ID:        c.ID,
		Items:     items,
		Total:     c.Total(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
