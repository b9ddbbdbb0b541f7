package usecase_test

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Reproducen el contrato
// documentado en repository: lecturas (nil, nil) en ausencia, primitivas
// de entrada atómicas, reemplazo completo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID  map[string]*entity.Product
	order []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Code == p.Code {
			return domain.Conflict("ya existe un producto con code " + p.Code)
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		cp := *r.byID[r.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *fakeProductRepo) MissingIDs(_ context.Context, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if _, ok := r.byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

type fakeCartRepo struct {
	carts    map[string]*entity.Cart
	products *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart), products: products}
}

func (r *fakeCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	r.carts[cart.ID] = &entity.Cart{ID: cart.ID, CreatedAt: cart.CreatedAt, UpdatedAt: cart.UpdatedAt}
	return nil
}

func (r *fakeCartRepo) GetByID(_ context.Context, id string) (*entity.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, nil
	}
	// Resolución de productos a la lectura: entradas stale con Product nil.
	out := &entity.Cart{ID: cart.ID, CreatedAt: cart.CreatedAt, UpdatedAt: cart.UpdatedAt}
	for _, it := range cart.Items {
		resolved := entity.CartItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := r.products.byID[it.ProductID]; ok {
			cp := *p
			resolved.Product = &cp
		}
		out.Items = append(out.Items, resolved)
	}
	return out, nil
}

func (r *fakeCartRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.carts[id]
	return ok, nil
}

func (r *fakeCartRepo) AddItem(_ context.Context, cartID, productID string) error {
	cart := r.carts[cartID]
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			return nil
		}
	}
	cart.Items = append(cart.Items, entity.CartItem{ProductID: productID, Quantity: 1})
	return nil
}

func (r *fakeCartRepo) SetItemQuantity(_ context.Context, cartID, productID string, quantity int) (bool, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, cartID, productID string) (bool, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCartRepo) ReplaceItems(_ context.Context, cartID string, entries []repository.ReplaceEntry) error {
	cart := r.carts[cartID]
	cart.Items = nil
	for _, e := range entries {
		cart.Items = append(cart.Items, entity.CartItem{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	return nil
}

func (r *fakeCartRepo) Clear(_ context.Context, cartID string) (bool, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return false, nil
	}
	cart.Items = nil
	return true, nil
}

func (r *fakeCartRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.carts[id]; !ok {
		return false, nil
	}
	delete(r.carts, id)
	return true, nil
}

// fakeTxRunner emula el lock de fila: el carrito debe existir antes de
// ejecutar fn, y fn recibe los mismos repos (la atomicidad real la prueba
// el contrato all-or-nothing del caso de uso).
type fakeTxRunner struct {
	carts    *fakeCartRepo
	products *fakeProductRepo
}

func (tx *fakeTxRunner) RunCart(ctx context.Context, cartID string, fn func(
	carts repository.CartRepository,
	products repository.ProductRepository,
) error) error {
	exists, _ := tx.carts.Exists(ctx, cartID)
	if !exists {
		return domain.NotFound("carrito no encontrado")
	}
	return fn(tx.carts, tx.products)
}

type fakeUserRepo struct {
	byID  map[string]*entity.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.Conflict("el email ya está registrado")
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		cp := *r.byID[r.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id, role string) (bool, error) {
	u, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func (r *fakeUserRepo) UpdateDocuments(_ context.Context, id string, docs entity.Documents) (bool, error) {
	u, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	u.Documents = docs
	return true, nil
}

func (r *fakeUserRepo) PromoteByEmail(ctx context.Context, email, role string) error {
	for _, u := range r.byID {
		if u.Email == email {
			u.Role = role
			return nil
		}
	}
	return nil
}
