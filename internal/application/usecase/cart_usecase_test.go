package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/policy"
)

type cartFixture struct {
	uc       *usecase.CartUseCase
	products *fakeProductRepo
	carts    *fakeCartRepo
	prodUC   *usecase.ProductUseCase
}

func newCartFixture() *cartFixture {
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	tx := &fakeTxRunner{carts: carts, products: products}
	return &cartFixture{
		uc:       usecase.NewCartUseCase(carts, products, tx),
		products: products,
		carts:    carts,
		prodUC:   usecase.NewProductUseCase(products),
	}
}

func (f *cartFixture) producto(t *testing.T, code, price string) string {
	t.Helper()
	out, err := f.prodUC.Create(context.Background(), actorAdmin, dto.CreateProductRequest{
		Title: "Producto " + code,
		Code:  code,
		Price: decimal.RequireFromString(price),
		Stock: 5,
	})
	require.NoError(t, err)
	return out.ID
}

func (f *cartFixture) carrito(t *testing.T) string {
	t.Helper()
	out, err := f.uc.Create(context.Background(), actorUser)
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestCartCreate_NaceVacio(t *testing.T) {
	f := newCartFixture()

	out, err := f.uc.Create(context.Background(), actorUser)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero())
}

func TestCartCreate_SinActor_Forbidden(t *testing.T) {
	f := newCartFixture()

	_, err := f.uc.Create(context.Background(), policy.Actor{})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestCartGetByID_Inexistente_NotFound(t *testing.T) {
	f := newCartFixture()

	_, err := f.uc.GetByID(context.Background(), "no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct — incremento unitario repetible
// ──────────────────────────────────────────────────────────────────────────────

// Agregar n veces el mismo producto deja una sola entrada con cantidad n.
func TestCartAdd_NVecesAcumulaCantidadN(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	pid := f.producto(t, "P-1", "10.00")

	var out *dto.CartResponse
	var err error
	for i := 0; i < 4; i++ {
		out, err = f.uc.AddProduct(ctx, actorUser, cid, pid)
		require.NoError(t, err)
	}

	require.Len(t, out.Items, 1, "a lo sumo una entrada por producto")
	assert.Equal(t, 4, out.Items[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("40.00")))
}

func TestCartAdd_ProductoInexistente_NotFoundYCarritoIntacto(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)

	_, err := f.uc.AddProduct(ctx, actorUser, cid, "fantasma")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	out, err := f.uc.GetByID(ctx, cid)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "el fallo no debe dejar entrada alguna")
}

func TestCartAdd_CarritoInexistente_NotFound(t *testing.T) {
	f := newCartFixture()
	pid := f.producto(t, "P-2", "1.00")

	_, err := f.uc.AddProduct(context.Background(), actorUser, "no-existe", pid)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// SetQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestCartSetQuantity_FijaCantidad(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	pid := f.producto(t, "P-3", "2.50")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, pid)
	require.NoError(t, err)

	out, err := f.uc.SetQuantity(ctx, actorUser, cid, pid, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Items[0].Quantity)
}

// quantity <= 0 es ValidationError y el carrito queda exactamente igual:
// nunca se recorta a 1 ni se elimina la entrada en silencio.
func TestCartSetQuantity_NoPositiva_ValidationSinEfecto(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	pid := f.producto(t, "P-4", "2.50")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, pid)
	require.NoError(t, err)
	_, err = f.uc.SetQuantity(ctx, actorUser, cid, pid, 3)
	require.NoError(t, err)

	for _, q := range []int{0, -1, -99} {
		_, err = f.uc.SetQuantity(ctx, actorUser, cid, pid, q)
		assert.True(t, errors.Is(err, domain.ErrValidation), "quantity %d debe rechazarse", q)
	}

	out, err := f.uc.GetByID(ctx, cid)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity, "la cantidad previa debe conservarse")
}

func TestCartSetQuantity_EntradaInexistente_NotFound(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	pid := f.producto(t, "P-5", "1.00")

	// producto existe en catálogo pero no está en el carrito
	_, err := f.uc.SetQuantity(ctx, actorUser, cid, pid, 2)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveProduct — elimina la entrada completa
// ──────────────────────────────────────────────────────────────────────────────

func TestCartRemove_EliminaEntradaCompleta(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	pid := f.producto(t, "P-6", "1.00")

	// add, add, remove → vacío (no decrementa)
	_, err := f.uc.AddProduct(ctx, actorUser, cid, pid)
	require.NoError(t, err)
	_, err = f.uc.AddProduct(ctx, actorUser, cid, pid)
	require.NoError(t, err)

	out, err := f.uc.RemoveProduct(ctx, actorUser, cid, pid)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "remove quita la entrada entera, no una unidad")
}

func TestCartRemove_EntradaInexistente_NotFound(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)

	_, err := f.uc.RemoveProduct(ctx, actorUser, cid, "fantasma")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Replace — all-or-nothing
// ──────────────────────────────────────────────────────────────────────────────

func TestCartReplace_SustituyeContenidoCompleto(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "R-1", "10.00")
	p2 := f.producto(t, "R-2", "5.00")
	p3 := f.producto(t, "R-3", "1.00")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, p1)
	require.NoError(t, err)

	out, err := f.uc.Replace(ctx, actorUser, cid, dto.ReplaceCartRequest{
		Items: []dto.ReplaceItemRequest{
			{ProductID: p2, Quantity: 2},
			{ProductID: p3, Quantity: 5},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, p2, out.Items[0].ProductID)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.Equal(t, p3, out.Items[1].ProductID)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("15.00")))
}

// Una sola entrada inválida invalida el lote entero; el contenido previo
// queda intacto.
func TestCartReplace_UnProductoInexistente_NadaSeAplica(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "R-4", "10.00")
	p2 := f.producto(t, "R-5", "5.00")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, p1)
	require.NoError(t, err)

	_, err = f.uc.Replace(ctx, actorUser, cid, dto.ReplaceCartRequest{
		Items: []dto.ReplaceItemRequest{
			{ProductID: p2, Quantity: 1},
			{ProductID: "fantasma", Quantity: 1},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	out, err := f.uc.GetByID(ctx, cid)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el contenido previo debe sobrevivir al fallo")
	assert.Equal(t, p1, out.Items[0].ProductID)
}

func TestCartReplace_CantidadNoPositiva_Validation(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "R-6", "1.00")

	_, err := f.uc.Replace(ctx, actorUser, cid, dto.ReplaceCartRequest{
		Items: []dto.ReplaceItemRequest{{ProductID: p1, Quantity: 0}},
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCartReplace_ProductoRepetido_Validation(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "R-7", "1.00")

	_, err := f.uc.Replace(ctx, actorUser, cid, dto.ReplaceCartRequest{
		Items: []dto.ReplaceItemRequest{
			{ProductID: p1, Quantity: 1},
			{ProductID: p1, Quantity: 2},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCartReplace_ListaVacia_VaciaElCarrito(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "R-8", "1.00")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, p1)
	require.NoError(t, err)

	out, err := f.uc.Replace(ctx, actorUser, cid, dto.ReplaceCartRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCartReplace_CarritoInexistente_NotFound(t *testing.T) {
	f := newCartFixture()
	p1 := f.producto(t, "R-9", "1.00")

	_, err := f.uc.Replace(context.Background(), actorUser, "no-existe", dto.ReplaceCartRequest{
		Items: []dto.ReplaceItemRequest{{ProductID: p1, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clear / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCartClear_DejaListaVacia(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "C-1", "1.00")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, p1)
	require.NoError(t, err)

	out, err := f.uc.Clear(ctx, actorUser, cid)
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	// el carrito sigue existiendo
	_, err = f.uc.GetByID(ctx, cid)
	assert.NoError(t, err)
}

func TestCartDelete_SegundoDeleteNotFound(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)

	require.NoError(t, f.uc.Delete(ctx, actorUser, cid))

	err := f.uc.Delete(ctx, actorUser, cid)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Referencias stale — el producto se borra después de agregarse
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_ProductoBorrado_EntradaStaleFueraDelTotal(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	cid := f.carrito(t)
	p1 := f.producto(t, "S-1", "10.00")
	p2 := f.producto(t, "S-2", "3.00")

	_, err := f.uc.AddProduct(ctx, actorUser, cid, p1)
	require.NoError(t, err)
	_, err = f.uc.AddProduct(ctx, actorUser, cid, p2)
	require.NoError(t, err)

	require.NoError(t, f.prodUC.Delete(ctx, actorAdmin, p1))

	out, err := f.uc.GetByID(ctx, cid)
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "la entrada stale sigue listada")

	stale := out.Items[0]
	assert.Equal(t, p1, stale.ProductID)
	assert.Nil(t, stale.Product, "el detalle del producto borrado resuelve a nil")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("3.00")),
		"la entrada stale no suma al total")
}
