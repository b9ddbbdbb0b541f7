package repository

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando la entidad no existe; el caso de
// uso decide cómo clasificar la ausencia.
type ProductRepository interface {
	// Create persiste un producto nuevo. Devuelve domain.ErrConflict si el
	// code ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// Update reescribe la fila completa como unidad atómica; el merge
	// parcial campo a campo ocurre en el caso de uso.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Delete borra en duro. Devuelve false si el id no existía (un segundo
	// delete sobre el mismo id es NotFound, no idempotente).
	Delete(ctx context.Context, id string) (bool, error)
	// MissingIDs devuelve los ids del lote que NO existen en el catálogo.
	// Lo usa la validación all-or-nothing de replaceProducts.
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}
