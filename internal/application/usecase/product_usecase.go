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

// ProductUseCase casos de uso del catálogo de productos. La autorización
// se resuelve aquí con la política pura; los handlers solo aportan el
// actor autenticado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Solo admin o premium verificado; el creador
// premium queda como dueño. CreationError si faltan campos o los valores
// no tipan; Conflict si el code ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !policy.CanCreateProduct(actor) {
		return nil, domain.Forbidden("no puede crear productos")
	}
	if in.Title == "" || in.Code == "" {
		return nil, domain.Creation("title y code son requeridos")
	}
	if !in.Price.IsPositive() {
		return nil, domain.Creation("price debe ser mayor que cero")
	}
	if in.Stock < 0 {
		return nil, domain.Creation("stock no puede ser negativo")
	}
	if existing, err := uc.repo.GetByCode(ctx, in.Code); err != nil {
		return nil, domain.Internal(err)
	} else if existing != nil {
		return nil, domain.Conflict("ya existe un producto con code " + in.Code)
	}

	thumbnail := in.Thumbnail
	if thumbnail == "" {
		thumbnail = entity.DefaultThumbnail
	}
	var ownerID *string
	if actor.Role == entity.RolePremium {
		id := actor.ID
		ownerID = &id
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Thumbnail:   thumbnail,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.Internal(err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. NotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if product == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	return toProductResponse(product), nil
}

// Update aplica un patch parcial sobre un producto: los campos en nil
// conservan su valor anterior. Admin o premium dueño; el veredicto de rol
// se evalúa antes de tocar persistencia para no revelar existencia.
func (uc *ProductUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !policy.RoleCanMutateProducts(actor) {
		return nil, domain.Forbidden("no puede modificar productos")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if product == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	if !policy.CanMutateProduct(actor, product.OwnerID) {
		return nil, domain.Forbidden("solo el dueño o un admin pueden modificar este producto")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.Validation("title no puede quedar vacío")
		}
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Code != nil && *in.Code != product.Code {
		if *in.Code == "" {
			return nil, domain.Validation("code no puede quedar vacío")
		}
		other, err := uc.repo.GetByCode(ctx, *in.Code)
		if err != nil {
			return nil, domain.Internal(err)
		}
		if other != nil {
			return nil, domain.Conflict("ya existe un producto con code " + *in.Code)
		}
		product.Code = *in.Code
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.Validation("price debe ser mayor que cero")
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.Validation("stock no puede ser negativo")
		}
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Thumbnail != nil {
		product.Thumbnail = *in.Thumbnail
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, domain.Internal(err)
	}
	return toProductResponse(product), nil
}

// Delete borra un producto en duro. Misma regla de autorización que
// Update. Un segundo delete sobre el mismo id devuelve NotFound. Las
// entradas de carrito que lo referencien no se tocan: resuelven a
// "producto ya no existe" en la lectura del carrito.
func (uc *ProductUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !policy.RoleCanMutateProducts(actor) {
		return domain.Forbidden("no puede eliminar productos")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Internal(err)
	}
	if product == nil {
		return domain.NotFound("producto no encontrado")
	}
	if !policy.CanMutateProduct(actor, product.OwnerID) {
		return domain.Forbidden("solo el dueño o un admin pueden eliminar este producto")
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return domain.Internal(err)
	}
	if !deleted {
		return domain.NotFound("producto no encontrado")
	}
	return nil
}

// List lista el catálogo paginado. ValidationError si la página no es un
// entero positivo; una página sin resultados es lista vacía, no error.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if page.Page < 0 || page.Limit < 0 {
		return nil, domain.Validation("page debe ser un entero positivo")
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, domain.Internal(err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Code:        p.Code,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Thumbnail:   p.Thumbnail,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
