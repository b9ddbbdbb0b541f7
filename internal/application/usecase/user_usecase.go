package usecase

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

// UserUseCase ciclo de vida de rol del usuario: registro de documentación
// y promoción a premium. El rol nunca muta por actualización de perfil.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. NotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	return toUserResponse(user), nil
}

// List lista usuarios paginados. El gate de rol admin lo aplica el
// transporte (RequireRole).
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	if page.Page < 0 || page.Limit < 0 {
		return nil, domain.Validation("page debe ser un entero positivo")
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, domain.Internal(err)
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit},
	}, nil
}

// SetDocuments registra los flags de presencia que reporta el colaborador
// de subida de archivos. El merge es monotónico: un flag presente no se
// apaga por una subida posterior de otro documento.
func (uc *UserUseCase) SetDocuments(ctx context.Context, id string, in dto.DocumentsRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	docs := entity.Documents{
		Identification: user.Documents.Identification || in.Identification,
		ProofOfAddress: user.Documents.ProofOfAddress || in.ProofOfAddress,
		ProofOfAccount: user.Documents.ProofOfAccount || in.ProofOfAccount,
	}
	updated, err := uc.repo.UpdateDocuments(ctx, id, docs)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !updated {
		return nil, domain.NotFound("usuario no encontrado")
	}
	user.Documents = docs
	return toUserResponse(user), nil
}

// PromoteToPremium sube el rol user → premium. Precondición dura (fail
// closed): los tres documentos deben estar presentes aunque el caller ya
// lo haya verificado. Solo muta el campo role; el resto del usuario queda
// intacto. No hay democión.
func (uc *UserUseCase) PromoteToPremium(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	if user.Role != entity.RoleUser {
		return nil, domain.Validation("solo un usuario con rol user puede promocionarse a premium")
	}
	if !user.Documents.Complete() {
		return nil, domain.Validation("no ha terminado de procesar su documentación")
	}
	updated, err := uc.repo.UpdateRole(ctx, id, entity.RolePremium)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if !updated {
		return nil, domain.NotFound("usuario no encontrado")
	}
	user.Role = entity.RolePremium
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Role:      u.Role,
		CartID:    u.CartID,
		Documents: dto.DocumentsResponse{
			Identification: u.Documents.Identification,
			ProofOfAddress: u.Documents.ProofOfAddress,
			ProofOfAccount: u.Documents.ProofOfAccount,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
