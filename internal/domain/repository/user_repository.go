package repository

import (
	"context"

	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrConflict si el
	// email ya está registrado.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// UpdateRole muta únicamente el campo role. Devuelve false si el id
	// no existe.
	UpdateRole(ctx context.Context, id, role string) (bool, error)
	// UpdateDocuments muta únicamente los flags de documentación.
	UpdateDocuments(ctx context.Context, id string, docs entity.Documents) (bool, error)
	// PromoteByEmail sube a admin al usuario con ese email, si existe.
	// Aprovisionamiento fuera de banda (arranque), no expuesto por HTTP.
	PromoteByEmail(ctx context.Context, email, role string) error
}
