// Package auth implementa registro y login. La emisión y verificación de
// tokens es colaboración externa (pkg/jwt + middleware); aquí solo se
// decide QUÉ claims viajan.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/policy"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
	"github.com/andreshreposo/ecommerce-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro (con carrito 1:1) y
// login.
type AuthUseCase struct {
	users  repository.UserRepository
	cartUC *usecase.CartUseCase
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, cartUC *usecase.CartUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cartUC: cartUC, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol user, hashea el password con bcrypt y
// le crea su carrito (cada usuario referencia exactamente un carrito).
// Conflict si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		return nil, domain.Creation("email, password y first_name son requeridos")
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if existing != nil {
		return nil, domain.Conflict("el email ya está registrado")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Internal(err)
	}

	// El carrito se crea con la identidad recién generada como actor.
	userID := uuid.New().String()
	cart, err := uc.cartUC.Create(ctx, policy.Actor{ID: userID, Role: entity.RoleUser})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           userID,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CartID:       cart.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, domain.Internal(err)
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite un JWT con la identidad del actor:
// id, rol, verificación premium y carrito.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Forbidden("credenciales inválidas")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:          user.ID,
		Role:            user.Role,
		PremiumVerified: user.PremiumVerified(),
		CartID:          user.CartID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
