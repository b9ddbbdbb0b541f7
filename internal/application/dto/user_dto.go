package dto

import "time"

// RegisterRequest entrada del registro de usuario.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age" validate:"omitempty,min=0,max=150"`
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// DocumentsRequest flags de presencia que reporta el colaborador de subida
// de archivos. Solo presencia, nunca contenido.
type DocumentsRequest struct {
	Identification bool `json:"identification"`
	ProofOfAddress bool `json:"proof_of_address"`
	ProofOfAccount bool `json:"proof_of_account"`
}

// DocumentsResponse estado de documentación de un usuario.
type DocumentsResponse struct {
	Identification bool `json:"identification"`
	ProofOfAddress bool `json:"proof_of_address"`
	ProofOfAccount bool `json:"proof_of_account"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de password.
type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Age       int               `json:"age"`
	Role      string            `json:"role"`
	CartID    string            `json:"cart"`
	Documents DocumentsResponse `json:"documents"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios (solo admin).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
