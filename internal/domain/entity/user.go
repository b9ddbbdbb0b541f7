package entity

import "time"

// Roles válidos para User. El rol admin se aprovisiona fuera de banda
// (no existe operación de promoción a admin).
const (
	RoleUser    = "user"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// Documents son los flags de presencia de la documentación requerida para
// pasar a premium. Los produce el colaborador de subida de archivos; aquí
// solo se registra presencia, nunca contenido.
type Documents struct {
	Identification bool
	ProofOfAddress bool
	ProofOfAccount bool
}

// Complete indica si los tres documentos están presentes.
func (d Documents) Complete() bool {
	return d.Identification && d.ProofOfAddress && d.ProofOfAccount
}

// User representa un usuario del sistema. CartID referencia su carrito
// (1:1, creado en el registro). Role solo muta vía la operación de
// promoción, nunca por actualización genérica de perfil.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Age          int
	PasswordHash string
	Role         string
	CartID       string
	Documents    Documents
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PremiumVerified indica si el usuario puede operar como premium
// verificado (rol premium con documentación completa).
func (u *User) PremiumVerified() bool {
	return u.Role == RolePremium && u.Documents.Complete()
}
