package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andreshreposo/ecommerce-api/internal/domain"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
	"github.com/andreshreposo/ecommerce-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, first_name, last_name, age, password_hash, role, cart_id,
	doc_identification, doc_proof_of_address, doc_proof_of_account, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo. Conflict si el email ya existe.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.Age, u.PasswordHash, u.Role, u.CartID,
		u.Documents.Identification, u.Documents.ProofOfAddress, u.Documents.ProofOfAccount,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("el email ya está registrado")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe o el id está
// malformado.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Age, &u.PasswordHash, &u.Role, &u.CartID,
		&u.Documents.Identification, &u.Documents.ProofOfAddress, &u.Documents.ProofOfAccount,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Age, &u.PasswordHash,
			&u.Role, &u.CartID, &u.Documents.Identification, &u.Documents.ProofOfAddress,
			&u.Documents.ProofOfAccount, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRole muta únicamente el campo role. Devuelve false si el id no
// existe.
func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`,
		id, role,
	)
	if err != nil {
		return false, fmt.Errorf("update user role: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateDocuments muta únicamente los flags de documentación.
func (r *UserRepo) UpdateDocuments(ctx context.Context, id string, docs entity.Documents) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE users
		 SET doc_identification = $2, doc_proof_of_address = $3, doc_proof_of_account = $4, updated_at = now()
		 WHERE id = $1`,
		id, docs.Identification, docs.ProofOfAddress, docs.ProofOfAccount,
	)
	if err != nil {
		return false, fmt.Errorf("update user documents: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// PromoteByEmail sube el rol del usuario con ese email. No falla si el
// email no existe: el aprovisionamiento en el arranque es best effort.
func (r *UserRepo) PromoteByEmail(ctx context.Context, email, role string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE email = $1`,
		email, role,
	)
	if err != nil {
		return fmt.Errorf("promote user by email: %w", err)
	}
	return nil
}
