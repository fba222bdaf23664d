package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearskyva/backoffice/internal/entity"
)

// Sentinel errors for admin profile lookups and writes.
var (
	ErrAdminUserNotFound = errors.New("admin user not found")
	ErrEmailDuplicate    = errors.New("email already exists")
)

// AdminUsersRepository declares persistence operations for admin profiles.
type AdminUsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	Insert(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error)
	List(ctx context.Context) ([]entity.AdminUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXAdminUsersRepository implements AdminUsersRepository with pgx.
type PGXAdminUsersRepository struct {
	pool pgxPool
}

// NewPGXAdminUsersRepository instantiates an admin users repository.
func NewPGXAdminUsersRepository(pool *pgxpool.Pool) *PGXAdminUsersRepository {
	return &PGXAdminUsersRepository{pool: pool}
}

const adminUserColumns = `id, identity_id, email, full_name, password_hash, role, must_change_password, created_at, updated_at`

func scanAdminUser(row pgx.Row) (*entity.AdminUser, error) {
	var user entity.AdminUser
	err := row.Scan(&user.ID, &user.IdentityID, &user.Email, &user.FullName, &user.PasswordHash, &user.Role, &user.MustChangePassword, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail fetches an admin profile by email if present.
func (r *PGXAdminUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email)

	user, err := scanAdminUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("query admin user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves an admin profile by identifier.
func (r *PGXAdminUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)

	user, err := scanAdminUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("query admin user by id: %w", err)
	}
	return user, nil
}

// Insert stores the profile row linked to a hosted identity.
func (r *PGXAdminUsersRepository) Insert(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
	if user == nil {
		return nil, fmt.Errorf("admin user payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO admin_users (identity_id, email, full_name, password_hash, role, must_change_password)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+adminUserColumns,
		user.IdentityID, user.Email, user.FullName, user.PasswordHash, user.Role, user.MustChangePassword)

	created, err := scanAdminUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert admin user: %w", err)
	}
	return created, nil
}

// List returns all admin profiles ordered by creation date (desc).
func (r *PGXAdminUsersRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminUserColumns+` FROM admin_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	var users []entity.AdminUser
	for rows.Next() {
		user, err := scanAdminUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin users: %w", err)
	}
	return users, nil
}

// Delete removes an admin profile by id.
func (r *PGXAdminUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminUserNotFound
	}
	return nil
}
