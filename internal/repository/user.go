package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tylerhq/tyler-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const userColumns = `id, email, password_hash, full_name, phone, bio, created_at, updated_at`

// UserRepository handles account persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account and sets the generated ID on the struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, password_hash, full_name, phone, bio) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Email, user.PasswordHash, user.FullName, user.Phone, user.Bio)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByEmail retrieves an account by its email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves an account by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// UpdatePassword overwrites the stored password hash for an account.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id))
}

// UpdatePasswordByEmail overwrites the stored password hash looked up by
// email, for the forgot-password flow where no token is available.
func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE email = ?`, passwordHash, email))
}

// UpdateProfile overwrites the editable profile fields and returns the
// updated account. The affected-rows count is not consulted because MySQL
// reports zero for no-op updates; existence is checked by the re-read.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, fullName, phone, bio string) (*model.User, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET full_name = ?, phone = ?, bio = ? WHERE id = ?`,
		fullName, phone, bio, id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var phone, bio sql.NullString
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName,
		&phone, &bio, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Phone = phone.String
	user.Bio = bio.String
	return user, nil
}

func (r *UserRepository) checkAffected(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isDuplicateEntryError checks for a MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
