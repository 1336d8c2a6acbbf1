package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// UsersRepository persists the local copy of directory accounts.
type UsersRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUsersRepository creates a users repository.
func NewUsersRepository(db *sql.DB, logger *zap.Logger) *UsersRepository {
	return &UsersRepository{db: db, logger: logger}
}

const userColumns = `
	id::text,
	username,
	name,
	email,
	distinguishedname,
	department,
	position,
	role,
	status,
	created_at,
	updated_at
`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var name, email, dn, department, position, status sql.NullString

	err := row.Scan(
		&u.ID,
		&u.Username,
		&name,
		&email,
		&dn,
		&department,
		&position,
		&u.Role,
		&status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Name = name.String
	u.Email = email.String
	u.DistinguishedName = dn.String
	u.Department = department.String
	u.Position = position.String
	u.Status = status.String
	return &u, nil
}

// GetUser returns one user, or nil when it does not exist.
func (r *UsersRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername returns one user by account name, or nil.
func (r *UsersRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// UpsertByUsername creates the local user row on first login and
// refreshes the directory attributes afterwards. Role and status are
// never touched on update, admins manage those locally.
func (r *UsersRepository) UpsertByUsername(ctx context.Context, u *models.User) (string, error) {
	query := `
		INSERT INTO users (username, name, email, distinguishedname, department, position, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			distinguishedname = EXCLUDED.distinguishedname,
			department = EXCLUDED.department,
			position = EXCLUDED.position,
			updated_at = NOW()
		RETURNING id::text
	`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		u.Username,
		nullIfEmpty(u.Name),
		nullIfEmpty(u.Email),
		nullIfEmpty(u.DistinguishedName),
		nullIfEmpty(u.Department),
		nullIfEmpty(u.Position),
		u.Role,
		u.Status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to upsert user: %w", err)
	}

	r.logger.Debug("upserted user", zap.String("user_id", id), zap.String("username", u.Username))
	return id, nil
}
