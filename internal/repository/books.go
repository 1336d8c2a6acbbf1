package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// BooksRepository persists contact books and per-user access grants.
type BooksRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBooksRepository creates a books repository.
func NewBooksRepository(db *sql.DB, logger *zap.Logger) *BooksRepository {
	return &BooksRepository{db: db, logger: logger}
}

const bookColumns = `
	id::text,
	name,
	department_ou,
	distinguishedname_pattern,
	description,
	created_at,
	updated_at
`

func scanBook(row interface{ Scan(...interface{}) error }) (*models.ContactBook, error) {
	var b models.ContactBook
	var pattern, description sql.NullString

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.DepartmentOU,
		&pattern,
		&description,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.DNPattern = pattern.String
	b.Description = description.String
	return &b, nil
}

// GetBookByID returns one book, or nil when it does not exist.
func (r *BooksRepository) GetBookByID(ctx context.Context, id string) (*models.ContactBook, error) {
	query := `SELECT ` + bookColumns + ` FROM contact_books WHERE id = $1`

	b, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact book: %w", err)
	}
	return b, nil
}

// GetBookByDepartmentOU returns the department's book, or nil.
func (r *BooksRepository) GetBookByDepartmentOU(ctx context.Context, ou string) (*models.ContactBook, error) {
	query := `SELECT ` + bookColumns + ` FROM contact_books WHERE department_ou = $1`

	b, err := scanBook(r.db.QueryRowContext(ctx, query, ou))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact book by department: %w", err)
	}
	return b, nil
}

// CreateBook inserts a book row and returns the generated id.
func (r *BooksRepository) CreateBook(ctx context.Context, b *models.ContactBook) (string, error) {
	query := `
		INSERT INTO contact_books (name, department_ou, distinguishedname_pattern, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		b.Name,
		b.DepartmentOU,
		nullIfEmpty(b.DNPattern),
		nullIfEmpty(b.Description),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create contact book: %w", err)
	}

	r.logger.Info("created contact book",
		zap.String("book_id", id),
		zap.String("department_ou", b.DepartmentOU))
	return id, nil
}

// ListBooks returns all books ordered by name.
func (r *BooksRepository) ListBooks(ctx context.Context) ([]models.ContactBook, error) {
	query := `SELECT ` + bookColumns + ` FROM contact_books ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact books: %w", err)
	}
	defer rows.Close()

	var books []models.ContactBook
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact book: %w", err)
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

// GetGrant returns the user's grant on a book, or nil when absent.
func (r *BooksRepository) GetGrant(ctx context.Context, userID, bookID string) (*models.BookGrant, error) {
	query := `
		SELECT user_id::text, contact_book_id::text, can_delete, created_at
		FROM user_contact_books
		WHERE user_id = $1 AND contact_book_id = $2
	`

	var g models.BookGrant
	err := r.db.QueryRowContext(ctx, query, userID, bookID).Scan(
		&g.UserID,
		&g.ContactBookID,
		&g.CanDelete,
		&g.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book grant: %w", err)
	}
	return &g, nil
}

// ListGrantedBookIDs returns the IDs of every book the user has been
// granted access to.
func (r *BooksRepository) ListGrantedBookIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT contact_book_id::text FROM user_contact_books WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list granted books: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan granted book id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceGrants synchronizes the user's grant set: existing grants are
// dropped and the supplied book-id -> can_delete map is written in one
// transaction.
func (r *BooksRepository) ReplaceGrants(ctx context.Context, userID string, grants map[string]bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin grants transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_contact_books WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear book grants: %w", err)
	}

	for bookID, canDelete := range grants {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_contact_books (user_id, contact_book_id, can_delete) VALUES ($1, $2, $3)`,
			userID, bookID, canDelete,
		)
		if err != nil {
			return fmt.Errorf("failed to insert book grant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit grants transaction: %w", err)
	}

	r.logger.Info("replaced book grants",
		zap.String("user_id", userID),
		zap.Int("grant_count", len(grants)))
	return nil
}
