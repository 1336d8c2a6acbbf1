package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// ContactsRepository persists contact rows.
type ContactsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContactsRepository creates a contacts repository.
func NewContactsRepository(db *sql.DB, logger *zap.Logger) *ContactsRepository {
	return &ContactsRepository{db: db, logger: logger}
}

const contactColumns = `
	id::text,
	name,
	organization,
	phone1,
	phone2,
	user_id::text,
	updated_by::text,
	is_personal,
	contact_book_id::text,
	created_at,
	updated_at
`

func scanContact(row interface{ Scan(...interface{}) error }) (*models.Contact, error) {
	var c models.Contact
	var name, organization, phone1, phone2, updatedBy, bookID sql.NullString

	err := row.Scan(
		&c.ID,
		&name,
		&organization,
		&phone1,
		&phone2,
		&c.UserID,
		&updatedBy,
		&c.IsPersonal,
		&bookID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Name = name.String
	c.Organization = organization.String
	c.Phone1 = phone1.String
	c.Phone2 = phone2.String
	c.UpdatedBy = updatedBy.String
	c.ContactBookID = bookID.String
	return &c, nil
}

// GetContact returns one contact, or nil when it does not exist.
func (r *ContactsRepository) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// CreateContact inserts a contact row and returns the generated id.
func (r *ContactsRepository) CreateContact(ctx context.Context, c *models.Contact) (string, error) {
	query := `
		INSERT INTO contacts (name, organization, phone1, phone2, user_id, is_personal, contact_book_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		nullIfEmpty(c.Name),
		nullIfEmpty(c.Organization),
		nullIfEmpty(c.Phone1),
		nullIfEmpty(c.Phone2),
		c.UserID,
		c.IsPersonal,
		nullIfEmpty(c.ContactBookID),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}

	r.logger.Debug("created contact",
		zap.String("contact_id", id),
		zap.String("scope", c.Scope().String()))
	return id, nil
}

// UpdateContact writes the mutable fields of a contact row.
func (r *ContactsRepository) UpdateContact(ctx context.Context, c *models.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2,
		    organization = $3,
		    phone1 = $4,
		    phone2 = $5,
		    updated_by = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		nullIfEmpty(c.Name),
		nullIfEmpty(c.Organization),
		nullIfEmpty(c.Phone1),
		nullIfEmpty(c.Phone2),
		nullIfEmpty(c.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// DeleteContact removes a contact row.
func (r *ContactsRepository) DeleteContact(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// FindByPhone looks up a contact in the given scope whose phone1 or
// phone2 equals the canonical number. excludeID skips the row being
// edited; pass "" to search all rows. Returns nil when nothing matches.
func (r *ContactsRepository) FindByPhone(ctx context.Context, scope models.Scope, number string, excludeID string) (*models.Contact, error) {
	var query string
	args := []interface{}{number}

	if scope.IsPersonal() {
		query = `SELECT ` + contactColumns + `
			FROM contacts
			WHERE user_id = $2 AND is_personal = TRUE AND (phone1 = $1 OR phone2 = $1)`
		args = append(args, scope.UserID)
	} else {
		query = `SELECT ` + contactColumns + `
			FROM contacts
			WHERE contact_book_id = $2 AND (phone1 = $1 OR phone2 = $1)`
		args = append(args, scope.BookID)
	}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}
	query += ` LIMIT 1`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by phone: %w", err)
	}
	return c, nil
}

// ListByScope returns contacts in a scope, newest first. search filters
// by name or phone substring when non-empty. limit <= 0 means no limit.
func (r *ContactsRepository) ListByScope(ctx context.Context, scope models.Scope, search string, limit, offset int) ([]models.Contact, error) {
	var query string
	var args []interface{}

	if scope.IsPersonal() {
		query = `SELECT ` + contactColumns + `
			FROM contacts
			WHERE user_id = $1 AND is_personal = TRUE`
		args = append(args, scope.UserID)
	} else {
		query = `SELECT ` + contactColumns + `
			FROM contacts
			WHERE contact_book_id = $1`
		args = append(args, scope.BookID)
	}

	if search != "" {
		query += fmt.Sprintf(` AND (name ILIKE $%d OR phone1 ILIKE $%d OR phone2 ILIKE $%d)`,
			len(args)+1, len(args)+1, len(args)+1)
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
