// Package policy answers per-contact permission questions. Editing is
// creator-only for personal and group contacts alike; the historical
// membership-based rule for group contacts is deprecated and not
// supported.
package policy

import (
	"context"

	"github.com/roosych/contactsbook/internal/models"
)

// Grants looks up a user's explicit grant on a book.
type Grants interface {
	GetGrant(ctx context.Context, userID, bookID string) (*models.BookGrant, error)
}

// Policy decides edit and delete permissions.
type Policy struct {
	grants Grants
}

// New creates a policy backed by the given grant lookup.
func New(grants Grants) *Policy {
	return &Policy{grants: grants}
}

// CanEdit reports whether the user may edit the contact: only its
// creator may, regardless of scope.
func (p *Policy) CanEdit(user *models.User, contact *models.Contact) bool {
	return user.ID == contact.UserID
}

// CanDelete reports whether the user may delete the contact.
// Personal contacts (and legacy rows without a book): owner only.
// Group contacts: global admins, or holders of an explicit delete grant
// on the contact's book. Membership in the book, including it being the
// user's default department book, confers nothing on its own.
func (p *Policy) CanDelete(ctx context.Context, user *models.User, contact *models.Contact) (bool, error) {
	if contact.IsPersonal || contact.ContactBookID == "" {
		return contact.UserID == user.ID, nil
	}

	if user.IsAdmin() {
		return true, nil
	}

	grant, err := p.grants.GetGrant(ctx, user.ID, contact.ContactBookID)
	if err != nil {
		return false, err
	}
	return grant != nil && grant.CanDelete, nil
}
