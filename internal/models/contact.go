package models

import "time"

// Contact is a single phone-book entry. A contact lives either in one
// user's personal list or in a shared department book, never both.
// Phone numbers are stored in canonical form; Phone1 is filled
// preferentially and, when both slots are set, Phone1 != Phone2.
type Contact struct {
	ID            string
	Name          string // empty means not set
	Organization  string
	Phone1        string
	Phone2        string
	UserID        string // creator/owner
	UpdatedBy     string // last editor, empty if never edited
	IsPersonal    bool
	ContactBookID string // empty when personal (legacy rows may have neither)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Scope returns the visibility boundary this contact belongs to.
func (c *Contact) Scope() Scope {
	if c.IsPersonal {
		return PersonalScope(c.UserID)
	}
	return GroupScope(c.ContactBookID)
}
