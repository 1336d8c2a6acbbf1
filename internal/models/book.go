package models

import "time"

// ContactBook is a department's shared phone book. One book exists per
// department OU; it is created lazily the first time a user from that
// department needs it.
type ContactBook struct {
	ID           string
	Name         string
	DepartmentOU string // unique department key from the directory DN
	DNPattern    string // distinguished name the book was derived from
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookGrant links a user to a contact book. CanDelete is the explicit
// per-user-per-book delete permission administered separately; plain
// membership (including the default department book) does not imply it.
type BookGrant struct {
	UserID        string
	ContactBookID string
	CanDelete     bool
	CreatedAt     time.Time
}
