package service

import "errors"

var (
	// ErrNoCards means the uploaded blob contains no BEGIN:VCARD marker
	// at all; the import is aborted and nothing is persisted.
	ErrNoCards = errors.New("no vcard records found in file")

	// ErrForbidden is returned when the acting user lacks permission.
	// The operation is refused entirely, no partial mutation occurs.
	ErrForbidden = errors.New("operation not permitted")

	// ErrNotFound means the referenced contact or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoDefaultBook means the user's DN carries no department OU, so
	// no department book can be resolved for them.
	ErrNoDefaultBook = errors.New("user has no default contact book")

	// ErrDirectoryUnavailable means no directory client is configured.
	ErrDirectoryUnavailable = errors.New("directory integration not configured")
)

// FieldError is a validation failure scoped to a single input field,
// e.g. a phone that cannot be normalized or a duplicate number.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Reason }
