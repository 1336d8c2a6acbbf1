package models

// ScopeKind discriminates the two contact visibility boundaries.
type ScopeKind int

const (
	ScopePersonal ScopeKind = iota
	ScopeGroup
)

// Scope identifies where a contact is visible: a single user's personal
// list or a department's shared book. It replaces the implicit
// is_personal/contact_book_id pairing at the storage layer with an
// explicit tagged value threaded through every call.
type Scope struct {
	Kind   ScopeKind
	UserID string // set when Kind == ScopePersonal
	BookID string // set when Kind == ScopeGroup
}

// PersonalScope scopes to one user's private list.
func PersonalScope(userID string) Scope {
	return Scope{Kind: ScopePersonal, UserID: userID}
}

// GroupScope scopes to a shared department book.
func GroupScope(bookID string) Scope {
	return Scope{Kind: ScopeGroup, BookID: bookID}
}

// IsPersonal reports whether the scope is a personal list.
func (s Scope) IsPersonal() bool { return s.Kind == ScopePersonal }

// Apply stamps the scope flags onto a contact row. The owner is set by
// the caller, not here.
func (s Scope) Apply(c *Contact) {
	if s.Kind == ScopePersonal {
		c.IsPersonal = true
		c.ContactBookID = ""
	} else {
		c.IsPersonal = false
		c.ContactBookID = s.BookID
	}
}

// String is used for logging only.
func (s Scope) String() string {
	if s.Kind == ScopePersonal {
		return "personal:" + s.UserID
	}
	return "book:" + s.BookID
}
