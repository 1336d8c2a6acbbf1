package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User mirrors the directory-backed account row. The directory owns the
// account lifecycle; this service reads identity and department
// attributes and keeps a local copy refreshed at login.
type User struct {
	ID                string
	Username          string
	Name              string
	Email             string
	DistinguishedName string
	Department        string
	Position          string
	Role              string // RoleAdmin or RoleUser
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsAdmin reports whether the user holds the global admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
