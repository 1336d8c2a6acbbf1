// Package directory integrates with the corporate LDAP directory: it
// verifies user credentials and reads the attributes the contact book
// needs (distinguished name, department, display name).
package directory

import (
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/config"
)

// ErrInvalidCredentials means the account does not exist or the
// password bind was rejected. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid directory credentials")

// Account is the directory's view of an authenticated user.
type Account struct {
	Username          string
	DisplayName       string
	Email             string
	DistinguishedName string
	Department        string
	Position          string
}

// Client talks to the directory server.
type Client struct {
	cfg    *config.LDAPConfig
	logger *zap.Logger
}

// NewClient creates a directory client.
func NewClient(cfg *config.LDAPConfig, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// Authenticate binds with the service account, locates the user entry
// by account name and verifies the supplied password with a second bind
// as that entry. A fresh connection per call keeps bind state isolated.
func (c *Client) Authenticate(username, password string) (*Account, error) {
	conn, err := ldap.DialURL(c.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial directory: %w", err)
	}
	defer conn.Close()

	if err := conn.Bind(c.cfg.BindDN, c.cfg.BindPassword); err != nil {
		return nil, fmt.Errorf("service bind failed: %w", err)
	}

	req := ldap.NewSearchRequest(
		c.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		fmt.Sprintf("(&(objectClass=user)(sAMAccountName=%s))", ldap.EscapeFilter(username)),
		[]string{"displayName", "mail", "department", "title"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	if len(res.Entries) == 0 {
		return nil, ErrInvalidCredentials
	}

	entry := res.Entries[0]
	if err := conn.Bind(entry.DN, password); err != nil {
		c.logger.Info("directory bind rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	return &Account{
		Username:          username,
		DisplayName:       entry.GetAttributeValue("displayName"),
		Email:             entry.GetAttributeValue("mail"),
		DistinguishedName: entry.DN,
		Department:        entry.GetAttributeValue("department"),
		Position:          entry.GetAttributeValue("title"),
	}, nil
}
