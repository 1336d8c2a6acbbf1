package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roosych/contactsbook/internal/directory"
	"github.com/roosych/contactsbook/internal/models"
)

type MockContacts struct {
	mock.Mock
}

func (m *MockContacts) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContacts) CreateContact(ctx context.Context, c *models.Contact) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockContacts) UpdateContact(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContacts) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContacts) FindByPhone(ctx context.Context, scope models.Scope, number string, excludeID string) (*models.Contact, error) {
	args := m.Called(ctx, scope, number, excludeID)
	if c := args.Get(0); c != nil {
		return c.(*models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContacts) ListByScope(ctx context.Context, scope models.Scope, search string, limit, offset int) ([]models.Contact, error) {
	args := m.Called(ctx, scope, search, limit, offset)
	if c := args.Get(0); c != nil {
		return c.([]models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBooks struct {
	mock.Mock
}

func (m *MockBooks) GetBookByID(ctx context.Context, id string) (*models.ContactBook, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.ContactBook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBooks) GetBookByDepartmentOU(ctx context.Context, ou string) (*models.ContactBook, error) {
	args := m.Called(ctx, ou)
	if b := args.Get(0); b != nil {
		return b.(*models.ContactBook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBooks) CreateBook(ctx context.Context, b *models.ContactBook) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func (m *MockBooks) ListBooks(ctx context.Context) ([]models.ContactBook, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]models.ContactBook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBooks) GetGrant(ctx context.Context, userID, bookID string) (*models.BookGrant, error) {
	args := m.Called(ctx, userID, bookID)
	if g := args.Get(0); g != nil {
		return g.(*models.BookGrant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBooks) ListGrantedBookIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if ids := args.Get(0); ids != nil {
		return ids.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBooks) ReplaceGrants(ctx context.Context, userID string, grants map[string]bool) error {
	args := m.Called(ctx, userID, grants)
	return args.Error(0)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) UpsertByUsername(ctx context.Context, u *models.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Authenticate(username, password string) (*directory.Account, error) {
	args := m.Called(username, password)
	if a := args.Get(0); a != nil {
		return a.(*directory.Account), args.Error(1)
	}
	return nil, args.Error(1)
}
