package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roosych/contactsbook/internal/directory"
	"github.com/roosych/contactsbook/internal/models"
)

func TestLoginRefreshesAccountAndEnsuresBook(t *testing.T) {
	books := &MockBooks{}
	users := &MockUsers{}
	dir := &MockDirectory{}
	svc := newTestService(&MockContacts{}, books, users, Options{Directory: dir})
	expectSalesBook(books)

	dir.On("Authenticate", "rashad", "secret").Return(&directory.Account{
		Username:          "rashad",
		DisplayName:       "Rashad Aliyev",
		Email:             "rashad@corp.example",
		DistinguishedName: testDN,
		Department:        "Sales",
		Position:          "Manager",
	}, nil)

	users.On("UpsertByUsername", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "rashad" &&
			u.Name == "Rashad Aliyev" &&
			u.Role == models.RoleUser &&
			u.Status == "active"
	})).Return("u1", nil)

	// Stored row carries an admin role; the refresh must not demote it.
	stored := salesUser("u1")
	stored.Username = "rashad"
	stored.Role = models.RoleAdmin
	users.On("GetUser", mock.Anything, "u1").Return(stored, nil)

	user, err := svc.Login(context.Background(), "rashad", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	users.AssertExpectations(t)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := &MockUsers{}
	dir := &MockDirectory{}
	svc := newTestService(&MockContacts{}, &MockBooks{}, users, Options{Directory: dir})

	dir.On("Authenticate", "rashad", "wrong").Return(nil, directory.ErrInvalidCredentials)

	_, err := svc.Login(context.Background(), "rashad", "wrong")
	assert.ErrorIs(t, err, directory.ErrInvalidCredentials)
	users.AssertNotCalled(t, "UpsertByUsername", mock.Anything, mock.Anything)
}

func TestLoginWithoutDirectory(t *testing.T) {
	svc := newTestService(&MockContacts{}, &MockBooks{}, &MockUsers{}, Options{})

	_, err := svc.Login(context.Background(), "rashad", "secret")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}
