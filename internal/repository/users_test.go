package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

func setupUsersRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *UsersRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUsersRepository(db, zap.NewNop())
	return db, mock, repo
}

var userTestColumns = []string{
	"id", "username", "name", "email", "distinguishedname",
	"department", "position", "role", "status",
	"created_at", "updated_at",
}

func TestGetUserByUsername(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userTestColumns).
		AddRow("user-1", "rashad", "Rashad Aliyev", "rashad@corp.example",
			"CN=Rashad Aliyev,OU=Users,OU=Sales,DC=corp,DC=example",
			"Sales", "Manager", "user", "active", now, now)

	mock.ExpectQuery(`SELECT`).
		WithArgs("rashad").
		WillReturnRows(rows)

	u, err := repo.GetUserByUsername(context.Background(), "rashad")

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "Rashad Aliyev", u.Name)
	assert.Equal(t, "Sales", u.Department)
	assert.False(t, u.IsAdmin())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserNotFound(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetUser(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpsertByUsername(t *testing.T) {
	db, mock, repo := setupUsersRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("rashad", "Rashad Aliyev", "rashad@corp.example",
			"CN=Rashad Aliyev,OU=Users,OU=Sales,DC=corp,DC=example",
			"Sales", "Manager", "user", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

	id, err := repo.UpsertByUsername(context.Background(), &models.User{
		Username:          "rashad",
		Name:              "Rashad Aliyev",
		Email:             "rashad@corp.example",
		DistinguishedName: "CN=Rashad Aliyev,OU=Users,OU=Sales,DC=corp,DC=example",
		Department:        "Sales",
		Position:          "Manager",
		Role:              models.RoleUser,
		Status:            "active",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
