package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// Login verifies the credentials against the directory, refreshes the
// local account row and makes sure the user's department book exists.
// The local role and status survive the refresh; the directory never
// overrides them.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	if s.dir == nil {
		return nil, ErrDirectoryUnavailable
	}

	account, err := s.dir.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:          account.Username,
		Name:              account.DisplayName,
		Email:             account.Email,
		DistinguishedName: account.DistinguishedName,
		Department:        account.Department,
		Position:          account.Position,
		Role:              models.RoleUser,
		Status:            "active",
	}
	id, err := s.users.UpsertByUsername(ctx, u)
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored role and status, not the
	// defaults used on first insert.
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if _, err := s.DefaultBook(ctx, user); err != nil && err != ErrNoDefaultBook {
		s.logger.Warn("failed to ensure department book",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username))
	return user, nil
}
