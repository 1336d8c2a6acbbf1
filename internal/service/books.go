package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/directory"
	"github.com/roosych/contactsbook/internal/models"
)

// DefaultBook resolves the user's department book, creating it on first
// use. The department key is the second OU of the user's DN; users
// whose DN carries no department get ErrNoDefaultBook.
func (s *Service) DefaultBook(ctx context.Context, user *models.User) (*models.ContactBook, error) {
	ou := directory.DepartmentOU(user.DistinguishedName)
	if ou == "" {
		return nil, ErrNoDefaultBook
	}

	book, err := s.books.GetBookByDepartmentOU(ctx, ou)
	if err != nil {
		return nil, err
	}
	if book != nil {
		return book, nil
	}

	book = &models.ContactBook{
		Name:         ou + " Contacts",
		DepartmentOU: ou,
		DNPattern:    user.DistinguishedName,
		Description:  fmt.Sprintf("Contact book for %s department", ou),
	}
	id, err := s.books.CreateBook(ctx, book)
	if err != nil {
		return nil, err
	}
	book.ID = id

	s.logger.Info("created department book",
		zap.String("book_id", id),
		zap.String("department_ou", ou))
	return book, nil
}

// AccessibleBooks returns the IDs of all shared books the user may
// read: the default department book plus every explicit grant. The
// result is cached when a cache is configured.
func (s *Service) AccessibleBooks(ctx context.Context, user *models.User) ([]string, error) {
	if s.booksCache != nil {
		if ids, ok := s.booksCache.Get(ctx, user.ID); ok {
			return ids, nil
		}
	}

	ids, err := s.books.ListGrantedBookIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if def, err := s.DefaultBook(ctx, user); err == nil {
		found := false
		for _, id := range ids {
			if id == def.ID {
				found = true
				break
			}
		}
		if !found {
			ids = append(ids, def.ID)
		}
	} else if err != ErrNoDefaultBook {
		return nil, err
	}

	if s.booksCache != nil {
		if err := s.booksCache.Put(ctx, user.ID, ids); err != nil {
			s.logger.Warn("failed to cache accessible books", zap.Error(err))
		}
	}
	return ids, nil
}

// canAccessBook reports whether the user may read the given book.
// Admins see every book.
func (s *Service) canAccessBook(ctx context.Context, user *models.User, bookID string) (bool, error) {
	if user.IsAdmin() {
		return true, nil
	}
	ids, err := s.AccessibleBooks(ctx, user)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == bookID {
			return true, nil
		}
	}
	return false, nil
}

// ListBooks returns every shared book. Admin only.
func (s *Service) ListBooks(ctx context.Context, actor *models.User) ([]models.ContactBook, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.books.ListBooks(ctx)
}

// SetUserBookAccess replaces a user's explicit grants with the given
// set, mapping book ID to the delete permission. The target's default
// department book is always retained regardless of the new set. Admin
// only.
func (s *Service) SetUserBookAccess(ctx context.Context, actor *models.User, targetUserID string, grants map[string]bool) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	target, err := s.users.GetUser(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	merged := make(map[string]bool, len(grants)+1)
	for bookID, canDelete := range grants {
		merged[bookID] = canDelete
	}
	if def, err := s.DefaultBook(ctx, target); err == nil {
		if _, ok := merged[def.ID]; !ok {
			merged[def.ID] = false
		}
	} else if err != ErrNoDefaultBook {
		return err
	}

	if err := s.books.ReplaceGrants(ctx, targetUserID, merged); err != nil {
		return err
	}

	if s.booksCache != nil {
		if err := s.booksCache.Invalidate(ctx, targetUserID); err != nil {
			s.logger.Warn("failed to invalidate books cache",
				zap.String("user_id", targetUserID),
				zap.Error(err))
		}
	}

	s.logger.Info("replaced book grants",
		zap.String("actor_id", actor.ID),
		zap.String("user_id", targetUserID),
		zap.Int("grants", len(merged)))
	return nil
}
