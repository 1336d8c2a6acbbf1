package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// DuplicateCheck is the answer to a pre-move duplicate probe.
type DuplicateCheck struct {
	HasDuplicate   bool
	GroupContactID string
}

// CheckDuplicate reports whether moving the personal contact into the
// user's default department book would collide with an existing group
// contact on either phone. The web layer uses it to ask the user which
// name to keep before committing the move.
func (s *Service) CheckDuplicate(ctx context.Context, user *models.User, contactID string) (*DuplicateCheck, error) {
	contact, err := s.contacts.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	if !contact.IsPersonal || contact.UserID != user.ID {
		return nil, ErrForbidden
	}

	book, err := s.DefaultBook(ctx, user)
	if err != nil {
		return nil, err
	}

	match, err := s.findGroupMatch(ctx, models.GroupScope(book.ID), contact)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return &DuplicateCheck{}, nil
	}
	return &DuplicateCheck{HasDuplicate: true, GroupContactID: match.ID}, nil
}

// MoveToGroup moves a personal contact into the user's default
// department book. When a group contact already holds one of the phone
// numbers the personal row is merged into it, filling only empty
// fields; nameChoice, when set, overrides the target's name. Otherwise
// the contact is copied into the book. The personal row is deleted
// afterwards in both paths. Returns the ID of the group row.
func (s *Service) MoveToGroup(ctx context.Context, user *models.User, contactID, nameChoice string) (string, error) {
	contact, err := s.contacts.GetContact(ctx, contactID)
	if err != nil {
		return "", err
	}
	if contact == nil {
		return "", ErrNotFound
	}
	if !contact.IsPersonal || contact.UserID != user.ID {
		return "", ErrForbidden
	}

	book, err := s.DefaultBook(ctx, user)
	if err != nil {
		return "", err
	}
	scope := models.GroupScope(book.ID)

	match, err := s.findGroupMatch(ctx, scope, contact)
	if err != nil {
		return "", err
	}

	var targetID string
	if match != nil {
		changed := false
		if nameChoice != "" && match.Name != nameChoice {
			match.Name = nameChoice
			changed = true
		} else if match.Name == "" && contact.Name != "" {
			match.Name = contact.Name
			changed = true
		}
		if match.Organization == "" && contact.Organization != "" {
			match.Organization = contact.Organization
			changed = true
		}
		for _, number := range []string{contact.Phone1, contact.Phone2} {
			if number == "" || number == match.Phone1 || number == match.Phone2 {
				continue
			}
			if match.Phone2 == "" {
				match.Phone2 = number
				changed = true
			}
		}
		if changed {
			match.UpdatedBy = user.ID
			if err := s.contacts.UpdateContact(ctx, match); err != nil {
				return "", err
			}
		}
		targetID = match.ID
	} else {
		copied := &models.Contact{
			Name:         contact.Name,
			Organization: contact.Organization,
			Phone1:       contact.Phone1,
			Phone2:       contact.Phone2,
			UserID:       user.ID,
		}
		if nameChoice != "" {
			copied.Name = nameChoice
		}
		scope.Apply(copied)

		targetID, err = s.contacts.CreateContact(ctx, copied)
		if err != nil {
			return "", err
		}
	}

	if err := s.contacts.DeleteContact(ctx, contact.ID); err != nil {
		return "", err
	}

	s.logger.Info("moved contact to department book",
		zap.String("user_id", user.ID),
		zap.String("contact_id", contact.ID),
		zap.String("group_contact_id", targetID),
		zap.Bool("merged", match != nil))
	return targetID, nil
}

// findGroupMatch probes the group scope with each of the contact's
// phone numbers in order.
func (s *Service) findGroupMatch(ctx context.Context, scope models.Scope, contact *models.Contact) (*models.Contact, error) {
	for _, number := range []string{contact.Phone1, contact.Phone2} {
		if number == "" {
			continue
		}
		match, err := s.contacts.FindByPhone(ctx, scope, number, "")
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil
}
