package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
	"github.com/roosych/contactsbook/internal/phone"
)

// ContactInput carries the editable contact fields from a form.
type ContactInput struct {
	Name         string
	Organization string
	Phone1       string
	Phone2       string
}

// normalize canonicalizes both phone slots. On manual entry a phone
// that cannot be normalized is a hard, field-scoped validation failure.
// Phone1 is populated preferentially and the slots must stay distinct.
func (in *ContactInput) normalize() error {
	slots := []struct {
		field string
		value *string
	}{
		{"phone1", &in.Phone1},
		{"phone2", &in.Phone2},
	}

	for _, slot := range slots {
		if *slot.value == "" {
			continue
		}
		canonical := phone.Normalize(*slot.value)
		if canonical == "" {
			return &FieldError{Field: slot.field, Reason: "not a dialable phone number"}
		}
		*slot.value = canonical
	}

	if in.Phone1 == "" && in.Phone2 != "" {
		in.Phone1, in.Phone2 = in.Phone2, ""
	}
	if in.Phone2 != "" && in.Phone2 == in.Phone1 {
		return &FieldError{Field: "phone2", Reason: "duplicates the first phone number"}
	}
	return nil
}

// CreateContact validates and persists a manually entered contact.
func (s *Service) CreateContact(ctx context.Context, userID string, scope models.Scope, in ContactInput) (*models.Contact, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if in.Name == "" && in.Phone1 == "" {
		return nil, &FieldError{Field: "name", Reason: "a name or a phone number is required"}
	}

	field, err := s.deduper.CheckUnique(ctx, scope, in.Phone1, in.Phone2, "")
	if err != nil {
		return nil, err
	}
	if field != "" {
		return nil, &FieldError{Field: field, Reason: "a contact with this number already exists in this book"}
	}

	c := &models.Contact{
		Name:         in.Name,
		Organization: in.Organization,
		Phone1:       in.Phone1,
		Phone2:       in.Phone2,
		UserID:       userID,
	}
	scope.Apply(c)

	id, err := s.contacts.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

// EditContact validates and applies a manual edit. Only the contact's
// creator may edit it; the last editor is recorded.
func (s *Service) EditContact(ctx context.Context, user *models.User, contactID string, in ContactInput) (*models.Contact, error) {
	contact, err := s.contacts.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	if !s.policy.CanEdit(user, contact) {
		return nil, ErrForbidden
	}

	if err := in.normalize(); err != nil {
		return nil, err
	}

	field, err := s.deduper.CheckUnique(ctx, contact.Scope(), in.Phone1, in.Phone2, contact.ID)
	if err != nil {
		return nil, err
	}
	if field != "" {
		return nil, &FieldError{Field: field, Reason: "a contact with this number already exists in this book"}
	}

	contact.Name = in.Name
	contact.Organization = in.Organization
	contact.Phone1 = in.Phone1
	contact.Phone2 = in.Phone2
	contact.UpdatedBy = user.ID

	if err := s.contacts.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a contact after a policy check. Fail-closed:
// any refusal leaves the row untouched.
func (s *Service) DeleteContact(ctx context.Context, user *models.User, contactID string) error {
	contact, err := s.contacts.GetContact(ctx, contactID)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrNotFound
	}

	ok, err := s.policy.CanDelete(ctx, user, contact)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Info("delete refused",
			zap.String("user_id", user.ID),
			zap.String("contact_id", contactID))
		return ErrForbidden
	}

	return s.contacts.DeleteContact(ctx, contactID)
}

// minSearchLen mirrors the form-side rule: shorter search terms are
// ignored rather than rejected.
const minSearchLen = 3

// ListContacts returns contacts visible to the user in the given scope.
func (s *Service) ListContacts(ctx context.Context, user *models.User, scope models.Scope, search string, limit, offset int) ([]models.Contact, error) {
	if scope.IsPersonal() {
		if scope.UserID != user.ID {
			return nil, ErrForbidden
		}
	} else {
		ok, err := s.canAccessBook(ctx, user, scope.BookID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}

	if len(search) < minSearchLen {
		search = ""
	}
	return s.contacts.ListByScope(ctx, scope, search, limit, offset)
}
