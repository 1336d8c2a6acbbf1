// Package dedup decides, for one candidate contact and one scope,
// whether an existing row should absorb the candidate or a new row
// should be created. Import, manual create and manual edit all go
// through the same logic.
package dedup

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
)

// ContactStore is the slice of the contacts repository the deduper needs.
type ContactStore interface {
	FindByPhone(ctx context.Context, scope models.Scope, number string, excludeID string) (*models.Contact, error)
	CreateContact(ctx context.Context, c *models.Contact) (string, error)
	UpdateContact(ctx context.Context, c *models.Contact) error
}

// Action is the outcome of a Resolve call.
type Action int

const (
	Created Action = iota
	Merged
)

// Candidate carries the fields extracted for one incoming contact.
type Candidate struct {
	Name         string
	Organization string
	Phone1       string
	Phone2       string
	OwnerID      string
}

// Resolution reports what Resolve did and which row it touched.
type Resolution struct {
	Action    Action
	ContactID string
}

// Deduper resolves candidates against existing contacts in a scope.
type Deduper struct {
	store  ContactStore
	logger *zap.Logger
}

// New creates a deduper.
func New(store ContactStore, logger *zap.Logger) *Deduper {
	return &Deduper{store: store, logger: logger}
}

// Resolve finds an in-scope contact sharing a phone with the candidate
// and merges into it, or creates a new row. Merging only fills fields
// that are still empty on the target; populated fields are never
// overwritten and no row is created.
func (d *Deduper) Resolve(ctx context.Context, scope models.Scope, cand Candidate) (*Resolution, error) {
	var target *models.Contact
	var err error

	if cand.Phone1 != "" {
		target, err = d.store.FindByPhone(ctx, scope, cand.Phone1, "")
	} else if cand.Phone2 != "" {
		target, err = d.store.FindByPhone(ctx, scope, cand.Phone2, "")
	}
	if err != nil {
		return nil, err
	}

	if target == nil {
		c := &models.Contact{
			Name:         cand.Name,
			Organization: cand.Organization,
			Phone1:       cand.Phone1,
			Phone2:       cand.Phone2,
			UserID:       cand.OwnerID,
		}
		scope.Apply(c)

		id, err := d.store.CreateContact(ctx, c)
		if err != nil {
			return nil, err
		}
		return &Resolution{Action: Created, ContactID: id}, nil
	}

	changed := false
	if target.Name == "" && cand.Name != "" {
		target.Name = cand.Name
		changed = true
	}
	if target.Organization == "" && cand.Organization != "" {
		target.Organization = cand.Organization
		changed = true
	}
	if target.Phone2 == "" && cand.Phone2 != "" && cand.Phone2 != target.Phone1 {
		target.Phone2 = cand.Phone2
		changed = true
	}

	if changed {
		if err := d.store.UpdateContact(ctx, target); err != nil {
			return nil, err
		}
		d.logger.Debug("merged contact",
			zap.String("contact_id", target.ID),
			zap.String("scope", scope.String()))
	}

	return &Resolution{Action: Merged, ContactID: target.ID}, nil
}

// CheckUnique verifies the pairwise phone-uniqueness invariant for a
// manual create or edit: neither phone may already occupy a phone1 or
// phone2 slot of another contact in the same scope. excludeID is the
// row being edited, empty on create. Returns the name of the first
// conflicting input field, or "" when the write may proceed.
func (d *Deduper) CheckUnique(ctx context.Context, scope models.Scope, phone1, phone2, excludeID string) (string, error) {
	probes := []struct {
		field string
		value string
	}{
		{"phone1", phone1},
		{"phone2", phone2},
	}

	for _, probe := range probes {
		if probe.value == "" {
			continue
		}
		existing, err := d.store.FindByPhone(ctx, scope, probe.value, excludeID)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return probe.field, nil
		}
	}
	return "", nil
}
