package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/models"
	"github.com/roosych/contactsbook/internal/vcf"
)

// ExportPersonal serializes the user's entire personal list as a
// version 3.0 VCF blob.
func (s *Service) ExportPersonal(ctx context.Context, userID string) ([]byte, error) {
	contacts, err := s.contacts.ListByScope(ctx, models.PersonalScope(userID), "", 0, 0)
	if err != nil {
		return nil, err
	}

	data, err := vcf.Export(contacts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("exported personal contacts",
		zap.String("user_id", userID),
		zap.Int("contacts", len(contacts)))
	return data, nil
}
