package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/dedup"
	"github.com/roosych/contactsbook/internal/models"
	"github.com/roosych/contactsbook/internal/vcf"
)

// Import runs the VCF import pipeline: split the blob into cards, parse
// each one, canonicalize its phones and create or merge a contact in
// the given scope. Cards are processed strictly sequentially so later
// cards observe contacts created earlier in the same batch. A failing
// card is logged and skipped, never aborting the batch. Returns the
// number of cards that resulted in a create or a merge.
func (s *Service) Import(ctx context.Context, data []byte, userID string, scope models.Scope) (int, error) {
	cards := vcf.SplitCards(data)
	if len(cards) == 0 {
		return 0, ErrNoCards
	}

	processed := 0
	for i, cardText := range cards {
		parsed, err := s.parser.ParseCard(cardText)
		if err != nil {
			s.logger.Warn("skipping malformed card",
				zap.Int("card", i),
				zap.Error(err))
			continue
		}

		// Nothing worth storing on this card.
		if parsed.Name == "" && len(parsed.Phones) == 0 {
			continue
		}

		cand := dedup.Candidate{
			Name:         parsed.Name,
			Organization: parsed.Organization,
			OwnerID:      userID,
		}
		if len(parsed.Phones) > 0 {
			cand.Phone1 = parsed.Phones[0]
		}
		if len(parsed.Phones) > 1 {
			cand.Phone2 = parsed.Phones[1]
		}

		if _, err := s.deduper.Resolve(ctx, scope, cand); err != nil {
			s.logger.Warn("skipping card after storage error",
				zap.Int("card", i),
				zap.Error(err))
			continue
		}
		processed++
	}

	s.logger.Info("import finished",
		zap.String("user_id", userID),
		zap.String("scope", scope.String()),
		zap.Int("cards", len(cards)),
		zap.Int("processed", processed))

	if s.events != nil {
		if err := s.events.PublishImport(ctx, userID, scope, processed); err != nil {
			s.logger.Warn("failed to publish import event", zap.Error(err))
		}
	}

	return processed, nil
}
