package vcf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/emersion/go-vcard"
	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/phone"
)

// CardError reports a single malformed card. The import loop recovers
// from it and continues with the next card.
type CardError struct {
	Err error
}

func (e *CardError) Error() string { return fmt.Sprintf("malformed vcard: %v", e.Err) }
func (e *CardError) Unwrap() error { return e.Err }

// ParsedCard holds the fields extracted from one card. Phones are
// canonical, deduplicated, at most two, in first-seen order.
type ParsedCard struct {
	Name         string
	Organization string
	Phones       []string
}

var (
	telPrefix  = regexp.MustCompile(`(?i)^tel:`)
	phoneShape = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// Parser extracts contact fields from single vCard records.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a parser.
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseCard decodes one card and extracts name, organization and up to
// two canonical phone numbers. Phones that cannot be normalized are
// logged and dropped rather than kept raw.
func (p *Parser) ParseCard(cardText string) (*ParsedCard, error) {
	card, err := vcard.NewDecoder(strings.NewReader(cardText)).Decode()
	if err != nil {
		return nil, &CardError{Err: err}
	}

	out := &ParsedCard{
		Name:         extractName(card),
		Organization: extractOrganization(card),
	}

	seen := make(map[string]bool)
	for _, field := range card[vcard.FieldTelephone] {
		raw := telPrefix.ReplaceAllString(strings.TrimSpace(field.Value), "")
		raw = stripSeparators(raw)
		if raw == "" {
			continue
		}
		canonical := phone.Normalize(raw)
		if canonical == "" {
			p.logger.Warn("dropping phone that cannot be normalized",
				zap.String("raw", raw))
			continue
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		out.Phones = append(out.Phones, canonical)
	}
	if len(out.Phones) > 2 {
		out.Phones = out.Phones[:2]
	}

	// Some producers mis-tag a phone as ORG; drop the organization when
	// it is phone-shaped or repeats one of the kept numbers.
	if org := out.Organization; org != "" {
		if phoneShape.MatchString(stripSeparators(org)) || matchesPhone(out.Phones, org) {
			p.logger.Warn("discarding phone-shaped organization",
				zap.String("organization", org))
			out.Organization = ""
		}
	}

	return out, nil
}

func extractName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	n := card.Name()
	if n == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{n.FamilyName, n.GivenName, n.AdditionalName} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// extractOrganization keeps only the company component of ORG; the
// department/unit sub-parts after the first semicolon are ignored.
func extractOrganization(card vcard.Card) string {
	raw := card.PreferredValue(vcard.FieldOrganization)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(raw, ";", 2)[0])
}

var separators = strings.NewReplacer(
	" ", "", "\t", "", "-", "", "(", "", ")", "", ".", "",
)

func stripSeparators(s string) string { return separators.Replace(s) }

func matchesPhone(phones []string, s string) bool {
	for _, p := range phones {
		if s == p {
			return true
		}
	}
	return false
}
