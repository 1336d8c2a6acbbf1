package vcf

import (
	"bytes"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/roosych/contactsbook/internal/models"
)

// Export renders contacts as a concatenated vCard 3.0 stream, one card
// per contact, separated by a newline.
func Export(contacts []models.Contact) ([]byte, error) {
	var buf bytes.Buffer
	for i, c := range contacts {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := encodeContact(&buf, c); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeContact(buf *bytes.Buffer, c models.Contact) error {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "3.0")

	if c.Name != "" {
		card.SetValue(vcard.FieldFormattedName, c.Name)
		given, family := SplitDisplayName(c.Name)
		card.AddName(&vcard.Name{GivenName: given, FamilyName: family})
	}
	if c.Organization != "" {
		card.SetValue(vcard.FieldOrganization, c.Organization)
	}
	for _, p := range []string{c.Phone1, c.Phone2} {
		if p == "" {
			continue
		}
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}

	return vcard.NewEncoder(buf).Encode(card)
}

// SplitDisplayName applies the export heuristic for the structured N
// field: first whitespace-delimited token becomes the given name, the
// remainder the family name. A single-token name goes entirely to the
// family slot.
func SplitDisplayName(name string) (given, family string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return "", fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
