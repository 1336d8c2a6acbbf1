package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestParser() *Parser { return NewParser(zap.NewNop()) }

func TestParseCard_FormattedNamePreferred(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Rashad Aliyev\nN:Aliyev;Rashad;;;\nTEL:+994554555008\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "Rashad Aliyev", parsed.Name)
	assert.Equal(t, []string{"+994554555008"}, parsed.Phones)
}

func TestParseCard_NameAssembledFromParts(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nN:Aliyev;Rashad;Oglu;;\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "Aliyev Rashad Oglu", parsed.Name)
}

func TestParseCard_NameEmptyPartsOmitted(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nN:Aliyev;;;;\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "Aliyev", parsed.Name)
}

func TestParseCard_TelSchemePrefixStripped(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nTEL:tel:055-455-5008\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, []string{"+994554555008"}, parsed.Phones)
}

func TestParseCard_DuplicatePhonesCollapse(t *testing.T) {
	// The same number in two formats collapses to one canonical entry.
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nTEL:0554555008\nTEL:+994554555008\nTEL:+994554555009\nTEL:+994554555010\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	// Third distinct number is discarded, only two slots exist.
	assert.Equal(t, []string{"+994554555008", "+994554555009"}, parsed.Phones)
}

func TestParseCard_UnnormalizablePhoneDropped(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nTEL:123\nTEL:+994554555008\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, []string{"+994554555008"}, parsed.Phones)
}

func TestParseCard_OrganizationFirstSegment(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nORG:Acme Holding;Sales;Inside\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "Acme Holding", parsed.Organization)
}

func TestParseCard_PhoneShapedOrganizationDiscarded(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nORG:+994 55 455 50 08\nTEL:+994554555009\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "", parsed.Organization)
}

func TestParseCard_OrganizationEqualToPhoneDiscarded(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nFN:Alice\nORG:+994554555008\nTEL:+994554555008\nEND:VCARD"

	parsed, err := newTestParser().ParseCard(card)

	require.NoError(t, err)
	assert.Equal(t, "", parsed.Organization)
}

func TestParseCard_Malformed(t *testing.T) {
	_, err := newTestParser().ParseCard("BEGIN:VCARD\nthis line has no colon")

	require.Error(t, err)
	var cardErr *CardError
	assert.ErrorAs(t, err, &cardErr)
}
