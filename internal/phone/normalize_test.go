package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LocalFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical passes through", "+994554555008", "+994554555008"},
		{"local with separators", "055-455-5008", "+994554555008"},
		{"local leading zero", "0554555008", "+994554555008"},
		{"country code without plus", "994554555008", "+994554555008"},
		{"bare nine digits", "554555008", "+994554555008"},
		{"spaces and parens", "(055) 455 50 08", "+994554555008"},
		{"trailing digits truncated", "+9945545550081234", "+994554555008"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_International(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"us number unchanged", "+12025550123", "+12025550123"},
		{"formatted us number", "+1 (202) 555-0123", "+12025550123"},
		{"seven digit minimum", "+1234567", "+1234567"},
		{"fifteen digit maximum", "+123456789012345", "+123456789012345"},
		{"ten raw digits promoted", "2025550123", "+2025550123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "123"},
		{"empty", ""},
		{"no digits", "call me"},
		{"plus only", "+"},
		{"sixteen digit international", "+1234567890123456"},
		{"short local with zero", "0554555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", Normalize(tt.input))
		})
	}
}

// Every accepted output must normalize to itself.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"+994554555008",
		"055-455-5008",
		"0554555008",
		"994554555008",
		"554555008",
		"+12025550123",
		"+1234567",
		"2025550123",
		"12-34-567",
		"+9941234567",
		"994123456",
	}

	for _, input := range inputs {
		first := Normalize(input)
		if first == "" {
			continue
		}
		assert.Equal(t, first, Normalize(first), "input %q", input)
	}
}
