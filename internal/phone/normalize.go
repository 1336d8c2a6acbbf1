// Package phone canonicalizes raw phone input for storage and
// comparison. The heuristic targets the +994 locale and deliberately
// avoids a full phone-number library.
package phone

import "strings"

// Normalize maps raw phone text to its canonical dialable form, or
// returns the empty string when the input cannot be canonicalized.
//
// Local numbers are reduced to +994 plus nine subscriber digits. Other
// +-prefixed international numbers pass through when they carry 7 to 15
// digits. The rule order is load-bearing: the international branch must
// run before the local heuristics so a foreign number is never misread
// as a bare digit string. A +994/994/0 prefix with fewer than nine
// following digits falls through to the generic rules instead of
// rejecting outright, which keeps Normalize idempotent on its own
// output.
func Normalize(raw string) string {
	cleaned := stripToPlusDigits(raw)
	if cleaned == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(cleaned, "+994"); ok {
		if d := digitsOnly(rest); len(d) >= 9 {
			return "+994" + d[:9]
		}
	}
	if strings.HasPrefix(cleaned, "+") {
		if d := digitsOnly(cleaned); len(d) >= 7 && len(d) <= 15 {
			return "+" + d
		}
	} else {
		if rest, ok := strings.CutPrefix(cleaned, "994"); ok {
			if d := digitsOnly(rest); len(d) >= 9 {
				return "+994" + d[:9]
			}
		}
		if rest, ok := strings.CutPrefix(cleaned, "0"); ok {
			if d := digitsOnly(rest); len(d) >= 9 {
				return "+994" + d[:9]
			}
		}
		if len(cleaned) == 9 && cleaned == digitsOnly(cleaned) {
			return "+994" + cleaned
		}
	}

	// Last resort: count digits in the original input, ignoring any +.
	d := digitsOnly(raw)
	switch n := len(d); {
	case n >= 10 && n <= 15:
		return "+" + d
	case n >= 7 && n < 9 && !strings.HasPrefix(cleaned, "0"):
		return "+" + d
	}
	return ""
}

func stripToPlusDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
