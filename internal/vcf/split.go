// Package vcf handles splitting, parsing and generating vCard (VCF)
// payloads for the contact import and export paths.
package vcf

import (
	"regexp"
	"strings"
)

var beginMarker = regexp.MustCompile(`(?im)^BEGIN:VCARD`)

// SplitCards cuts a VCF blob into individual card segments, each
// starting with its own BEGIN:VCARD marker. Line endings are unified
// first so the split anchors on line starts regardless of the producer.
// Returns nil when the blob contains no marker at all.
func SplitCards(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	locs := beginMarker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	cards := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segment := strings.TrimSpace(text[loc[0]:end])
		if segment == "" {
			continue
		}
		cards = append(cards, segment)
	}
	return cards
}
