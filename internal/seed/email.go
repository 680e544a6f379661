package seed

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// emailFor builds "first.last@domain" with accents removed.
func emailFor(first, last, domain string) string {
	local := strings.ToLower(first + "." + last)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if plain, _, err := transform.String(t, local); err == nil {
		local = plain
	}
	return local + "@" + domain
}
