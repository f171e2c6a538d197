package missions

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.English)

// Slug converts a mission short name to the kebab-case form used for record
// filenames, e.g. "New Horizons" -> "new-horizons", "OSIRIS-REx" ->
// "osiris-rex".
func Slug(name string) string {
	lowered := lowerCaser.String(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSep := false
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
