package textutil

import (
	"strings"
	"unicode"
)

// SanitizeEntryName replaces control characters so file names read from disk
// cannot inject terminal escape sequences or invisibly reorder a rendered
// row. Format-category runes (bidi overrides, zero-width joiners, BOM) are
// replaced as well since they alter layout without occupying a cell.
func SanitizeEntryName(name string) string {
	for _, r := range name {
		if requiresSanitization(r) {
			return sanitize(name)
		}
	}
	return name
}

func requiresSanitization(r rune) bool {
	return r < 0x20 || r == 0x7f || unicode.In(r, unicode.Cf, unicode.Cc)
}

func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if requiresSanitization(r) {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
