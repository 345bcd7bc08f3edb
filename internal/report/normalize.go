package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ has no decomposition, so it is mapped by hand.
var strokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// Normalize strips diacritics so "Ž" becomes "Z" and "Čačić" becomes "Cacic".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeReplacer.Replace(s))
	if err != nil {
		return s
	}
	return out
}
