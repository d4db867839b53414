package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD, strips combining marks and recomposes,
// so "José" folds to "jose" after lowering.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics. It is applied to both the
// search term and every candidate field before substring comparison.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowered input so search still works on the raw bytes.
		return strings.ToLower(s)
	}
	return folded
}
