// Package answer holds the single normalization policy used to compare a
// player's submission against an item's answer text. Comparison is pure and
// locale-aware; every game mode goes through Equivalent rather than rolling
// its own folding.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	turkishLower = cases.Lower(language.Turkish)

	// stripMarks decomposes to NFD, drops combining marks, and recomposes.
	// "çiçek" and "cicek" fold to the same string.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Fold normalizes a string for comparison:
//   - leading/trailing whitespace trimmed, inner runs collapsed to one space
//   - Turkish-aware lowercasing (I -> ı, İ -> i)
//   - diacritics removed (ş -> s, ğ -> g, ö -> o, ü -> u, ç -> c)
//   - dotless ı mapped to i, so keyboard-ASCII input matches
func Fold(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = turkishLower.String(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return strings.ReplaceAll(s, "ı", "i")
}

// infinitiveRoot returns the verb root when s carries a Turkish infinitive
// suffix, and ok=false otherwise. Only full suffixes count; a three-letter
// word like "mek" has no root.
func infinitiveRoot(s string) (string, bool) {
	for _, suffix := range []string{"mek", "mak"} {
		if root, found := strings.CutSuffix(s, suffix); found && root != "" {
			return root, true
		}
	}
	return "", false
}

// Equivalent reports whether a submitted answer matches the expected answer
// under the folding rules. Two infinitive verbs additionally match on their
// shared root, so a vowel-harmony slip in the suffix ("gitmak") is accepted.
// A bare root never matches an infinitive: the suffix rule applies only when
// both sides carry one.
func Equivalent(submitted, expected string) bool {
	a := Fold(submitted)
	b := Fold(expected)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	rootA, okA := infinitiveRoot(a)
	rootB, okB := infinitiveRoot(b)
	return okA && okB && rootA == rootB
}
