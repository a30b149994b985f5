package answer

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "kitap", "kitap"},
		{"trims and collapses whitespace", "  güle   güle  ", "gule gule"},
		{"strips diacritics", "çiçek", "cicek"},
		{"turkish dotted capital", "İstanbul", "istanbul"},
		{"turkish dotless capital", "ILIK", "ilik"},
		{"dotless i maps to ascii i", "ılık", "ilik"},
		{"all special consonants", "şğöüç", "sgouc"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.in); got != tc.want {
				t.Errorf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEquivalent(t *testing.T) {
	cases := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"exact", "kitap", "kitap", true},
		{"case insensitive", "KİTAP", "kitap", true},
		{"ascii for diacritics", "cicek", "çiçek", true},
		{"diacritics for ascii", "çiçek", "cicek", true},
		{"different words", "kitap", "kalem", false},
		{"verb suffix harmony slip", "gitmak", "gitmek", true},
		{"matching infinitives", "yapmak", "yapmak", true},
		{"different verb roots", "gitmek", "gelmek", false},
		{"bare root vs infinitive", "git", "gitmek", false},
		{"infinitive vs bare root", "gitmek", "git", false},
		{"suffix only is not a verb", "mek", "mak", false},
		{"blank submission", "", "kitap", false},
		{"blank expected", "kitap", "", false},
		{"multi-word answer", "güle  güle", "gule gule", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equivalent(tc.submitted, tc.expected); got != tc.want {
				t.Errorf("Equivalent(%q, %q) = %v, want %v",
					tc.submitted, tc.expected, got, tc.want)
			}
		})
	}
}
