package grammar

import (
	"strings"
	"unicode/utf8"
)

// Static phonology data shared by the noun and adjective engines. The tables
// cover the regular alternations only; lexical irregulars are out of scope.

const vowels = "aąeęioóuy"

// Plain consonants that take -ie in dative/locative positions.
var ieConsonants = []string{"b", "p", "m", "n", "f", "w", "s", "z"}

// Hard hissing consonants (k/g excluded) — plural nominative takes -e.
var hardHissing = []string{"c", "j", "ż", "sz", "cz", "rz", "dż"}

var velars = []string{"k", "g"}

// Soft consonants and their pre-vowel digraph spellings.
var softSingles = []string{"ś", "ć", "ź", "ń"}
var softDigraphs = []string{"dź", "dzi", "si", "ci", "zi", "ni"}
var softSpelling = map[string]string{"ś": "si", "ć": "ci", "ź": "zi", "ń": "ni"}

// Hard-to-soft alternations before -e endings. The final consonant or
// syllable is replaced outright. Two-character suffixes are tried before the
// three-character one, so -cha resolves through the -ha entry.
var consonantAlternations = []struct{ suffix, repl string }{
	{"d", "dzie"}, {"t", "cie"}, {"r", "rze"}, {"ł", "le"},
}
var syllableAlternations = []struct{ suffix, repl string }{
	{"ka", "ce"}, {"ga", "dze"}, {"ha", "sze"}, {"cha", "sze"},
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// stripFinalVowel removes the final rune when it is a vowel.
func stripFinalVowel(s string) string {
	if r := lastRune(s); r != 0 && isVowel(r) {
		return s[:len(s)-utf8.RuneLen(r)]
	}
	return s
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// softenedStem rewrites a stem ending in ś/ć/ź/ń to its digraph spelling
// (miłość → miłości without the ending), for attaching vowel-initial endings.
// ok is false when the stem does not end in a soft single.
func softenedStem(stem string) (soft string, ok bool) {
	for _, c := range softSingles {
		if strings.HasSuffix(stem, c) {
			return strings.TrimSuffix(stem, c) + softSpelling[c], true
		}
	}
	return stem, false
}

// consonantAlternationFor replaces a final d/t/r/ł with its softened form.
func consonantAlternationFor(stem string) (string, bool) {
	for _, a := range consonantAlternations {
		if strings.HasSuffix(stem, a.suffix) {
			return strings.TrimSuffix(stem, a.suffix) + a.repl, true
		}
	}
	return "", false
}

// syllableAlternationFor replaces a final -ka/-ga/-ha/-cha syllable.
func syllableAlternationFor(voc string) (string, bool) {
	for _, a := range syllableAlternations {
		if strings.HasSuffix(voc, a.suffix) {
			return strings.TrimSuffix(voc, a.suffix) + a.repl, true
		}
	}
	return "", false
}

// instrumentalEnding picks -iem after velars, -em otherwise.
func instrumentalEnding(stem string) string {
	if hasAnySuffix(stem, velars) {
		return "iem"
	}
	return "em"
}

// pluralNomEnding picks the plural nominative ending from the stem's final
// consonant class: velars and plain consonants take -i, soft and hissing
// consonants take -e.
func pluralNomEnding(stem string) string {
	switch {
	case hasAnySuffix(stem, velars):
		return "i"
	case hasAnySuffix(stem, softSingles):
		return "e"
	case hasAnySuffix(stem, softDigraphs):
		return "e"
	case hasAnySuffix(stem, hardHissing):
		return "e"
	}
	return "i"
}
