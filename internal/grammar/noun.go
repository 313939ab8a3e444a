// Package grammar derives Polish declension tables from dictionary lemmas.
//
// Both engines are rule-based approximations: they model the regular
// palatalization and ending alternations but make no attempt at lexical
// irregulars (pies, ręka, ...), for which they emit the regular-rule output.
// Every call fills every cell of the table, falling back to default endings
// when no specific rule matches.
package grammar

import (
	"errors"
	"strings"

	"github.com/example/polbot/pkg/models"
)

// ErrEmptyLemma is returned when an engine is given a blank lemma.
var ErrEmptyLemma = errors.New("empty lemma")

// GuessGender infers gender from the lemma ending: -a feminine, -o/-e/-ę/-um
// neuter, otherwise masculine. A heuristic, not a guarantee.
func GuessGender(voc string) models.Gender {
	if strings.HasSuffix(voc, "a") {
		return models.Feminine
	}
	if hasAnySuffix(voc, []string{"o", "e", "ę", "um"}) {
		return models.Neuter
	}
	return models.Masculine
}

// DeclineNoun produces all twelve case forms for a noun lemma. When gender is
// unknown it is guessed from the ending; animate defaults to false at the
// callers that have no animacy data.
func DeclineNoun(voc string, gender models.Gender, animate bool) (models.CaseTable, error) {
	voc = strings.TrimSpace(voc)
	if voc == "" {
		return models.CaseTable{}, ErrEmptyLemma
	}
	if gender == models.GenderUnknown {
		gender = GuessGender(voc)
	}

	var table models.CaseTable
	switch gender {
	case models.Feminine:
		table = feminineNoun(voc, animate)
	case models.Neuter:
		table = neuterNoun(voc)
	default:
		table = masculineNoun(voc, animate)
	}

	// Single-vowel lemmas ("a", "o") have an empty stem, which leaves the
	// bare-stem cells blank; the lemma itself stands in so every cell
	// carries a form.
	fillBlankForms(&table.Singular, voc)
	fillBlankForms(&table.Plural, voc)
	return table, nil
}

func fillBlankForms(forms *models.CaseForms, fallback string) {
	for _, c := range models.Cases {
		if forms.Form(c) == "" {
			forms.SetForm(c, fallback)
		}
	}
}

func feminineNoun(voc string, animate bool) models.CaseTable {
	stem := strings.TrimSuffix(voc, "a")
	var sg, pl models.CaseForms

	sg.Nominative = voc
	switch {
	case strings.HasSuffix(voc, "ia"):
		sg.Genitive = strings.TrimSuffix(voc, "ia") + "ii" // Austria → Austrii
	case strings.HasSuffix(voc, "ja"):
		sg.Genitive = strings.TrimSuffix(voc, "ja") + "ji" // restauracja → restauracji
	default:
		if soft, ok := softenedStem(stem); ok {
			sg.Genitive = soft // miłość → miłości
		} else if hasAnySuffix(stem, velars) {
			sg.Genitive = stem + "i"
		} else {
			sg.Genitive = stem + "y"
		}
	}
	sg.Dative = feminineDatLoc(voc, stem)
	sg.Accusative = stem + "ę"
	sg.Instrumental = stem + "ą"
	sg.Locative = feminineDatLoc(voc, stem)

	if soft, ok := softenedStem(stem); ok {
		pl.Nominative = soft + "e"
		pl.Genitive = soft
		pl.Dative = soft + "om"
		pl.Instrumental = soft + "ami"
		pl.Locative = soft + "ach"
	} else {
		pl.Nominative = stem + pluralNomEnding(stem)
		pl.Genitive = stem
		pl.Dative = stem + "om"
		pl.Instrumental = stem + "ami"
		pl.Locative = stem + "ach"
	}
	if animate {
		pl.Accusative = pl.Genitive
	} else {
		pl.Accusative = pl.Nominative
	}

	return models.CaseTable{Singular: sg, Plural: pl}
}

// feminineDatLoc builds the shared dative/locative singular form, applying
// palatalization when the ending context calls for it.
func feminineDatLoc(voc, stem string) string {
	if strings.HasSuffix(voc, "ia") {
		return strings.TrimSuffix(voc, "ia") + "ii"
	}
	if strings.HasSuffix(voc, "ja") {
		return strings.TrimSuffix(voc, "ja") + "ji"
	}
	if strings.HasSuffix(stem, "l") {
		return stem + "i"
	}
	if soft, ok := softenedStem(voc); ok {
		return soft // -ć → -ci
	}
	if alt, ok := syllableAlternationFor(voc); ok {
		return alt // matka → matce
	}
	if alt, ok := consonantAlternationFor(stem); ok {
		return alt // gazeta → gazecie
	}
	if hasAnySuffix(stem, ieConsonants) {
		return stem + "ie"
	}
	return stem + "y"
}

func neuterNoun(voc string) models.CaseTable {
	stem := stripFinalVowel(voc)
	indeclinable := strings.HasSuffix(voc, "um") // muzeum, centrum
	var sg, pl models.CaseForms

	sg.Nominative = voc
	sg.Accusative = voc // neuter syncretism: ACC = NOM
	if indeclinable {
		sg.Genitive = voc
		sg.Dative = voc
		sg.Instrumental = voc
		sg.Locative = voc
	} else {
		sg.Genitive = stem + "a"
		sg.Dative = stem + "u"
		sg.Instrumental = stem + instrumentalEnding(stem)
		if stem == "" {
			sg.Locative = "u"
		} else if alt, ok := consonantAlternationFor(stem); ok {
			sg.Locative = alt
		} else if hasAnySuffix(stem, ieConsonants) {
			sg.Locative = stem + "ie"
		} else {
			sg.Locative = stem + "u"
		}
	}

	if indeclinable {
		pl.Nominative = strings.TrimSuffix(voc, "um") + "a" // muzeum → muzea
	} else {
		pl.Nominative = stem + "a"
	}
	pl.Genitive = stem
	pl.Dative = stem + "om"
	pl.Accusative = pl.Nominative
	pl.Instrumental = stem + "ami"
	pl.Locative = stem + "ach"

	return models.CaseTable{Singular: sg, Plural: pl}
}

func masculineNoun(voc string, animate bool) models.CaseTable {
	stem := voc
	if r := lastRune(voc); isVowel(r) {
		stem = stripFinalVowel(voc)
	}
	var sg, pl models.CaseForms

	soft, isSoft := softenedStem(stem)
	base := stem
	if isSoft {
		base = soft
	}

	sg.Nominative = voc
	if animate {
		sg.Genitive = base + "a" // the defining animacy split for masculines
	} else {
		sg.Genitive = base + "u"
	}
	sg.Dative = base + "owi"
	if animate {
		sg.Accusative = sg.Genitive
	} else {
		sg.Accusative = sg.Nominative
	}
	if isSoft {
		sg.Instrumental = soft + "em"
	} else {
		sg.Instrumental = stem + instrumentalEnding(stem)
	}
	if softVoc, ok := softenedStem(voc); ok {
		sg.Locative = softVoc + "e"
	} else if alt, ok := consonantAlternationFor(stem); ok {
		sg.Locative = alt // kot → kocie
	} else if hasAnySuffix(stem, ieConsonants) {
		sg.Locative = stem + "ie"
	} else {
		sg.Locative = stem + "u"
	}

	if isSoft {
		pl.Nominative = soft + "e"
		pl.Genitive = soft + "ów"
		pl.Dative = soft + "om"
		pl.Instrumental = soft + "ami"
		pl.Locative = soft + "ach"
	} else {
		pl.Nominative = stem + pluralNomEnding(stem)
		pl.Genitive = stem + "ów"
		pl.Dative = stem + "om"
		pl.Instrumental = stem + "ami"
		pl.Locative = stem + "ach"
	}
	if animate {
		pl.Accusative = pl.Genitive
	} else {
		pl.Accusative = pl.Nominative
	}

	return models.CaseTable{Singular: sg, Plural: pl}
}
