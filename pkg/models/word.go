package models

import (
	"strings"
	"time"
)

// PartOfSpeech classifies a word for filtering and form generation.
type PartOfSpeech string

const (
	PartNoun        PartOfSpeech = "noun"
	PartVerb        PartOfSpeech = "verb"
	PartAdjective   PartOfSpeech = "adjective"
	PartAdverb      PartOfSpeech = "adverb"
	PartPronoun     PartOfSpeech = "pronoun"
	PartPreposition PartOfSpeech = "preposition"
	PartAuxiliary   PartOfSpeech = "auxiliary"
	PartPhrase      PartOfSpeech = "phrase"
	PartOther       PartOfSpeech = "other"
)

// PartsOfSpeech lists all recognized classes.
var PartsOfSpeech = []PartOfSpeech{
	PartNoun, PartVerb, PartAdjective, PartAdverb, PartPronoun,
	PartPreposition, PartAuxiliary, PartPhrase, PartOther,
}

// Valid reports whether p is one of the recognized classes.
func (p PartOfSpeech) Valid() bool {
	for _, known := range PartsOfSpeech {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePartOfSpeech normalizes a class tag, accepting the short labels used
// in older word lists ("n", "adj", "v"). Unknown tags map to PartOther.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch strings.ToLower(strings.TrimRight(strings.TrimSpace(s), ".")) {
	case "n", "noun":
		return PartNoun
	case "v", "verb":
		return PartVerb
	case "adj", "adjective":
		return PartAdjective
	case "adv", "adverb":
		return PartAdverb
	case "pron", "pronoun":
		return PartPronoun
	case "prep", "preposition":
		return PartPreposition
	case "aux", "auxiliary":
		return PartAuxiliary
	case "phr", "phrase":
		return PartPhrase
	default:
		return PartOther
	}
}

// Gender of a noun. Empty means unknown; the declension engine guesses it
// from the lemma ending.
type Gender string

const (
	GenderUnknown Gender = ""
	Masculine     Gender = "m"
	Feminine      Gender = "f"
	Neuter        Gender = "n"
)

// Word represents a Polish vocabulary entry.
type Word struct {
	ID        int           `json:"id" db:"id"`
	Voc       string        `json:"voc" db:"voc"` // dictionary lemma, unique
	Meaning   string        `json:"meaning" db:"meaning"`
	Class     PartOfSpeech  `json:"class" db:"class"`
	Gender    Gender        `json:"gender" db:"gender"`
	Animate   bool          `json:"animate" db:"animate"`
	Forms     CaseTable     `json:"forms" db:"forms"`         // noun declension, may be empty
	AdjForms  ParadigmTable `json:"adj_forms" db:"adj_forms"` // adjective paradigms, may be empty
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}
