package grammar

import (
	"errors"
	"testing"

	"github.com/example/polbot/pkg/models"
)

func TestGuessGender(t *testing.T) {
	tests := []struct {
		voc  string
		want models.Gender
	}{
		{"kobieta", models.Feminine},
		{"matka", models.Feminine},
		{"okno", models.Neuter},
		{"morze", models.Neuter},
		{"imię", models.Neuter},
		{"muzeum", models.Neuter},
		{"kot", models.Masculine},
		{"stół", models.Masculine},
	}
	for _, tt := range tests {
		if got := GuessGender(tt.voc); got != tt.want {
			t.Errorf("GuessGender(%q) = %q, want %q", tt.voc, got, tt.want)
		}
	}
}

func TestDeclineNounMasculine(t *testing.T) {
	// Inanimate masculine: genitive -u, accusative = nominative.
	got, err := DeclineNoun("kot", models.Masculine, false)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	if got.Singular.Genitive != "kotu" {
		t.Errorf("GEN sg = %q, want %q", got.Singular.Genitive, "kotu")
	}
	if got.Singular.Accusative != "kot" {
		t.Errorf("ACC sg = %q, want %q (inanimate syncretism with NOM)", got.Singular.Accusative, "kot")
	}
	if got.Singular.Dative != "kotowi" {
		t.Errorf("DAT sg = %q, want %q", got.Singular.Dative, "kotowi")
	}
	if got.Singular.Instrumental != "kotem" {
		t.Errorf("INS sg = %q, want %q", got.Singular.Instrumental, "kotem")
	}
	if got.Singular.Locative != "kocie" {
		t.Errorf("LOC sg = %q, want %q", got.Singular.Locative, "kocie")
	}
	if got.Plural.Genitive != "kotów" {
		t.Errorf("GEN pl = %q, want %q", got.Plural.Genitive, "kotów")
	}
	if got.Plural.Accusative != got.Plural.Nominative {
		t.Errorf("ACC pl = %q, want NOM pl %q", got.Plural.Accusative, got.Plural.Nominative)
	}

	// Animate masculine: genitive -a, accusative = genitive.
	got, err = DeclineNoun("kot", models.Masculine, true)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	if got.Singular.Genitive != "kota" {
		t.Errorf("animate GEN sg = %q, want %q", got.Singular.Genitive, "kota")
	}
	if got.Singular.Accusative != "kota" {
		t.Errorf("animate ACC sg = %q, want %q", got.Singular.Accusative, "kota")
	}
	if got.Plural.Accusative != "kotów" {
		t.Errorf("animate ACC pl = %q, want GEN pl %q", got.Plural.Accusative, "kotów")
	}
}

func TestDeclineNounIrregularBestEffort(t *testing.T) {
	// pies has an irregular stem (psa) that the engine does not model; the
	// regular rule output is the documented behavior.
	got, err := DeclineNoun("pies", models.Masculine, true)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	if got.Singular.Genitive != "piesa" {
		t.Errorf("GEN sg = %q, want regular-rule %q", got.Singular.Genitive, "piesa")
	}
}

func TestDeclineNounFeminine(t *testing.T) {
	tests := []struct {
		name string
		voc  string
		want models.CaseForms // singular
	}{
		{
			name: "velar stem",
			voc:  "matka",
			want: models.CaseForms{
				Nominative: "matka", Genitive: "matki", Dative: "matce",
				Accusative: "matkę", Instrumental: "matką", Locative: "matce",
			},
		},
		{
			name: "ja ending",
			voc:  "restauracja",
			want: models.CaseForms{
				Nominative: "restauracja", Genitive: "restauracji", Dative: "restauracji",
				Accusative: "restaurację", Instrumental: "restauracją", Locative: "restauracji",
			},
		},
		{
			name: "ia ending",
			voc:  "Austria",
			want: models.CaseForms{
				Nominative: "Austria", Genitive: "Austrii", Dative: "Austrii",
				Accusative: "Austrię", Instrumental: "Austrią", Locative: "Austrii",
			},
		},
		{
			name: "t alternation",
			voc:  "gazeta",
			want: models.CaseForms{
				Nominative: "gazeta", Genitive: "gazety", Dative: "gazecie",
				Accusative: "gazetę", Instrumental: "gazetą", Locative: "gazecie",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeclineNoun(tt.voc, models.Feminine, false)
			if err != nil {
				t.Fatalf("DeclineNoun: %v", err)
			}
			if got.Singular != tt.want {
				t.Errorf("singular = %+v, want %+v", got.Singular, tt.want)
			}
		})
	}
}

func TestDeclineNounFeminineSoftStem(t *testing.T) {
	got, err := DeclineNoun("miłość", models.Feminine, false)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	if got.Singular.Genitive != "miłości" {
		t.Errorf("GEN sg = %q, want %q", got.Singular.Genitive, "miłości")
	}
	if got.Plural.Nominative != "miłoście" {
		t.Errorf("NOM pl = %q, want %q", got.Plural.Nominative, "miłoście")
	}
}

func TestDeclineNounNeuter(t *testing.T) {
	got, err := DeclineNoun("okno", models.Neuter, false)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	want := models.CaseForms{
		Nominative: "okno", Genitive: "okna", Dative: "oknu",
		Accusative: "okno", Instrumental: "oknem", Locative: "oknie",
	}
	if got.Singular != want {
		t.Errorf("singular = %+v, want %+v", got.Singular, want)
	}
	if got.Plural.Nominative != "okna" || got.Plural.Accusative != "okna" {
		t.Errorf("plural NOM/ACC = %q/%q, want okna/okna", got.Plural.Nominative, got.Plural.Accusative)
	}
}

func TestDeclineNounNeuterUm(t *testing.T) {
	got, err := DeclineNoun("muzeum", models.Neuter, false)
	if err != nil {
		t.Fatalf("DeclineNoun: %v", err)
	}
	// -um lemmas are indeclinable in the singular.
	for _, c := range models.Cases {
		if form := got.Singular.Form(c); form != "muzeum" {
			t.Errorf("%s sg = %q, want %q", c, form, "muzeum")
		}
	}
	if got.Plural.Nominative != "muzea" {
		t.Errorf("NOM pl = %q, want %q", got.Plural.Nominative, "muzea")
	}
}

func TestDeclineNounCompleteness(t *testing.T) {
	lemmas := []string{"kot", "matka", "okno", "muzeum", "restauracja", "miłość", "x", "stół", "a", "o", "e", "ę"}
	genders := []models.Gender{models.GenderUnknown, models.Masculine, models.Feminine, models.Neuter}
	for _, voc := range lemmas {
		for _, g := range genders {
			for _, animate := range []bool{false, true} {
				got, err := DeclineNoun(voc, g, animate)
				if err != nil {
					t.Fatalf("DeclineNoun(%q, %q, %v): %v", voc, g, animate, err)
				}
				for _, c := range models.Cases {
					if got.Singular.Form(c) == "" {
						t.Errorf("DeclineNoun(%q, %q, %v): empty %s sg", voc, g, animate, c)
					}
					if got.Plural.Form(c) == "" {
						t.Errorf("DeclineNoun(%q, %q, %v): empty %s pl", voc, g, animate, c)
					}
				}
			}
		}
	}
}

func TestDeclineNounSingleVowelLemma(t *testing.T) {
	// The stem of these lemmas is empty, so the bare-stem cells fall back to
	// the lemma itself instead of going blank.
	tests := []struct {
		voc    string
		gender models.Gender
	}{
		{"a", models.Feminine},
		{"o", models.Neuter},
		{"e", models.Neuter},
		{"ę", models.Neuter},
	}
	for _, tt := range tests {
		for _, animate := range []bool{false, true} {
			got, err := DeclineNoun(tt.voc, tt.gender, animate)
			if err != nil {
				t.Fatalf("DeclineNoun(%q, %q, %v): %v", tt.voc, tt.gender, animate, err)
			}
			if got.Plural.Genitive != tt.voc {
				t.Errorf("DeclineNoun(%q, %q, %v): GEN pl = %q, want %q",
					tt.voc, tt.gender, animate, got.Plural.Genitive, tt.voc)
			}
			if animate && got.Plural.Accusative == "" {
				t.Errorf("DeclineNoun(%q, %q, true): empty ACC pl", tt.voc, tt.gender)
			}
		}
	}
}

func TestDeclineNounAnimacySyncretism(t *testing.T) {
	for _, voc := range []string{"kot", "pies", "stół", "dom"} {
		animate, err := DeclineNoun(voc, models.Masculine, true)
		if err != nil {
			t.Fatalf("DeclineNoun: %v", err)
		}
		inanimate, err := DeclineNoun(voc, models.Masculine, false)
		if err != nil {
			t.Fatalf("DeclineNoun: %v", err)
		}
		if animate.Singular.Accusative != animate.Singular.Genitive {
			t.Errorf("%q animate: ACC sg %q != GEN sg %q", voc, animate.Singular.Accusative, animate.Singular.Genitive)
		}
		if inanimate.Singular.Accusative != inanimate.Singular.Nominative {
			t.Errorf("%q inanimate: ACC sg %q != NOM sg %q", voc, inanimate.Singular.Accusative, inanimate.Singular.Nominative)
		}
	}
}

func TestDeclineNounEmptyLemma(t *testing.T) {
	for _, voc := range []string{"", "   "} {
		if _, err := DeclineNoun(voc, models.GenderUnknown, false); !errors.Is(err, ErrEmptyLemma) {
			t.Errorf("DeclineNoun(%q) error = %v, want ErrEmptyLemma", voc, err)
		}
	}
}
