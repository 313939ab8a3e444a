package grammar

import (
	"errors"
	"testing"

	"github.com/example/polbot/pkg/models"
)

func TestDeclineAdjectiveHardStem(t *testing.T) {
	got, err := DeclineAdjective("dobry", false)
	if err != nil {
		t.Fatalf("DeclineAdjective: %v", err)
	}
	wantM := models.CaseForms{
		Nominative: "dobry", Genitive: "dobrego", Dative: "dobremu",
		Accusative: "dobry", Instrumental: "dobrym", Locative: "dobrym",
	}
	if got.MascSingular != wantM {
		t.Errorf("masc sg = %+v, want %+v", got.MascSingular, wantM)
	}
	wantF := models.CaseForms{
		Nominative: "dobra", Genitive: "dobrej", Dative: "dobrej",
		Accusative: "dobrą", Instrumental: "dobrą", Locative: "dobrej",
	}
	if got.FemSingular != wantF {
		t.Errorf("fem sg = %+v, want %+v", got.FemSingular, wantF)
	}
	if got.NeutSingular.Nominative != "dobre" || got.NeutSingular.Accusative != "dobre" {
		t.Errorf("neut NOM/ACC = %q/%q, want dobre/dobre",
			got.NeutSingular.Nominative, got.NeutSingular.Accusative)
	}
	if got.MascPersonalPl.Nominative != "dobrzy" {
		t.Errorf("masc-personal NOM pl = %q, want %q", got.MascPersonalPl.Nominative, "dobrzy")
	}
	if got.OtherPl.Nominative != "dobre" {
		t.Errorf("non-masc-personal NOM pl = %q, want %q", got.OtherPl.Nominative, "dobre")
	}
	if got.MascPersonalPl.Genitive != "dobrych" || got.MascPersonalPl.Instrumental != "dobrymi" {
		t.Errorf("masc-personal GEN/INS pl = %q/%q, want dobrych/dobrymi",
			got.MascPersonalPl.Genitive, got.MascPersonalPl.Instrumental)
	}
}

func TestDeclineAdjectiveSoftAndVelarStems(t *testing.T) {
	tests := []struct {
		voc     string
		genM    string // masc sg genitive
		insM    string // masc sg instrumental
		neutNom string
		genPl   string
	}{
		{"drogi", "drogiego", "drogim", "drogie", "drogich"},
		{"krótki", "krótkiego", "krótkim", "krótkie", "krótkich"},
		{"tani", "taniego", "tanim", "tanie", "tanich"},
		{"cichy", "cichego", "cichym", "ciche", "cichych"},
	}
	for _, tt := range tests {
		t.Run(tt.voc, func(t *testing.T) {
			got, err := DeclineAdjective(tt.voc, false)
			if err != nil {
				t.Fatalf("DeclineAdjective: %v", err)
			}
			if got.MascSingular.Genitive != tt.genM {
				t.Errorf("GEN masc sg = %q, want %q", got.MascSingular.Genitive, tt.genM)
			}
			if got.MascSingular.Instrumental != tt.insM {
				t.Errorf("INS masc sg = %q, want %q", got.MascSingular.Instrumental, tt.insM)
			}
			if got.NeutSingular.Nominative != tt.neutNom {
				t.Errorf("NOM neut sg = %q, want %q", got.NeutSingular.Nominative, tt.neutNom)
			}
			if got.MascPersonalPl.Genitive != tt.genPl {
				t.Errorf("GEN pl = %q, want %q", got.MascPersonalPl.Genitive, tt.genPl)
			}
		})
	}
}

func TestDeclineAdjectiveMascPersonalNominative(t *testing.T) {
	tests := []struct {
		voc  string
		want string
	}{
		{"młody", "młodzi"},  // d → dzi
		{"bogaty", "bogaci"}, // t → ci
		{"dobry", "dobrzy"},  // r → rzy
		{"miły", "mili"},     // ł → li
		{"krótki", "krótcy"}, // k → cy
		{"drogi", "drodzy"},  // g → dzy
		{"cichy", "cisi"},    // ch → si, two-char before one-char
		{"tani", "tani"},     // soft fallback +i
	}
	for _, tt := range tests {
		t.Run(tt.voc, func(t *testing.T) {
			got, err := DeclineAdjective(tt.voc, false)
			if err != nil {
				t.Fatalf("DeclineAdjective: %v", err)
			}
			if got.MascPersonalPl.Nominative != tt.want {
				t.Errorf("masc-personal NOM pl = %q, want %q", got.MascPersonalPl.Nominative, tt.want)
			}
		})
	}
}

func TestDeclineAdjectiveSyncretism(t *testing.T) {
	for _, voc := range []string{"dobry", "drogi", "cichy", "miły"} {
		// Masculine singular accusative follows animacy.
		animate, err := DeclineAdjective(voc, true)
		if err != nil {
			t.Fatalf("DeclineAdjective: %v", err)
		}
		if animate.MascSingular.Accusative != animate.MascSingular.Genitive {
			t.Errorf("%q animate: ACC masc sg %q != GEN %q",
				voc, animate.MascSingular.Accusative, animate.MascSingular.Genitive)
		}
		inanimate, err := DeclineAdjective(voc, false)
		if err != nil {
			t.Fatalf("DeclineAdjective: %v", err)
		}
		if inanimate.MascSingular.Accusative != inanimate.MascSingular.Nominative {
			t.Errorf("%q inanimate: ACC masc sg %q != NOM %q",
				voc, inanimate.MascSingular.Accusative, inanimate.MascSingular.Nominative)
		}
		// Masculine-personal plural merges GEN/ACC/LOC regardless of animacy.
		for _, p := range []models.ParadigmTable{animate, inanimate} {
			if p.MascPersonalPl.Accusative != p.MascPersonalPl.Genitive ||
				p.MascPersonalPl.Locative != p.MascPersonalPl.Genitive {
				t.Errorf("%q: masc-personal plural GEN/ACC/LOC not merged: %+v", voc, p.MascPersonalPl)
			}
		}
	}
}

func TestDeclineAdjectiveCompleteness(t *testing.T) {
	for _, voc := range []string{"dobry", "drogi", "cichy", "tani", "zły", "x"} {
		got, err := DeclineAdjective(voc, false)
		if err != nil {
			t.Fatalf("DeclineAdjective(%q): %v", voc, err)
		}
		paradigms := map[string]*models.CaseForms{
			"sg_m": &got.MascSingular, "sg_f": &got.FemSingular, "sg_n": &got.NeutSingular,
			"pl_mo": &got.MascPersonalPl, "pl_nmo": &got.OtherPl,
		}
		for name, forms := range paradigms {
			for _, c := range models.Cases {
				if forms.Form(c) == "" {
					t.Errorf("DeclineAdjective(%q): empty %s %s", voc, name, c)
				}
			}
		}
	}
}

func TestDeclineAdjectiveEmptyLemma(t *testing.T) {
	if _, err := DeclineAdjective("", false); !errors.Is(err, ErrEmptyLemma) {
		t.Errorf("error = %v, want ErrEmptyLemma", err)
	}
}
