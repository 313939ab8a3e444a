package grammar

import (
	"strings"

	"github.com/example/polbot/pkg/models"
)

// adjStem strips the masculine nominative singular ending (-y or -i).
func adjStem(voc string) string {
	if strings.HasSuffix(voc, "y") || strings.HasSuffix(voc, "i") {
		return voc[:len(voc)-1]
	}
	return voc
}

// adjSoftForImYm decides between -im/-ym and -imi/-ymi (masculine/neuter
// singular instrumental and locative, plural dative and instrumental).
// Soft when the stem ends in a soft consonant, the lemma ends in -i, or the
// stem ends in a velar.
func adjSoftForImYm(stem, voc string) bool {
	if hasAnySuffix(stem, softSingles) || hasAnySuffix(stem, softDigraphs) {
		return true
	}
	if strings.HasSuffix(voc, "i") {
		return true
	}
	return hasAnySuffix(stem, velars)
}

// adjIeNeeded decides between -ie and -e (neuter nominative, non-masculine-
// personal plural nominative) and between -ich and -ych (plural genitive and
// locative). True for the soft-consonant contexts, the -i/-gi/-ki/-hi/-chi
// lemma endings, and velar stems.
func adjIeNeeded(stem, voc string) bool {
	if hasAnySuffix(stem, softSingles) || hasAnySuffix(stem, softDigraphs) {
		return true
	}
	if strings.HasSuffix(voc, "i") {
		return true
	}
	return hasAnySuffix(stem, velars)
}

// Masculine-personal plural nominative alternations. Heuristic: checked
// two-character suffix first, then one-character; known to be wrong for
// lexemes with true irregular stem changes.
var mpNomTwo = []struct{ suffix, repl string }{
	{"ch", "si"},  // cichy → cisi
	{"cz", "czy"},
	{"sz", "szy"},
	{"rz", "rzy"},
}
var mpNomOne = []struct{ suffix, repl string }{
	{"d", "dzi"}, // młody → młodzi
	{"t", "ci"},  // bogaty → bogaci
	{"r", "rzy"}, // dobry → dobrzy
	{"ł", "li"},  // miły → mili
	{"k", "cy"},  // krótki → krótcy
	{"g", "dzy"}, // drogi → drodzy
}

func mascPersonalNom(stem string, softIe bool) string {
	for _, a := range mpNomTwo {
		if strings.HasSuffix(stem, a.suffix) {
			return strings.TrimSuffix(stem, a.suffix) + a.repl
		}
	}
	for _, a := range mpNomOne {
		if strings.HasSuffix(stem, a.suffix) {
			return strings.TrimSuffix(stem, a.suffix) + a.repl
		}
	}
	if softIe {
		return stem + "i"
	}
	return stem + "y"
}

// DeclineAdjective produces all thirty forms for an adjective lemma given in
// the masculine nominative singular. Animacy only affects the masculine
// singular accusative; the masculine-personal plural always syncretizes
// genitive, accusative and locative.
func DeclineAdjective(voc string, animate bool) (models.ParadigmTable, error) {
	voc = strings.TrimSpace(voc)
	if voc == "" {
		return models.ParadigmTable{}, ErrEmptyLemma
	}
	stem := adjStem(voc)
	softIm := adjSoftForImYm(stem, voc)
	softIe := adjIeNeeded(stem, voc)

	genSuf, datSuf := "ego", "emu"
	if softIe {
		genSuf, datSuf = "iego", "iemu"
	}
	imYm, imiYmi := "ym", "ymi"
	if softIm {
		imYm, imiYmi = "im", "imi"
	}
	ichYch, ieE := "ych", "e"
	if softIe {
		ichYch, ieE = "ich", "ie"
	}

	var sgM, sgF, sgN, plMo, plNmo models.CaseForms

	sgM.Nominative = voc
	sgM.Genitive = stem + genSuf
	sgM.Dative = stem + datSuf
	if animate {
		sgM.Accusative = sgM.Genitive
	} else {
		sgM.Accusative = sgM.Nominative
	}
	sgM.Instrumental = stem + imYm
	sgM.Locative = stem + imYm

	sgF.Nominative = stem + "a"
	sgF.Genitive = stem + "ej"
	sgF.Dative = stem + "ej"
	sgF.Accusative = stem + "ą"
	sgF.Instrumental = stem + "ą"
	sgF.Locative = stem + "ej"

	sgN.Nominative = stem + ieE
	sgN.Genitive = stem + genSuf
	sgN.Dative = stem + datSuf
	sgN.Accusative = sgN.Nominative
	sgN.Instrumental = stem + imYm
	sgN.Locative = stem + imYm

	plMo.Nominative = mascPersonalNom(stem, softIe)
	plMo.Genitive = stem + ichYch
	plMo.Dative = stem + imYm
	plMo.Accusative = plMo.Genitive // unconditional three-way merge
	plMo.Instrumental = stem + imiYmi
	plMo.Locative = plMo.Genitive

	plNmo.Nominative = stem + ieE
	plNmo.Genitive = stem + ichYch
	plNmo.Dative = stem + imYm
	plNmo.Accusative = plNmo.Nominative
	plNmo.Instrumental = stem + imiYmi
	plNmo.Locative = plNmo.Genitive

	return models.ParadigmTable{
		MascSingular:   sgM,
		FemSingular:    sgF,
		NeutSingular:   sgN,
		MascPersonalPl: plMo,
		OtherPl:        plNmo,
	}, nil
}
