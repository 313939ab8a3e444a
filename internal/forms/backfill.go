// Package forms fills in missing declension tables for stored words using
// the grammar engines. Hand-entered forms are never overwritten; only blank
// cells are generated.
package forms

import (
	"fmt"
	"log"

	"github.com/example/polbot/internal/grammar"
	"github.com/example/polbot/pkg/models"
)

// WordStore is the slice of the word repository the backfill needs.
type WordStore interface {
	GetAll() ([]models.Word, error)
	UpdateForms(id int, forms models.CaseTable, adjForms models.ParadigmTable) error
}

// Result summarizes one backfill run.
type Result struct {
	Processed        int
	NounsFilled      int
	AdjectivesFilled int
	Errors           int
}

// Backfill generates declension tables for every noun and adjective that is
// missing some. Words of other classes are skipped. Generation errors are
// logged and counted but don't stop the run.
func Backfill(store WordStore) (Result, error) {
	var result Result

	words, err := store.GetAll()
	if err != nil {
		return result, fmt.Errorf("failed to load words: %v", err)
	}

	for _, word := range words {
		switch word.Class {
		case models.PartNoun:
			if changed, err := fillNoun(store, &word); err != nil {
				log.Printf("Failed to generate forms for %q: %v", word.Voc, err)
				result.Errors++
			} else if changed {
				result.NounsFilled++
			}
		case models.PartAdjective:
			if changed, err := fillAdjective(store, &word); err != nil {
				log.Printf("Failed to generate forms for %q: %v", word.Voc, err)
				result.Errors++
			} else if changed {
				result.AdjectivesFilled++
			}
		default:
			continue
		}
		result.Processed++
	}
	return result, nil
}

func fillNoun(store WordStore, word *models.Word) (bool, error) {
	if !hasBlankCells(word.Forms) {
		return false, nil
	}

	gender := word.Gender
	if gender == models.GenderUnknown {
		gender = grammar.GuessGender(word.Voc)
	}
	generated, err := grammar.DeclineNoun(word.Voc, gender, word.Animate)
	if err != nil {
		return false, err
	}

	merged := word.Forms
	mergeCaseForms(&merged.Singular, generated.Singular)
	mergeCaseForms(&merged.Plural, generated.Plural)
	if merged == word.Forms {
		return false, nil
	}
	if err := store.UpdateForms(word.ID, merged, word.AdjForms); err != nil {
		return false, err
	}
	return true, nil
}

func fillAdjective(store WordStore, word *models.Word) (bool, error) {
	if !hasBlankParadigm(word.AdjForms) {
		return false, nil
	}

	generated, err := grammar.DeclineAdjective(word.Voc, word.Animate)
	if err != nil {
		return false, err
	}

	merged := word.AdjForms
	mergeCaseForms(&merged.MascSingular, generated.MascSingular)
	mergeCaseForms(&merged.FemSingular, generated.FemSingular)
	mergeCaseForms(&merged.NeutSingular, generated.NeutSingular)
	mergeCaseForms(&merged.MascPersonalPl, generated.MascPersonalPl)
	mergeCaseForms(&merged.OtherPl, generated.OtherPl)
	if merged == word.AdjForms {
		return false, nil
	}
	if err := store.UpdateForms(word.ID, word.Forms, merged); err != nil {
		return false, err
	}
	return true, nil
}

func hasBlankCells(table models.CaseTable) bool {
	for _, c := range models.Cases {
		if table.Singular.Form(c) == "" || table.Plural.Form(c) == "" {
			return true
		}
	}
	return false
}

func hasBlankParadigm(table models.ParadigmTable) bool {
	for _, forms := range []models.CaseForms{
		table.MascSingular,
		table.FemSingular,
		table.NeutSingular,
		table.MascPersonalPl,
		table.OtherPl,
	} {
		for _, c := range models.Cases {
			if forms.Form(c) == "" {
				return true
			}
		}
	}
	return false
}

func mergeCaseForms(dst *models.CaseForms, src models.CaseForms) {
	for _, c := range models.Cases {
		if dst.Form(c) == "" {
			dst.SetForm(c, src.Form(c))
		}
	}
}
