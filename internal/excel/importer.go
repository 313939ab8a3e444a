package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/polbot/internal/database"
	"github.com/example/polbot/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	VocColumn     string // Column with the Polish lemma
	MeaningColumn string // Column with the translation
	ClassColumn   string // Column with the part-of-speech tag
	GenderColumn  string // Column with the gender (m/f/n)
	AnimateColumn string // Column with the animacy flag
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		VocColumn:     "A",
		MeaningColumn: "B",
		ClassColumn:   "C",
		GenderColumn:  "D",
		AnimateColumn: "E",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportWords imports words from an Excel or CSV file
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports words from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, wordRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports words from a CSV file with the same column layout
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, wordRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow upserts a single word row keyed by its lemma
func processRow(row []string, config ImportConfig, wordRepo *database.WordRepository, result *ImportResult) error {
	var voc, meaning, class, gender, animate string

	if colIdx := columnToIndex(config.VocColumn); colIdx < len(row) {
		voc = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.MeaningColumn); colIdx < len(row) {
		meaning = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.ClassColumn); colIdx < len(row) {
		class = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.GenderColumn); colIdx < len(row) {
		gender = strings.ToLower(strings.TrimSpace(row[colIdx]))
	}
	if colIdx := columnToIndex(config.AnimateColumn); colIdx < len(row) {
		animate = strings.ToLower(strings.TrimSpace(row[colIdx]))
	}

	if voc == "" || meaning == "" {
		result.Skipped++
		return nil
	}

	word := models.Word{
		Voc:     voc,
		Meaning: meaning,
		Class:   models.ParsePartOfSpeech(class),
		Animate: animate == "1" || animate == "true" || animate == "yes" || animate == "tak",
	}
	switch gender {
	case "m", "f", "n":
		word.Gender = models.Gender(gender)
	}

	existing, err := wordRepo.GetByVoc(voc)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := wordRepo.Create(&word); err != nil {
			return err
		}
		result.Created++
		return nil
	}

	// Re-imports refresh the descriptive fields but keep the stored forms.
	existing.Meaning = word.Meaning
	existing.Class = word.Class
	existing.Gender = word.Gender
	existing.Animate = word.Animate
	if err := wordRepo.Update(existing); err != nil {
		return err
	}
	result.Updated++
	return nil
}

// columnToIndex converts a column letter ("A", "B", ...) to a 0-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return 0
		}
		index = index*26 + int(r-'A') + 1
	}
	if index == 0 {
		return 0
	}
	return index - 1
}
