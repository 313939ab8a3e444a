package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/polbot/pkg/models"
)

// WordRepository handles database operations for words
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetAll returns all words
func (r *WordRepository) GetAll() ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, "SELECT * FROM words ORDER BY voc")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// GetByID returns a word by ID
func (r *WordRepository) GetByID(id int) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT * FROM words WHERE id = ?")
	err := DB.Get(&word, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %v", err)
	}
	return &word, nil
}

// GetByVoc returns a word by its lemma, or nil if it doesn't exist
func (r *WordRepository) GetByVoc(voc string) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT * FROM words WHERE voc = ?")
	err := DB.Get(&word, query, voc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by voc: %v", err)
	}
	return &word, nil
}

// FetchWords returns the candidate pool for practice: answerable words,
// optionally narrowed by a substring search on lemma/meaning and by a
// part-of-speech set, capped at limit rows.
func (r *WordRepository) FetchWords(search string, classes []models.PartOfSpeech, limit int) ([]models.Word, error) {
	where := []string{"voc <> ''", "meaning <> ''"}
	args := []interface{}{}

	if search != "" {
		where = append(where, "(voc LIKE ? OR meaning LIKE ?)")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if len(classes) > 0 {
		where = append(where, "class IN (?)")
		args = append(args, classes)
	}

	query := fmt.Sprintf("SELECT * FROM words WHERE %s LIMIT %d", strings.Join(where, " AND "), limit)
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate query: %v", err)
	}

	var words []models.Word
	err = DB.Select(&words, DB.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate words: %v", err)
	}
	return words, nil
}

// Create inserts a new word
func (r *WordRepository) Create(word *models.Word) error {
	if DB.DriverName() == "postgres" {
		query := `
			INSERT INTO words (voc, meaning, class, gender, animate, forms, adj_forms)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`
		return DB.QueryRow(
			query,
			word.Voc,
			word.Meaning,
			word.Class,
			word.Gender,
			word.Animate,
			word.Forms,
			word.AdjForms,
		).Scan(&word.ID, &word.CreatedAt, &word.UpdatedAt)
	}

	// SQLite (no RETURNING)
	query := `
		INSERT INTO words (voc, meaning, class, gender, animate, forms, adj_forms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := DB.Exec(
		query,
		word.Voc,
		word.Meaning,
		word.Class,
		word.Gender,
		word.Animate,
		word.Forms,
		word.AdjForms,
	)
	if err != nil {
		return fmt.Errorf("failed to create word: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	word.ID = int(id)

	err = DB.QueryRow("SELECT created_at, updated_at FROM words WHERE id = ?", word.ID).
		Scan(&word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to get timestamps: %v", err)
	}
	return nil
}

// Update modifies an existing word
func (r *WordRepository) Update(word *models.Word) error {
	query := DB.Rebind(`
		UPDATE words SET
			voc = ?,
			meaning = ?,
			class = ?,
			gender = ?,
			animate = ?,
			forms = ?,
			adj_forms = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	_, err := DB.Exec(
		query,
		word.Voc,
		word.Meaning,
		word.Class,
		word.Gender,
		word.Animate,
		word.Forms,
		word.AdjForms,
		word.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update word: %v", err)
	}
	return nil
}

// UpdateForms writes the generated declension tables for a word. Callers are
// expected to pass merged tables; existing cell values are their concern.
func (r *WordRepository) UpdateForms(id int, forms models.CaseTable, adjForms models.ParadigmTable) error {
	query := DB.Rebind(`
		UPDATE words SET
			forms = ?,
			adj_forms = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	_, err := DB.Exec(query, forms, adjForms, id)
	if err != nil {
		return fmt.Errorf("failed to update word forms: %v", err)
	}
	return nil
}

// Delete removes a word
func (r *WordRepository) Delete(id int) error {
	query := DB.Rebind("DELETE FROM words WHERE id = ?")
	_, err := DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %v", err)
	}
	return nil
}
