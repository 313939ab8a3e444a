package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/polbot/internal/database"
	"github.com/example/polbot/pkg/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	database.DB = db
	require.NoError(t, database.InitSchema())
	t.Cleanup(func() {
		db.Close()
		database.DB = nil
	})
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportWordsFromCSV(t *testing.T) {
	setupTestDB(t)

	path := writeCSV(t, "voc,meaning,class,gender,animate\n"+
		"kot,cat,n,m,tak\n"+
		"dobry,good,adj,,\n"+
		",missing lemma,n,,\n")

	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(config)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	kot, err := database.NewWordRepository().GetByVoc("kot")
	require.NoError(t, err)
	require.NotNil(t, kot)
	assert.Equal(t, models.PartNoun, kot.Class)
	assert.Equal(t, models.Masculine, kot.Gender)
	assert.True(t, kot.Animate)
}

func TestImportWordsUpdatesExisting(t *testing.T) {
	setupTestDB(t)
	words := database.NewWordRepository()

	require.NoError(t, words.Create(&models.Word{Voc: "kot", Meaning: "old meaning", Class: models.PartOther}))

	path := writeCSV(t, "voc,meaning,class,gender,animate\n"+
		"kot,cat,noun,m,1\n")

	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Created)

	kot, err := words.GetByVoc("kot")
	require.NoError(t, err)
	assert.Equal(t, "cat", kot.Meaning)
	assert.Equal(t, models.PartNoun, kot.Class)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 4, columnToIndex("E"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, 0, columnToIndex(""))
}
