// Package practice selects quiz batches and records answer outcomes.
//
// Selection is deterministic within a calendar day: candidates are ranked by
// a weight/staleness score and ties are broken by a hash-derived jitter keyed
// on (user, word, day), so repeated calls on the same day build the same
// batch while the ordering drifts from day to day.
package practice

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"time"

	"github.com/example/polbot/pkg/models"
)

const (
	// DefaultBatchSize is the usual number of cards per practice round.
	DefaultBatchSize = 20
	// CandidateLimit caps the candidate pool for bounded query cost.
	CandidateLimit = 200
	// MaxAgeDays caps the staleness term so very old words don't dominate.
	MaxAgeDays = 30.0
)

// Direction tells which side of the card is shown first.
type Direction string

const (
	VocToMeaning Direction = "vm" // show lemma, ask meaning
	MeaningToVoc Direction = "mv" // show meaning, ask lemma
)

// BatchItem is one quiz card in a practice batch. Ephemeral, never persisted.
type BatchItem struct {
	WordID    int                 `json:"word_id"`
	Voc       string              `json:"voc"`
	Meaning   string              `json:"meaning"`
	Class     models.PartOfSpeech `json:"class"`
	Direction Direction           `json:"direction"`
}

// WordSource supplies the candidate word pool.
type WordSource interface {
	FetchWords(search string, classes []models.PartOfSpeech, limit int) ([]models.Word, error)
}

// ProgressStore reads and writes per-user per-word progress. GetByUserAndWord
// returns (nil, nil) when no row exists yet. UpsertAnswer must be atomic per
// (user, word): create-if-absent, clamp the weight and fold the observation
// into the accuracy average in a single transaction.
type ProgressStore interface {
	GetByUserAndWord(userID int64, wordID int) (*models.UserWordProgress, error)
	UpsertAnswer(userID int64, wordID int, delta int, correct bool, now time.Time) error
}

// BatchOptions controls batch composition. A zero Now means time.Now().
type BatchOptions struct {
	K       int
	Search  string
	Classes []models.PartOfSpeech
	Now     time.Time
}

// PickBatch scores and ranks the candidate pool into an ordered batch of at
// most opts.K items. An empty pool or non-positive K yields an empty batch,
// not an error. Batches are independent across calls: no cursor, no cooldown.
func PickBatch(words WordSource, store ProgressStore, userID int64, opts BatchOptions) ([]BatchItem, error) {
	if opts.K <= 0 {
		return nil, nil
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	candidates, err := words.FetchWords(opts.Search, opts.Classes, CandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate words: %v", err)
	}

	dayKey := now.Unix() / 86400
	type scoredWord struct {
		word   models.Word
		score  float64
		jitter float64
	}
	scored := make([]scoredWord, 0, len(candidates))
	for _, w := range candidates {
		if w.Voc == "" || w.Meaning == "" {
			continue // not answerable
		}
		weight := models.DefaultWeight
		var last time.Time
		progress, err := store.GetByUserAndWord(userID, w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get progress for word %d: %v", w.ID, err)
		}
		if progress != nil {
			weight = progress.Weight
			if progress.LastPracticed.Valid {
				last = progress.LastPracticed.Time
			}
		}
		scored = append(scored, scoredWord{
			word:   w,
			score:  score(weight, last, now),
			jitter: jitter(userID, w.ID, dayKey),
		})
	}

	// Highest score first; jitter breaks ties.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].jitter > scored[j].jitter
	})
	if len(scored) > opts.K {
		scored = scored[:opts.K]
	}

	batch := make([]BatchItem, 0, len(scored))
	for i, s := range scored {
		direction := VocToMeaning
		if i%2 == 1 {
			direction = MeaningToVoc
		}
		batch = append(batch, BatchItem{
			WordID:    s.word.ID,
			Voc:       s.word.Voc,
			Meaning:   s.word.Meaning,
			Class:     s.word.Class,
			Direction: direction,
		})
	}
	return batch, nil
}

// score biases toward high-weight (error-prone) and stale words. Words never
// practiced carry no staleness term.
func score(weight int, last time.Time, now time.Time) float64 {
	var ageDays float64
	if !last.IsZero() {
		ageDays = now.Sub(last).Hours() / 24
		if ageDays < 0 {
			ageDays = 0
		}
		if ageDays > MaxAgeDays {
			ageDays = MaxAgeDays
		}
	}
	return 10*float64(weight) + ageDays
}

// jitter derives a stable pseudo-random value in [0,1) from the
// (user, word, day) triple: top 53 bits of a sha256 digest as a float.
func jitter(userID int64, wordID int, dayKey int64) float64 {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%d:%d", userID, wordID, dayKey)))
	return float64(binary.BigEndian.Uint64(sum[:8])>>11) / float64(1<<53)
}
