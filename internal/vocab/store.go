// Package vocab holds the in-memory Vocabulary Store and the loader/importer
// for the dataset files produced by the offline extraction pipeline.
package vocab

import (
	"github.com/suhedayldrm/pond/internal/models"
)

// Store is the immutable, fully resident mapping from level to word pool.
// It is built once at startup; WordsFor hands out copies so callers can
// shuffle without corrupting the store.
type Store struct {
	levels map[models.Level][]models.VocabularyEntry
	mix    []models.VocabularyEntry
}

// NewStore builds a store from per-level entry slices. The Mix pool is
// derived as the concatenation of the base levels in A1..C2 order; a Mix key
// in the input is ignored.
func NewStore(byLevel map[models.Level][]models.VocabularyEntry) *Store {
	s := &Store{levels: make(map[models.Level][]models.VocabularyEntry)}
	for _, lvl := range models.BaseLevels() {
		entries := append([]models.VocabularyEntry(nil), byLevel[lvl]...)
		s.levels[lvl] = entries
		s.mix = append(s.mix, entries...)
	}
	return s
}

// WordsFor returns the word pool for a level. Unknown or empty levels yield
// an empty slice, never an error; callers treat empty as a configuration
// defect and refuse to start a round.
func (s *Store) WordsFor(level models.Level) []models.VocabularyEntry {
	if level == models.LevelMix {
		return append([]models.VocabularyEntry(nil), s.mix...)
	}
	return append([]models.VocabularyEntry(nil), s.levels[level]...)
}

// Counts reports the pool size per selectable level, Mix included.
func (s *Store) Counts() map[models.Level]int {
	counts := make(map[models.Level]int, len(s.levels)+1)
	for lvl, entries := range s.levels {
		counts[lvl] = len(entries)
	}
	counts[models.LevelMix] = len(s.mix)
	return counts
}
