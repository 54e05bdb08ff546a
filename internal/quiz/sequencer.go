package quiz

import (
	"math/rand"

	"github.com/suhedayldrm/pond/internal/models"
)

// Policy names a word-sequencing strategy.
type Policy string

const (
	// PolicyCycle permutes the pool once per cycle and walks it with a
	// cursor, re-permuting at the wrap. Every word appears exactly once per
	// cycle before any repeat. This is the default policy.
	PolicyCycle Policy = "cycle"

	// PolicyRecency draws uniformly from words not recently shown, clearing
	// the exclusion set once the whole pool has been seen. Coverage before
	// repeats is not guaranteed; a consecutive repeat is possible right
	// after the set resets.
	PolicyRecency Policy = "recency"
)

// Sequencer decides which entry is shown next. Implementations own their
// working copy of the pool; the engine never inspects it.
type Sequencer interface {
	// Next returns the entry to display. leaving is the entry currently on
	// screen, or nil at round start. The pool is never empty.
	Next(leaving *models.VocabularyEntry) models.VocabularyEntry

	// Len reports the pool size.
	Len() int
}

// newSequencer builds the sequencer for a policy. Unknown policies fall back
// to the cycle policy.
func newSequencer(policy Policy, pool []models.VocabularyEntry, rng *rand.Rand) Sequencer {
	if policy == PolicyRecency {
		return newRecencySequencer(pool, rng)
	}
	return newCycleSequencer(pool, rng)
}

// cycleSequencer walks a uniformly shuffled copy of the pool and reshuffles
// when the cursor runs off the end. Consecutive permutations are independent
// draws.
type cycleSequencer struct {
	pool   []models.VocabularyEntry
	cursor int
	rng    *rand.Rand
}

func newCycleSequencer(pool []models.VocabularyEntry, rng *rand.Rand) *cycleSequencer {
	s := &cycleSequencer{
		pool: append([]models.VocabularyEntry(nil), pool...),
		rng:  rng,
	}
	s.shuffle()
	return s
}

func (s *cycleSequencer) shuffle() {
	s.rng.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})
}

func (s *cycleSequencer) Next(leaving *models.VocabularyEntry) models.VocabularyEntry {
	if s.cursor >= len(s.pool) {
		s.shuffle()
		s.cursor = 0
	}
	entry := s.pool[s.cursor]
	s.cursor++
	return entry
}

func (s *cycleSequencer) Len() int {
	return len(s.pool)
}

// recencySequencer draws uniformly from entries outside the recently-shown
// set. The entry being left joins the set only after its successor has been
// chosen, so a repeat can only happen immediately after a set reset.
type recencySequencer struct {
	pool []models.VocabularyEntry
	seen map[string]bool
	rng  *rand.Rand
}

func newRecencySequencer(pool []models.VocabularyEntry, rng *rand.Rand) *recencySequencer {
	return &recencySequencer{
		pool: append([]models.VocabularyEntry(nil), pool...),
		seen: make(map[string]bool),
		rng:  rng,
	}
}

func (s *recencySequencer) Next(leaving *models.VocabularyEntry) models.VocabularyEntry {
	candidates := make([]models.VocabularyEntry, 0, len(s.pool))
	for _, entry := range s.pool {
		if s.seen[entry.Word] {
			continue
		}
		if leaving != nil && entry.Word == leaving.Word {
			continue
		}
		candidates = append(candidates, entry)
	}
	if len(candidates) == 0 {
		// Everything has been shown: start over with a uniform draw across
		// the whole pool, which may repeat the word being left.
		s.seen = make(map[string]bool)
		candidates = s.pool
	}

	entry := candidates[s.rng.Intn(len(candidates))]

	if leaving != nil {
		s.seen[leaving.Word] = true
	}
	return entry
}

func (s *recencySequencer) Len() int {
	return len(s.pool)
}
