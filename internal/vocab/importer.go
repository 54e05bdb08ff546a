package vocab

import (
	"fmt"
	"log"

	"github.com/suhedayldrm/pond/internal/models"
)

// Replacer is the slice of the repository the importer needs.
type Replacer interface {
	ReplaceLevel(level models.Level, entries []models.VocabularyEntry) error
}

// ImportDataset reads the dataset directory and replaces each present level
// in the repository, returning the imported count per level. Entries without
// a headword or canonical answer are dropped with a log line; an extraction
// run that was interrupted mid-word leaves such stubs behind.
func ImportDataset(repo Replacer, dir string) (map[models.Level]int, error) {
	byLevel, err := LoadDataset(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	counts := make(map[models.Level]int)
	for _, lvl := range models.BaseLevels() {
		entries, ok := byLevel[lvl]
		if !ok {
			continue
		}

		valid, dropped := Validate(entries)
		if dropped > 0 {
			log.Printf("Level %s: dropped %d incomplete entries", lvl, dropped)
		}

		if err := repo.ReplaceLevel(lvl, valid); err != nil {
			return nil, fmt.Errorf("failed to store level %s: %w", lvl, err)
		}
		counts[lvl] = len(valid)
	}
	return counts, nil
}
