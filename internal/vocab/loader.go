package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suhedayldrm/pond/internal/models"
)

// LoadDataset reads the per-level JSON files written by the extraction
// pipeline from dir (A1.json .. C2.json). A missing level file leaves that
// level empty; a file that exists but cannot be parsed is an error.
func LoadDataset(dir string) (map[models.Level][]models.VocabularyEntry, error) {
	byLevel := make(map[models.Level][]models.VocabularyEntry)
	for _, lvl := range models.BaseLevels() {
		path := filepath.Join(dir, string(lvl)+".json")
		entries, err := loadLevelFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("level %s: %w", lvl, err)
		}
		byLevel[lvl] = entries
	}
	return byLevel, nil
}

func loadLevelFile(path string) ([]models.VocabularyEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []models.VocabularyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Validate drops entries unusable for gameplay (no headword or no canonical
// answer) and reports them. The composition/meaning alignment is not
// enforced; a meaning list shorter than the composition renders with blanks.
func Validate(entries []models.VocabularyEntry) (valid []models.VocabularyEntry, dropped int) {
	valid = make([]models.VocabularyEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Word == "" || entry.English == "" {
			dropped++
			continue
		}
		valid = append(valid, entry)
	}
	return valid, dropped
}
