package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/suhedayldrm/pond/internal/database"
	"github.com/suhedayldrm/pond/internal/models"
)

// VocabRepository persists the vocabulary dataset. Enrichment fields are
// stored as JSON text columns; the row order within a level is fixed by the
// position column, which preserves the dataset file order.
type VocabRepository struct {
	db *database.DB
}

// NewVocabRepository creates a new vocabulary repository.
func NewVocabRepository(db *database.DB) *VocabRepository {
	return &VocabRepository{db: db}
}

// ReplaceLevel atomically swaps a level's entries for the given set, used by
// the importer and the startup seeder.
func (r *VocabRepository) ReplaceLevel(level models.Level, entries []models.VocabularyEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vocab_entries WHERE level = ?", string(level)); err != nil {
		return fmt.Errorf("failed to clear level %s: %w", level, err)
	}

	insert := `
		INSERT INTO vocab_entries (
			level, position, word, part_of_speech, english,
			composition, decomposition_meaning, frequency,
			connected_words, synonyms, compounds, examples,
			etymology, source_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, entry := range entries {
		cols, err := encodeEnrichment(entry)
		if err != nil {
			return fmt.Errorf("failed to encode entry %q: %w", entry.Word, err)
		}
		_, err = tx.Exec(insert,
			string(level), i, entry.Word, entry.PartOfSpeech, entry.English,
			cols.composition, cols.decompositionMeaning, cols.frequency,
			cols.connectedWords, cols.synonyms, cols.compounds, cols.examples,
			entry.Etymology, entry.SourceURL,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %q: %w", entry.Word, err)
		}
	}

	return tx.Commit()
}

// LoadLevel retrieves one level's entries in dataset order.
func (r *VocabRepository) LoadLevel(level models.Level) ([]models.VocabularyEntry, error) {
	rows, err := r.db.Query(selectColumns+" WHERE level = ? ORDER BY position", string(level))
	if err != nil {
		return nil, fmt.Errorf("failed to query level %s: %w", level, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LoadAll retrieves every stored level, keyed by level.
func (r *VocabRepository) LoadAll() (map[models.Level][]models.VocabularyEntry, error) {
	byLevel := make(map[models.Level][]models.VocabularyEntry)
	for _, lvl := range models.BaseLevels() {
		entries, err := r.LoadLevel(lvl)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			byLevel[lvl] = entries
		}
	}
	return byLevel, nil
}

// CountAll reports the number of stored entries across all levels.
func (r *VocabRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM vocab_entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

const selectColumns = `
	SELECT word, part_of_speech, english,
	       composition, decomposition_meaning, frequency,
	       connected_words, synonyms, compounds, examples,
	       etymology, source_url
	FROM vocab_entries
`

type enrichmentColumns struct {
	composition          string
	decompositionMeaning string
	frequency            sql.NullString
	connectedWords       string
	synonyms             string
	compounds            string
	examples             string
}

func encodeEnrichment(entry models.VocabularyEntry) (enrichmentColumns, error) {
	var cols enrichmentColumns
	var err error

	if cols.composition, err = encodeJSON(entry.Composition); err != nil {
		return cols, err
	}
	if cols.decompositionMeaning, err = encodeJSON(entry.DecompositionMeaning); err != nil {
		return cols, err
	}
	if entry.Frequency != nil {
		raw, err := json.Marshal(entry.Frequency)
		if err != nil {
			return cols, err
		}
		cols.frequency = sql.NullString{String: string(raw), Valid: true}
	}
	if cols.connectedWords, err = encodeJSON(entry.ConnectedWords); err != nil {
		return cols, err
	}
	if cols.synonyms, err = encodeJSON(entry.Synonyms); err != nil {
		return cols, err
	}
	if cols.compounds, err = encodeJSON(entry.Compounds); err != nil {
		return cols, err
	}
	if cols.examples, err = encodeJSON(entry.Examples); err != nil {
		return cols, err
	}
	return cols, nil
}

func encodeJSON(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func scanEntries(rows *sql.Rows) ([]models.VocabularyEntry, error) {
	var entries []models.VocabularyEntry
	for rows.Next() {
		var entry models.VocabularyEntry
		var cols enrichmentColumns
		var etymology, sourceURL sql.NullString

		err := rows.Scan(
			&entry.Word, &entry.PartOfSpeech, &entry.English,
			&cols.composition, &cols.decompositionMeaning, &cols.frequency,
			&cols.connectedWords, &cols.synonyms, &cols.compounds, &cols.examples,
			&etymology, &sourceURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		if err := decodeEnrichment(cols, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode entry %q: %w", entry.Word, err)
		}
		entry.Etymology = etymology.String
		entry.SourceURL = sourceURL.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func decodeEnrichment(cols enrichmentColumns, entry *models.VocabularyEntry) error {
	if err := decodeJSON(cols.composition, &entry.Composition); err != nil {
		return err
	}
	if err := decodeJSON(cols.decompositionMeaning, &entry.DecompositionMeaning); err != nil {
		return err
	}
	if cols.frequency.Valid {
		freq := &models.FrequencyValue{}
		if err := json.Unmarshal([]byte(cols.frequency.String), freq); err != nil {
			return err
		}
		if freq.Number != nil || freq.Text != "" {
			entry.Frequency = freq
		}
	}
	if err := decodeJSON(cols.connectedWords, &entry.ConnectedWords); err != nil {
		return err
	}
	if err := decodeJSON(cols.synonyms, &entry.Synonyms); err != nil {
		return err
	}
	if err := decodeJSON(cols.compounds, &entry.Compounds); err != nil {
		return err
	}
	return decodeJSON(cols.examples, &entry.Examples)
}

func decodeJSON(raw string, v interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}
