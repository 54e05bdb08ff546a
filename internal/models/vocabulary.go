package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VocabularyEntry is one record of the bundled vocabulary dataset, produced
// by the offline extraction pipeline. Entries are immutable once loaded.
type VocabularyEntry struct {
	// Word is the German headword as displayed; it may carry an inline
	// article or gender marker (e.g. "die Achtung").
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`

	// English is the single canonical translation accepted as a correct
	// answer.
	English string `json:"english"`

	// Composition holds morpheme segments (prefix/root/suffix).
	// DecompositionMeaning[i] describes Composition[i] and may be shorter
	// than Composition; missing meanings render as empty.
	Composition          []string `json:"composition"`
	DecompositionMeaning []string `json:"decompositionMeaning"`

	// Frequency is a number, a "X out of Y" style string, or absent.
	Frequency *FrequencyValue `json:"frequency"`

	ConnectedWords []RelatedWord `json:"connected_words"`
	Synonyms       []RelatedWord `json:"synonyms"`
	Compounds      []RelatedWord `json:"compounds"`
	Examples       []ExamplePair `json:"examples"`

	// Etymology is a short translated note from the dictionary source; often
	// empty.
	Etymology string `json:"etymology,omitempty"`

	// SourceURL records provenance; not used in gameplay.
	SourceURL string `json:"source_url,omitempty"`
}

// ExamplePair is one example sentence with its translation.
type ExamplePair struct {
	German  string `json:"german"`
	English string `json:"english"`
}

// RelatedWord is an element of the connected_words, synonyms, or compounds
// lists. The dataset encodes these either as a bare German string or as a
// {german, english} object; Pair records which shape was seen so the
// original encoding round-trips.
type RelatedWord struct {
	German  string `json:"german"`
	English string `json:"english,omitempty"`
	Pair    bool   `json:"-"`
}

// UnmarshalJSON accepts either a JSON string or a {german, english} object.
func (rw *RelatedWord) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("related word: empty value")
	}

	if trimmed[0] == '"' {
		var bare string
		if err := json.Unmarshal(trimmed, &bare); err != nil {
			return fmt.Errorf("related word: %w", err)
		}
		*rw = RelatedWord{German: bare}
		return nil
	}

	var pair struct {
		German  string `json:"german"`
		English string `json:"english"`
	}
	if err := json.Unmarshal(trimmed, &pair); err != nil {
		return fmt.Errorf("related word: %w", err)
	}
	*rw = RelatedWord{German: pair.German, English: pair.English, Pair: true}
	return nil
}

// MarshalJSON writes the shape that was read: a bare string or an object.
func (rw RelatedWord) MarshalJSON() ([]byte, error) {
	if !rw.Pair {
		return json.Marshal(rw.German)
	}
	return json.Marshal(struct {
		German  string `json:"german"`
		English string `json:"english"`
	}{rw.German, rw.English})
}

// FrequencyValue holds the loosely typed frequency field: the dataset stores
// either a number or a string such as "4 out of 7". Absent frequencies are
// represented by a nil *FrequencyValue.
type FrequencyValue struct {
	Number *float64
	Text   string
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (f *FrequencyValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = FrequencyValue{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("frequency: %w", err)
		}
		*f = FrequencyValue{Text: s}
		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("frequency: %w", err)
	}
	*f = FrequencyValue{Number: &n}
	return nil
}

// MarshalJSON writes the value back in its original shape.
func (f FrequencyValue) MarshalJSON() ([]byte, error) {
	if f.Number != nil {
		return json.Marshal(*f.Number)
	}
	if f.Text != "" {
		return json.Marshal(f.Text)
	}
	return []byte("null"), nil
}
