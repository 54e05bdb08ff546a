package models

import (
	"encoding/json"
	"testing"
)

func TestRelatedWordUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RelatedWord
	}{
		{
			name:     "bare string",
			input:    `"Achtungserfolg"`,
			expected: RelatedWord{German: "Achtungserfolg"},
		},
		{
			name:     "german english pair",
			input:    `{"german": "Aufmerksamkeit", "english": "attentiveness"}`,
			expected: RelatedWord{German: "Aufmerksamkeit", English: "attentiveness", Pair: true},
		},
		{
			name:     "pair with empty english stays a pair",
			input:    `{"german": "Obacht", "english": ""}`,
			expected: RelatedWord{German: "Obacht", Pair: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rw RelatedWord
			if err := json.Unmarshal([]byte(tt.input), &rw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if rw != tt.expected {
				t.Errorf("Unmarshal() = %+v, want %+v", rw, tt.expected)
			}
		})
	}
}

func TestRelatedWordRoundTrip(t *testing.T) {
	inputs := []string{
		`"Achtungserfolg"`,
		`{"german":"Aufmerksamkeit","english":"attentiveness"}`,
	}
	for _, input := range inputs {
		var rw RelatedWord
		if err := json.Unmarshal([]byte(input), &rw); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", input, err)
		}
		out, err := json.Marshal(rw)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(out) != input {
			t.Errorf("round trip of %s produced %s", input, out)
		}
	}
}

func TestFrequencyValueUnmarshal(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var f FrequencyValue
		if err := json.Unmarshal([]byte(`3`), &f); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if f.Number == nil || *f.Number != 3 {
			t.Errorf("Number = %v, want 3", f.Number)
		}
	})

	t.Run("string", func(t *testing.T) {
		var f FrequencyValue
		if err := json.Unmarshal([]byte(`"4 out of 7"`), &f); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if f.Number != nil || f.Text != "4 out of 7" {
			t.Errorf("got %+v, want text value", f)
		}
	})

	t.Run("null pointer field stays nil", func(t *testing.T) {
		var entry VocabularyEntry
		blob := `{"word": "Hallo", "english": "hello", "frequency": null}`
		if err := json.Unmarshal([]byte(blob), &entry); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if entry.Frequency != nil {
			t.Errorf("Frequency = %+v, want nil", entry.Frequency)
		}
	})
}

func TestVocabularyEntryUnmarshal(t *testing.T) {
	// A representative record as produced by the extraction pipeline.
	blob := `{
		"word": "die Achtung",
		"partOfSpeech": "noun",
		"english": "attention",
		"composition": ["acht", "ung"],
		"decompositionMeaning": ["respect"],
		"frequency": "4 out of 7",
		"connected_words": ["Achtungserfolg"],
		"synonyms": [{"german": "Aufmerksamkeit", "english": "attentiveness"}],
		"compounds": ["Hochachtung", {"german": "Missachtung", "english": "disregard"}],
		"examples": [{"german": "Achtung, Stufe!", "english": "Attention, step!"}],
		"etymology": "From Middle High German ahtunge.",
		"source_url": "https://www.dwds.de/wb/Achtung"
	}`

	var entry VocabularyEntry
	if err := json.Unmarshal([]byte(blob), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry.Word != "die Achtung" || entry.English != "attention" {
		t.Errorf("word/english = %q/%q", entry.Word, entry.English)
	}
	if len(entry.Composition) != 2 || len(entry.DecompositionMeaning) != 1 {
		t.Errorf("composition lengths = %d/%d, want 2/1",
			len(entry.Composition), len(entry.DecompositionMeaning))
	}
	if entry.Frequency == nil || entry.Frequency.Text != "4 out of 7" {
		t.Errorf("frequency = %+v", entry.Frequency)
	}
	if len(entry.Compounds) != 2 {
		t.Fatalf("compounds = %d, want 2", len(entry.Compounds))
	}
	if entry.Compounds[0].Pair || !entry.Compounds[1].Pair {
		t.Error("mixed compound shapes not preserved")
	}
	if len(entry.Examples) != 1 || entry.Examples[0].German != "Achtung, Stufe!" {
		t.Errorf("examples = %+v", entry.Examples)
	}
	if entry.Etymology == "" || entry.SourceURL == "" {
		t.Error("etymology and source_url should be populated")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"A1", LevelA1, true},
		{"a1", LevelA1, true},
		{"C2", LevelC2, true},
		{"mix", LevelMix, true},
		{"MIX", LevelMix, true},
		{"D1", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := ParseLevel(tt.input)
			if ok != tt.ok || level != tt.expected {
				t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)",
					tt.input, level, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestBaseLevelsExcludeMix(t *testing.T) {
	for _, lvl := range BaseLevels() {
		if lvl == LevelMix {
			t.Error("BaseLevels must not contain Mix")
		}
	}
	if got := len(BaseLevels()); got != 6 {
		t.Errorf("BaseLevels() has %d levels, want 6", got)
	}
}
