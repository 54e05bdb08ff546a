package repository

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/suhedayldrm/pond/internal/database"
	"github.com/suhedayldrm/pond/internal/models"
)

func setupTestRepo(t *testing.T) *VocabRepository {
	t.Helper()

	db, err := database.Open("sqlite", database.DialectConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewVocabRepository(db)
}

func float(v float64) *float64 { return &v }

func sampleEntries() []models.VocabularyEntry {
	return []models.VocabularyEntry{
		{
			Word:                 "die Achtung",
			PartOfSpeech:         "noun",
			English:              "attention",
			Composition:          []string{"acht", "ung"},
			DecompositionMeaning: []string{"respect", "noun suffix"},
			Frequency:            &models.FrequencyValue{Text: "4 out of 7"},
			ConnectedWords: []models.RelatedWord{
				{German: "achten", English: "to respect", Pair: true},
			},
			Synonyms: []models.RelatedWord{{German: "der Respekt"}},
			Examples: []models.ExamplePair{
				{German: "Achtung, Stufe!", English: "Attention, step!"},
			},
			Etymology: "from Middle High German ahtunge",
			SourceURL: "https://www.dwds.de/wb/Achtung",
		},
		{
			Word:         "Hallo",
			PartOfSpeech: "interjection",
			English:      "hello",
		},
	}
}

func TestReplaceLevelRoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	want := sampleEntries()

	if err := repo.ReplaceLevel(models.LevelA1, want); err != nil {
		t.Fatalf("ReplaceLevel: %v", err)
	}

	got, err := repo.LoadLevel(models.LevelA1)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("entry %d:\n got  %+v\n want %+v", i, got[i], want[i])
		}
	}
}

func TestReplaceLevelSwapsEntries(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.ReplaceLevel(models.LevelA1, sampleEntries()); err != nil {
		t.Fatalf("first ReplaceLevel: %v", err)
	}
	replacement := []models.VocabularyEntry{
		{Word: "der Baum", PartOfSpeech: "noun", English: "tree"},
	}
	if err := repo.ReplaceLevel(models.LevelA1, replacement); err != nil {
		t.Fatalf("second ReplaceLevel: %v", err)
	}

	got, err := repo.LoadLevel(models.LevelA1)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if len(got) != 1 || got[0].Word != "der Baum" {
		t.Errorf("entries after replace = %+v", got)
	}
}

func TestReplaceLevelLeavesOtherLevelsAlone(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.ReplaceLevel(models.LevelA1, sampleEntries()); err != nil {
		t.Fatalf("ReplaceLevel A1: %v", err)
	}
	if err := repo.ReplaceLevel(models.LevelB1, []models.VocabularyEntry{
		{Word: "die Verantwortung", PartOfSpeech: "noun", English: "responsibility"},
	}); err != nil {
		t.Fatalf("ReplaceLevel B1: %v", err)
	}
	if err := repo.ReplaceLevel(models.LevelB1, nil); err != nil {
		t.Fatalf("clearing B1: %v", err)
	}

	a1, err := repo.LoadLevel(models.LevelA1)
	if err != nil {
		t.Fatalf("LoadLevel A1: %v", err)
	}
	if len(a1) != 2 {
		t.Errorf("A1 has %d entries after clearing B1, want 2", len(a1))
	}
}

func TestLoadLevelPreservesOrder(t *testing.T) {
	repo := setupTestRepo(t)

	entries := []models.VocabularyEntry{
		{Word: "zuerst", English: "first"},
		{Word: "danach", English: "afterwards"},
		{Word: "zuletzt", English: "last"},
	}
	if err := repo.ReplaceLevel(models.LevelA2, entries); err != nil {
		t.Fatalf("ReplaceLevel: %v", err)
	}

	got, err := repo.LoadLevel(models.LevelA2)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	for i, entry := range entries {
		if got[i].Word != entry.Word {
			t.Errorf("position %d = %q, want %q", i, got[i].Word, entry.Word)
		}
	}
}

func TestLoadAllAndCountAll(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.ReplaceLevel(models.LevelA1, sampleEntries()); err != nil {
		t.Fatalf("ReplaceLevel A1: %v", err)
	}
	if err := repo.ReplaceLevel(models.LevelC1, []models.VocabularyEntry{
		{Word: "die Abwägung", English: "consideration"},
	}); err != nil {
		t.Fatalf("ReplaceLevel C1: %v", err)
	}

	byLevel, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(byLevel) != 2 {
		t.Errorf("LoadAll returned %d levels, want 2", len(byLevel))
	}
	if len(byLevel[models.LevelA1]) != 2 || len(byLevel[models.LevelC1]) != 1 {
		t.Errorf("LoadAll sizes = %v", byLevel)
	}
	if _, ok := byLevel[models.LevelB2]; ok {
		t.Error("LoadAll must omit empty levels")
	}

	count, err := repo.CountAll()
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if count != 3 {
		t.Errorf("CountAll = %d, want 3", count)
	}
}

func TestFrequencyNumberRoundTrip(t *testing.T) {
	repo := setupTestRepo(t)

	entries := []models.VocabularyEntry{
		{Word: "gut", English: "good", Frequency: &models.FrequencyValue{Number: float(6)}},
	}
	if err := repo.ReplaceLevel(models.LevelA1, entries); err != nil {
		t.Fatalf("ReplaceLevel: %v", err)
	}

	got, err := repo.LoadLevel(models.LevelA1)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	freq := got[0].Frequency
	if freq == nil || freq.Number == nil || *freq.Number != 6 {
		t.Errorf("frequency = %+v, want number 6", freq)
	}
}
