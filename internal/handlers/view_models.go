package handlers

import (
	"github.com/suhedayldrm/pond/internal/models"
	"github.com/suhedayldrm/pond/internal/quiz"
)

// LevelView is one selectable level with its pool size. A zero count flags a
// dataset defect before any round is started.
type LevelView struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// SessionView is the engine snapshot serialized for the client. Enrichment
// is present only once the current word has been graded.
type SessionView struct {
	Phase            string          `json:"phase"`
	Level            string          `json:"level,omitempty"`
	Score            int             `json:"score"`
	RemainingSeconds int             `json:"remainingSeconds"`
	Graded           bool            `json:"graded"`
	Paused           bool            `json:"paused"`
	AnswerText       string          `json:"answerText,omitempty"`
	Correct          *bool           `json:"correct,omitempty"`
	Feedback         string          `json:"feedback,omitempty"`
	PoolSize         int             `json:"poolSize,omitempty"`
	Word             *WordView       `json:"word,omitempty"`
	Enrichment       *EnrichmentView `json:"enrichment,omitempty"`
}

// WordView is the part of the current entry visible before grading.
type WordView struct {
	Word         string         `json:"word"`
	PartOfSpeech string         `json:"partOfSpeech"`
	Frequency    *FrequencyView `json:"frequency,omitempty"`
}

// FrequencyView is the derived frequency bar; omitted entirely when the
// entry has no usable frequency.
type FrequencyView struct {
	Active int `json:"active"`
	Total  int `json:"total"`
}

// EnrichmentView is revealed after grading: the canonical answer plus the
// decomposition, examples and related words.
type EnrichmentView struct {
	English        string               `json:"english"`
	Composition    []SegmentView        `json:"composition,omitempty"`
	Examples       []models.ExamplePair `json:"examples,omitempty"`
	ConnectedWords []models.RelatedWord `json:"connectedWords,omitempty"`
	Synonyms       []models.RelatedWord `json:"synonyms,omitempty"`
	Compounds      []models.RelatedWord `json:"compounds,omitempty"`
	Etymology      string               `json:"etymology,omitempty"`
	SourceURL      string               `json:"sourceUrl,omitempty"`
}

// SegmentView pairs one morpheme with its meaning. Meanings past the end of
// the meaning list come through empty.
type SegmentView struct {
	Segment string `json:"segment"`
	Meaning string `json:"meaning"`
}

func buildSessionView(snap quiz.Snapshot) SessionView {
	view := SessionView{
		Phase:            snap.Phase.String(),
		Level:            string(snap.Level),
		Score:            snap.Score,
		RemainingSeconds: snap.RemainingSeconds,
		Graded:           snap.Graded,
		Paused:           snap.Paused,
		AnswerText:       snap.AnswerText,
		Feedback:         snap.Feedback,
		PoolSize:         snap.PoolSize,
	}

	if snap.Current == nil {
		return view
	}
	entry := *snap.Current

	view.Word = &WordView{
		Word:         entry.Word,
		PartOfSpeech: entry.PartOfSpeech,
	}
	if active, total, ok := quiz.FrequencyBar(entry.Frequency); ok {
		view.Word.Frequency = &FrequencyView{Active: active, Total: total}
	}

	if snap.Graded {
		correct := snap.Correct
		view.Correct = &correct
		view.Enrichment = buildEnrichmentView(entry)
	}

	return view
}

func buildEnrichmentView(entry models.VocabularyEntry) *EnrichmentView {
	segments := make([]SegmentView, len(entry.Composition))
	for i, seg := range entry.Composition {
		meaning := ""
		if i < len(entry.DecompositionMeaning) {
			meaning = entry.DecompositionMeaning[i]
		}
		segments[i] = SegmentView{Segment: seg, Meaning: meaning}
	}

	return &EnrichmentView{
		English:        entry.English,
		Composition:    segments,
		Examples:       entry.Examples,
		ConnectedWords: entry.ConnectedWords,
		Synonyms:       entry.Synonyms,
		Compounds:      entry.Compounds,
		Etymology:      entry.Etymology,
		SourceURL:      entry.SourceURL,
	}
}
