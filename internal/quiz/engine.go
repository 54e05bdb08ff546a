package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/suhedayldrm/pond/internal/models"
)

const (
	// RoundSeconds is the fixed duration of one round.
	RoundSeconds = 180

	// PointsPerCorrect is awarded for each correctly answered word.
	PointsPerCorrect = 10
)

var (
	// ErrNoWords signals that the chosen level has an empty word pool. This
	// is a dataset defect surfaced to the caller; the engine stays in level
	// selection.
	ErrNoWords = errors.New("no words available for this level")

	// ErrRoundActive signals that a round is running or awaiting reset.
	ErrRoundActive = errors.New("a round is already in progress")
)

// WordSource provides the word pool per level. Satisfied by *vocab.Store.
type WordSource interface {
	WordsFor(level models.Level) []models.VocabularyEntry
}

// Phase is the top-level state of the engine.
type Phase int

const (
	PhaseLevelSelect Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLevelSelect:
		return "level_select"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Engine owns one player's quiz state: level selection, word sequencing,
// grading, scoring and the round countdown. All mutations go through the
// engine mutex; the countdown callback is the only autonomous caller and is
// validated against the countdown generation before it may touch the
// session.
type Engine struct {
	mu        sync.Mutex
	source    WordSource
	policy    Policy
	rng       *rand.Rand
	countdown *countdown

	phase   Phase
	session *session
}

// session holds the state of one round. It is created by ChooseLevel and
// discarded by Reset; nothing survives across rounds.
type session struct {
	level      models.Level
	seq        Sequencer
	current    models.VocabularyEntry
	score      int
	remaining  int
	answerText string
	graded     bool
	paused     bool
	correct    bool
	feedback   string
}

// NewEngine creates an engine in level selection. An unknown policy falls
// back to the cycle policy.
func NewEngine(source WordSource, policy Policy) *Engine {
	return &Engine{
		source:    source,
		policy:    policy,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		countdown: newCountdown(time.Second),
		phase:     PhaseLevelSelect,
	}
}

// ChooseLevel starts a round for the given level. It refuses with ErrNoWords
// when the level has no entries, leaving the engine in level selection, and
// with ErrRoundActive unless the engine is in level selection.
func (e *Engine) ChooseLevel(level models.Level) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseLevelSelect {
		return ErrRoundActive
	}

	pool := e.source.WordsFor(level)
	if len(pool) == 0 {
		return ErrNoWords
	}

	seq := newSequencer(e.policy, pool, e.rng)
	e.session = &session{
		level:     level,
		seq:       seq,
		current:   seq.Next(nil),
		remaining: RoundSeconds,
	}
	e.phase = PhasePlaying
	e.countdown.arm(e.tick)
	return nil
}

// SubmitAnswer grades the typed translation against the current word.
// Empty or whitespace-only input, input outside a round, and input after the
// current word has already been graded are all ignored without error.
// Grading pauses the countdown until Advance.
func (e *Engine) SubmitAnswer(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhasePlaying || e.session.graded {
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}

	s := e.session
	s.answerText = text
	s.correct = IsCorrect(text, s.current)
	if s.correct {
		s.score += PointsPerCorrect
		s.feedback = "Correct!"
	} else {
		s.feedback = fmt.Sprintf("Incorrect. The correct answer is %q.", s.current.English)
	}
	s.graded = true
	s.paused = true
	e.countdown.stop()
}

// Advance moves to the next word after grading. Ignored unless the current
// word has been graded. The countdown resumes.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhasePlaying || !e.session.graded {
		return
	}

	s := e.session
	leaving := s.current
	s.current = s.seq.Next(&leaving)
	s.answerText = ""
	s.feedback = ""
	s.correct = false
	s.graded = false
	s.paused = false
	e.countdown.arm(e.tick)
}

// Reset discards the session and returns to level selection, invalidating
// any pending countdown tick. Valid in any phase; resetting mid-round
// abandons it.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.countdown.stop()
	e.session = nil
	e.phase = PhaseLevelSelect
}

// tick applies one elapsed second. gen ties the callback to the arm that
// scheduled it: a tick that was in flight when the state changed carries a
// stale generation and is discarded.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.countdown.valid(gen) {
		return
	}
	if e.phase != PhasePlaying || e.session.paused {
		return
	}

	e.session.remaining--
	if e.session.remaining <= 0 {
		e.session.remaining = 0
		e.phase = PhaseGameOver
		e.countdown.stop()
		return
	}
	e.countdown.arm(e.tick)
}

// Snapshot is the observable state exposed to the presentation layer.
type Snapshot struct {
	Phase            Phase
	Level            models.Level
	Current          *models.VocabularyEntry
	PoolSize         int
	Score            int
	RemainingSeconds int
	AnswerText       string
	Graded           bool
	Paused           bool
	Correct          bool
	Feedback         string
}

// Snapshot returns a copy of the engine's observable state. Current is nil
// while in level selection.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{Phase: e.phase}
	if e.session == nil {
		return snap
	}

	s := e.session
	current := s.current
	snap.Level = s.level
	snap.Current = &current
	snap.PoolSize = s.seq.Len()
	snap.Score = s.score
	snap.RemainingSeconds = s.remaining
	snap.AnswerText = s.answerText
	snap.Graded = s.graded
	snap.Paused = s.paused
	snap.Correct = s.correct
	snap.Feedback = s.feedback
	return snap
}
