package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/suhedayldrm/pond/internal/models"
	"github.com/suhedayldrm/pond/internal/quiz"
	"github.com/suhedayldrm/pond/internal/security"
	"github.com/suhedayldrm/pond/internal/vocab"
)

// QuizHandler exposes the quiz session engine to the presentation layer as a
// small JSON API. Client identity is a session cookie; each cookie maps to
// one engine in the registry.
type QuizHandler struct {
	store    *vocab.Store
	registry *SessionRegistry
	limiter  *security.RateLimiter
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(store *vocab.Store, registry *SessionRegistry, limiter *security.RateLimiter) *QuizHandler {
	return &QuizHandler{
		store:    store,
		registry: registry,
		limiter:  limiter,
	}
}

// HealthCheck reports liveness.
func (h *QuizHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Levels lists the selectable levels with their pool sizes.
func (h *QuizHandler) Levels(w http.ResponseWriter, r *http.Request) {
	counts := h.store.Counts()
	views := make([]LevelView, 0, len(models.AllLevels()))
	for _, lvl := range models.AllLevels() {
		views = append(views, LevelView{Level: string(lvl), Count: counts[lvl]})
	}
	writeJSON(w, http.StatusOK, views)
}

// StartRound begins a round for the requested level.
func (h *QuizHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(security.GetClientIP(r)) {
		respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
		return
	}

	var req struct {
		Level string `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding start request", err)
		return
	}

	level, ok := models.ParseLevel(req.Level)
	if !ok {
		respondWithError(w, http.StatusBadRequest, ErrUnknownLevel, "", nil)
		return
	}

	engine := h.engineFor(w, r)
	if err := engine.ChooseLevel(level); err != nil {
		switch {
		case errors.Is(err, quiz.ErrNoWords):
			respondWithError(w, http.StatusConflict, "No words available for this level", "Empty pool for level "+string(level), err)
		case errors.Is(err, quiz.ErrRoundActive):
			respondWithError(w, http.StatusConflict, "A round is already in progress", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting round", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, buildSessionView(engine.Snapshot()))
}

// State returns the current session snapshot.
func (h *QuizHandler) State(w http.ResponseWriter, r *http.Request) {
	engine := h.engineFor(w, r)
	writeJSON(w, http.StatusOK, buildSessionView(engine.Snapshot()))
}

// SubmitAnswer grades the typed translation. Blank input and input after
// grading are ignored by the engine; the response is simply the current
// state.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding answer request", err)
		return
	}

	engine := h.engineFor(w, r)
	engine.SubmitAnswer(req.Answer)
	writeJSON(w, http.StatusOK, buildSessionView(engine.Snapshot()))
}

// AdvanceWord moves to the next word after grading; ignored otherwise.
func (h *QuizHandler) AdvanceWord(w http.ResponseWriter, r *http.Request) {
	engine := h.engineFor(w, r)
	engine.Advance()
	writeJSON(w, http.StatusOK, buildSessionView(engine.Snapshot()))
}

// ResetSession discards the session and returns to level selection.
func (h *QuizHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	engine := h.engineFor(w, r)
	engine.Reset()
	writeJSON(w, http.StatusOK, buildSessionView(engine.Snapshot()))
}

// engineFor resolves the caller's engine from the session cookie, minting a
// cookie on first contact.
func (h *QuizHandler) engineFor(w http.ResponseWriter, r *http.Request) *quiz.Engine {
	var id string
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		id = security.GenerateSessionID()
		http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, id, time.Now().Add(24*time.Hour)))
	}
	return h.registry.Engine(id)
}
