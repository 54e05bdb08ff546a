package handlers

import (
	"log"
	"sync"
	"time"

	"github.com/suhedayldrm/pond/internal/quiz"
)

// SessionRegistry maps client session ids to their quiz engines. Each client
// plays exactly one engine; engines for clients that go quiet are evicted by
// a janitor so abandoned rounds do not pile up.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*registeredSession

	source      quiz.WordSource
	policy      quiz.Policy
	idleTimeout time.Duration
}

type registeredSession struct {
	engine   *quiz.Engine
	lastSeen time.Time
}

// NewSessionRegistry creates a registry and starts its eviction janitor.
func NewSessionRegistry(source quiz.WordSource, policy quiz.Policy, idleTimeout time.Duration) *SessionRegistry {
	r := &SessionRegistry{
		sessions:    make(map[string]*registeredSession),
		source:      source,
		policy:      policy,
		idleTimeout: idleTimeout,
	}
	go r.evictIdle()
	return r
}

// Engine returns the engine for a session id, creating it on first use.
func (r *SessionRegistry) Engine(id string) *quiz.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.sessions[id]
	if !exists {
		s = &registeredSession{engine: quiz.NewEngine(r.source, r.policy)}
		r.sessions[id] = s
	}
	s.lastSeen = time.Now()
	return s.engine
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictIdle resets and drops engines that have not been touched within the
// idle timeout. Reset invalidates the engine's countdown so no tick fires
// against an evicted session.
func (r *SessionRegistry) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		for id, s := range r.sessions {
			if time.Since(s.lastSeen) > r.idleTimeout {
				s.engine.Reset()
				delete(r.sessions, id)
				log.Printf("Evicted idle quiz session %s", id)
			}
		}
		r.mu.Unlock()
	}
}
