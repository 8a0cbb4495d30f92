package engine

import (
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// turnContext carries the working copy of a session through one resolution
// together with the audit records accumulated along the way. The input
// session is cloned up front so callers keep an untouched snapshot.
type turnContext struct {
	s       *game.GameSession
	now     time.Time
	history []game.BiomarkerHistory
}

func newTurnContext(s *game.GameSession) *turnContext {
	return &turnContext{
		s:       s.Clone(),
		now:     time.Now(),
		history: make([]game.BiomarkerHistory, 0, 4),
	}
}

func (tc *turnContext) record(sys game.BodySystem, oldValue, newValue float64, reason string) {
	tc.history = append(tc.history, game.BiomarkerHistory{
		Timestamp: tc.now,
		System:    sys,
		OldValue:  oldValue,
		NewValue:  newValue,
		Change:    newValue - oldValue,
		Reason:    reason,
	})
}
