package engine

import (
	"math/rand"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// GenerateRandomEvent picks one event uniformly at random from the catalog
// using the shared math/rand source. It returns a copy, so callers may hold
// on to it without aliasing the catalog; an empty catalog yields nil.
func GenerateRandomEvent(events []game.GameEvent) *game.GameEvent {
	if len(events) == 0 {
		return nil
	}
	ev := events[rand.Intn(len(events))]
	return &ev
}

// ApplyEventEffects lands a perturbation event on the session the same way
// card effects land: per-system delta, reclassification, audit record. The
// turn counter does not move, events happen within a turn rather than being
// one. The event is kept on the session so the caller can surface it.
func ApplyEventEffects(s *game.GameSession, ev game.GameEvent) (*game.GameSession, []game.BiomarkerHistory) {
	if s == nil {
		return nil, nil
	}
	tc := newTurnContext(s)

	for _, eff := range ev.Effects {
		tc.applyDelta(eff.System, eff.Value, "Event: "+ev.Title)
	}

	evCopy := ev
	tc.s.CurrentEvent = &evCopy
	tc.s.Status = checkGameEnd(tc.s)
	tc.s.Score = Score(tc.s)

	return tc.s, tc.history
}
