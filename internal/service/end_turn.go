package service

import (
	"math/rand"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

// EndTurn finishes the player's turn: it clears the previous event, may
// fire a random perturbation (per-difficulty chance) and replenishes the
// hand with one card. The turn counter is owned by PlayCard; ending a turn
// never advances it. Returns the updated session and the event that fired,
// if any.
func EndTurn(repo SessionRepo, content *config.Content, sessionUUID string) (*game.GameSession, *game.GameEvent, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	if s.Status != game.StatusInProgress {
		return nil, nil, ErrSessionNotActive
	}
	tuning, ok := content.Difficulty[s.Difficulty]
	if !ok {
		return nil, nil, ErrUnknownDifficulty
	}

	ns := s.Clone()
	ns.CurrentEvent = nil

	var fired *game.GameEvent
	var hist []game.BiomarkerHistory
	if rand.Float64() < tuning.EventChance {
		if ev := engine.GenerateRandomEvent(content.Events); ev != nil {
			ns, hist = engine.ApplyEventEffects(ns, *ev)
			fired = ns.CurrentEvent
			for i := range hist {
				hist[i].SessionUUID = ns.SessionUUID
			}
		}
	}

	// Replenish the hand unless the event already ended the match.
	if ns.Status == game.StatusInProgress {
		if next, card := engine.DrawCard(ns); card != nil {
			ns = next
		}
	}

	ns.LastSave = time.Now()
	if err := repo.SaveHistory(hist); err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateSession(ns); err != nil {
		return nil, nil, err
	}

	if fired != nil {
		logging.Info("event fired", logging.Fields{
			constants.LogFieldSessionUUID: ns.SessionUUID,
			constants.LogFieldEvent:       fired.ID,
			constants.LogFieldStatus:      string(ns.Status),
		})
	}
	return ns, fired, nil
}
