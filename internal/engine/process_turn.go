package engine

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// ProcessTurn resolves one played card against a session and returns the
// next session state plus the audit trail of every effect applied. The
// input session is never mutated.
//
// Resolution order: the card's effects land one by one in declaration
// order, each reclassifying its biomarker; the card then moves from hand to
// the discard pile; the turn counter advances by exactly one, effects or
// not; finally status and score are recomputed against the post-turn board.
func ProcessTurn(s *game.GameSession, played game.Card) (*game.GameSession, []game.BiomarkerHistory) {
	if s == nil {
		return nil, nil
	}
	tc := newTurnContext(s)

	for _, eff := range played.Effects {
		tc.applyDelta(eff.TargetSystem, eff.Value, "Card played: "+played.Name)
	}

	tc.discard(played)

	tc.s.TurnCount++
	tc.s.Status = checkGameEnd(tc.s)
	tc.s.Score = Score(tc.s)

	return tc.s, tc.history
}

// discard moves the played card out of the hand and onto the discard pile.
// Hand membership is matched by card ID; a card that was never in hand is
// still discarded and the hand stays as it was.
func (tc *turnContext) discard(played game.Card) {
	for i := range tc.s.Hand {
		if tc.s.Hand[i].ID == played.ID {
			tc.s.Hand = append(tc.s.Hand[:i], tc.s.Hand[i+1:]...)
			break
		}
	}
	tc.s.DiscardPile = append(tc.s.DiscardPile, played)
}
