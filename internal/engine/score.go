package engine

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// Score derives the session score from scratch:
//
//	max(0, 1000 - 10*turnCount - 50*criticalCount + 100*stableCount)
//
// where the critical and stable counts use the same predicates as the
// termination rule. A biomarker in the caution region between its normal
// and critical ranges counts for neither term. Repeated calls on the same
// session agree.
func Score(s *game.GameSession) int {
	score := 1000 -
		10*s.TurnCount -
		50*countCritical(&s.CurrentState) +
		100*countStable(&s.CurrentState)
	if score < 0 {
		score = 0
	}
	return score
}
