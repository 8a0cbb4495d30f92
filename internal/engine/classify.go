package engine

import (
	"math"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// trendThreshold is the delta magnitude below which a change reads as
// stable. A delta of exactly 0.1 is already a trend.
const trendThreshold = 0.1

func trendFor(delta float64) game.Trend {
	if math.Abs(delta) < trendThreshold {
		return game.TrendStable
	}
	if delta > 0 {
		return game.TrendIncreasing
	}
	return game.TrendDecreasing
}

// criticalFor reports whether a value falls strictly outside the critical
// band. Values sitting exactly on a critical bound are not critical.
func criticalFor(value float64, critical game.Range) bool {
	return value < critical.Low || value > critical.High
}

func countCritical(st *game.HomeostaticState) int {
	n := 0
	for _, b := range st.Biomarkers() {
		if b.IsCritical {
			n++
		}
	}
	return n
}

func countStable(st *game.HomeostaticState) int {
	n := 0
	for _, b := range st.Biomarkers() {
		if !b.IsCritical && b.InNormalRange() {
			n++
		}
	}
	return n
}

// checkGameEnd classifies a session without mutating it. Two or more
// critical systems lose the match at once. A board where every system sits
// inside its normal range wins, but only after the fifth turn has been
// played; earlier boards stay in progress no matter how healthy. The
// classification is not sticky: it reflects the state it is given.
func checkGameEnd(s *game.GameSession) game.SessionStatus {
	if countCritical(&s.CurrentState) >= 2 {
		return game.StatusDefeat
	}
	if countStable(&s.CurrentState) == len(game.Systems()) && s.TurnCount > 5 {
		return game.StatusVictory
	}
	return game.StatusInProgress
}
