package engine

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// applyDelta shifts one biomarker by a signed amount, reclassifies it and
// stamps the update time. Unknown target systems are skipped without an
// audit record; validated content never reaches that branch. The trend is
// decided by the applied delta, so a magnitude of exactly 0.1 always reads
// as a movement regardless of where the value started.
func (tc *turnContext) applyDelta(sys game.BodySystem, value float64, reason string) {
	b := tc.s.CurrentState.BySystem(sys)
	if b == nil {
		return
	}
	oldValue := b.CurrentValue
	b.CurrentValue = oldValue + value
	b.IsCritical = criticalFor(b.CurrentValue, b.CriticalRange)
	b.Trend = trendFor(value)
	b.LastUpdate = tc.now
	tc.record(sys, oldValue, b.CurrentValue, reason)
	tc.s.Status = checkGameEnd(tc.s)
}
