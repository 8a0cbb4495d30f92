package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// Policy picks the hand card to play for the current state. ChooseCard is
// called with a non-empty hand and returns an index into it. Policies must
// not mutate the session.
type Policy interface {
	Name() string
	ChooseCard(s *game.GameSession) int
}

// PolicyFactory builds a fresh policy for one run. Runs execute
// concurrently, so each gets its own instance and seed.
type PolicyFactory func(seed int64) Policy

// FactoryFor maps a policy name from the command line to its factory.
func FactoryFor(name string) (PolicyFactory, error) {
	switch name {
	case "random":
		return func(seed int64) Policy { return NewRandomPolicy(seed) }, nil
	case "greedy":
		return func(seed int64) Policy { return NewGreedyPolicy() }, nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

// RandomPolicy plays an arbitrary hand card.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) ChooseCard(s *game.GameSession) int {
	return p.rng.Intn(len(s.Hand))
}

// GreedyPolicy plays the card whose resolution leaves the fewest critical
// systems, breaking ties by how far the biomarkers end up from the centers
// of their normal ranges.
type GreedyPolicy struct{}

func NewGreedyPolicy() *GreedyPolicy { return &GreedyPolicy{} }

func (p *GreedyPolicy) Name() string { return "greedy" }

func (p *GreedyPolicy) ChooseCard(s *game.GameSession) int {
	best := 0
	bestCrit := math.MaxInt
	bestDev := math.MaxFloat64
	for i := range s.Hand {
		ns, _ := engine.ProcessTurn(s, s.Hand[i])
		crit, dev := boardPressure(&ns.CurrentState)
		if crit < bestCrit || (crit == bestCrit && dev < bestDev) {
			best, bestCrit, bestDev = i, crit, dev
		}
	}
	return best
}

// boardPressure measures how unhealthy a board is: the count of critical
// systems plus each biomarker's normalized distance from the center of its
// normal range.
func boardPressure(st *game.HomeostaticState) (int, float64) {
	crit := 0
	dev := 0.0
	for _, b := range st.Biomarkers() {
		if b.IsCritical {
			crit++
		}
		span := b.NormalRange.High - b.NormalRange.Low
		if span <= 0 {
			span = 1
		}
		mid := (b.NormalRange.High + b.NormalRange.Low) / 2
		dev += math.Abs(b.CurrentValue-mid) / span
	}
	return crit, dev
}
