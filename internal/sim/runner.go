package sim

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
	"github.com/pendraco002/homeostasis-cards/internal/service"
)

// RunResult captures the outcome of one simulated session.
type RunResult struct {
	SessionUUID string
	Policy      string
	Status      game.SessionStatus
	Turns       int
	Score       int
	Events      int
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs       int
	Victories  int
	Defeats    int
	Unfinished int
	Events     int
	AvgTurns   float64
	AvgScore   float64
}

// Runner plays complete sessions through the service layer, several in
// flight at once, and aggregates their outcomes. Every run gets its own
// session row in the repository, so a batch exercises the same persistence
// path a live match would.
type Runner struct {
	Repo       service.SessionRepo
	Content    *config.Content
	Difficulty game.Difficulty
	Policy     PolicyFactory
	Runs       int
	MaxTurns   int
	Workers    int
	Seed       int64
}

// Run executes the batch and returns the aggregate summary together with
// the per-run results. It stops early on the first repository error or when
// the context is canceled.
func (r *Runner) Run(ctx context.Context) (*Summary, []RunResult, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var mu sync.Mutex
	results := make([]RunResult, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		seed := r.Seed + int64(i)
		eg.Go(func() error {
			res, err := r.runOne(egCtx, seed)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, *res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return summarize(results), results, nil
}

func (r *Runner) runOne(ctx context.Context, seed int64) (*RunResult, error) {
	pol := r.Policy(seed)

	s, err := service.CreateSession(r.Repo, r.Content, fmt.Sprintf("sim-%d", seed), r.Difficulty)
	if err != nil {
		return nil, err
	}
	if s, err = service.BeginMatch(r.Repo, r.Content, s.SessionUUID); err != nil {
		return nil, err
	}

	events := 0
	for turn := 0; turn < r.MaxTurns && !s.Status.Terminal(); turn++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if len(s.Hand) == 0 {
			ns, card, err := service.DrawCard(r.Repo, s.SessionUUID)
			if err != nil {
				return nil, err
			}
			if card == nil {
				break
			}
			s = ns
		}

		idx := pol.ChooseCard(s)
		if idx < 0 || idx >= len(s.Hand) {
			idx = 0
		}
		if s, _, err = service.PlayCard(r.Repo, s.SessionUUID, s.Hand[idx].ID); err != nil {
			return nil, err
		}
		if s.Status.Terminal() {
			break
		}

		ns, fired, err := service.EndTurn(r.Repo, r.Content, s.SessionUUID)
		if err != nil {
			return nil, err
		}
		if fired != nil {
			events++
		}
		s = ns
	}

	logging.Debug("run finished", logging.Fields{
		constants.LogFieldSessionUUID: s.SessionUUID,
		constants.LogFieldPolicy:      pol.Name(),
		constants.LogFieldStatus:      string(s.Status),
		constants.LogFieldTurn:        s.TurnCount,
		constants.LogFieldScore:       s.Score,
	})
	return &RunResult{
		SessionUUID: s.SessionUUID,
		Policy:      pol.Name(),
		Status:      s.Status,
		Turns:       s.TurnCount,
		Score:       s.Score,
		Events:      events,
	}, nil
}

func summarize(results []RunResult) *Summary {
	sum := &Summary{Runs: len(results)}
	if len(results) == 0 {
		return sum
	}
	totalTurns, totalScore := 0, 0
	for _, res := range results {
		switch res.Status {
		case game.StatusVictory:
			sum.Victories++
		case game.StatusDefeat:
			sum.Defeats++
		default:
			sum.Unfinished++
		}
		sum.Events += res.Events
		totalTurns += res.Turns
		totalScore += res.Score
	}
	sum.AvgTurns = float64(totalTurns) / float64(len(results))
	sum.AvgScore = float64(totalScore) / float64(len(results))
	return sum
}
