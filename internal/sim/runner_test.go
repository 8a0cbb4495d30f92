package sim

import (
	"context"
	"sync"
	"testing"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/service"
)

// memRepo mimics the repository with independent snapshots per call, the
// way a database scan would behave.
type memRepo struct {
	mu       sync.Mutex
	sessions map[string]*game.GameSession
	history  []game.BiomarkerHistory
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[string]*game.GameSession)}
}

func (m *memRepo) CreateSession(s *game.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionUUID] = s.Clone()
	return nil
}

func (m *memRepo) GetSessionByUUID(uuid string) (*game.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[uuid]; ok {
		return s.Clone(), nil
	}
	return nil, service.ErrSessionNotFound
}

func (m *memRepo) UpdateSession(s *game.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionUUID] = s.Clone()
	return nil
}

func (m *memRepo) DeleteSession(uuid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uuid)
	return nil
}

func (m *memRepo) SaveHistory(records []game.BiomarkerHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, records...)
	return nil
}

// steadyContent yields sessions that win on the sixth turn: one effectless
// card cycling between hand and discard, no events.
func steadyContent() *config.Content {
	return &config.Content{
		Seed: game.HomeostaticState{
			Glucose: game.Biomarker{
				System:        game.SystemGlucose,
				CurrentValue:  90,
				NormalRange:   game.Range{Low: 70, High: 110},
				CriticalRange: game.Range{Low: 50, High: 140},
				Trend:         game.TrendStable,
			},
			PH: game.Biomarker{
				System:        game.SystemPH,
				CurrentValue:  7.4,
				NormalRange:   game.Range{Low: 7.35, High: 7.45},
				CriticalRange: game.Range{Low: 7.0, High: 7.8},
				Trend:         game.TrendStable,
			},
			Temperature: game.Biomarker{
				System:        game.SystemTemperature,
				CurrentValue:  37.0,
				NormalRange:   game.Range{Low: 36.5, High: 37.5},
				CriticalRange: game.Range{Low: 35.0, High: 40.0},
				Trend:         game.TrendStable,
			},
		},
		Cards: []game.Card{
			{ID: "steady", Name: "Steady", Type: game.CardTypeAction},
		},
		Difficulty: map[game.Difficulty]config.Tuning{
			game.DifficultyEasy: {EventChance: 0, StartingHand: 1, DeckCopies: 1},
		},
	}
}

func TestRunner_BatchReachesVictory(t *testing.T) {
	repo := newMemRepo()
	r := &Runner{
		Repo:       repo,
		Content:    steadyContent(),
		Difficulty: game.DifficultyEasy,
		Policy:     func(seed int64) Policy { return NewGreedyPolicy() },
		Runs:       4,
		MaxTurns:   10,
		Workers:    2,
		Seed:       1,
	}

	sum, results, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Runs != 4 {
		t.Fatalf("expected 4 runs, got %d", sum.Runs)
	}
	if sum.Victories != 4 {
		t.Fatalf("expected every run to win, got %+v", sum)
	}
	if sum.AvgTurns != 6 {
		t.Fatalf("expected victory on turn 6, got average %v", sum.AvgTurns)
	}
	if sum.AvgScore != 1240 {
		t.Fatalf("expected average score 1240, got %v", sum.AvgScore)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if len(repo.sessions) != 4 {
		t.Fatalf("expected 4 persisted sessions, got %d", len(repo.sessions))
	}
	for _, res := range results {
		if res.Events != 0 {
			t.Fatalf("expected no events on the zero-chance tier, got %d", res.Events)
		}
	}
}

func TestRunner_CapsUnfinishedRuns(t *testing.T) {
	repo := newMemRepo()
	r := &Runner{
		Repo:       repo,
		Content:    steadyContent(),
		Difficulty: game.DifficultyEasy,
		Policy:     func(seed int64) Policy { return NewGreedyPolicy() },
		Runs:       2,
		MaxTurns:   3,
		Workers:    1,
		Seed:       1,
	}

	sum, results, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Unfinished != 2 {
		t.Fatalf("expected both runs capped before an ending, got %+v", sum)
	}
	for _, res := range results {
		if res.Turns != 3 {
			t.Fatalf("expected 3 played turns at the cap, got %d", res.Turns)
		}
	}
}
