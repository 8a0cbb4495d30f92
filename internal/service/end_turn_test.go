package service

import (
	"testing"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

type mockRepoET struct {
	sessions map[string]*game.GameSession
	updated  *game.GameSession
	history  []game.BiomarkerHistory
}

func (m *mockRepoET) CreateSession(s *game.GameSession) error {
	m.sessions[s.SessionUUID] = s
	return nil
}

func (m *mockRepoET) GetSessionByUUID(uuid string) (*game.GameSession, error) {
	if s, ok := m.sessions[uuid]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (m *mockRepoET) UpdateSession(s *game.GameSession) error {
	m.updated = s
	m.sessions[s.SessionUUID] = s
	return nil
}

func (m *mockRepoET) DeleteSession(uuid string) error {
	return nil
}

func (m *mockRepoET) SaveHistory(records []game.BiomarkerHistory) error {
	m.history = append(m.history, records...)
	return nil
}

func TestEndTurn_AlwaysFiresEventAtFullChance(t *testing.T) {
	s := activeSession("s-1")
	s.Difficulty = game.DifficultyHard
	mr := &mockRepoET{sessions: map[string]*game.GameSession{"s-1": s}}

	ns, fired, err := EndTurn(mr, testContent(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fired == nil || fired.ID != "heat-wave" {
		t.Fatalf("expected the heat-wave event to fire, got %v", fired)
	}
	if ns.CurrentEvent == nil || ns.CurrentEvent.ID != "heat-wave" {
		t.Fatalf("expected the event kept on the session, got %v", ns.CurrentEvent)
	}
	if got := ns.CurrentState.Temperature.CurrentValue; got != 38.5 {
		t.Fatalf("expected temperature 38.5 after the event, got %v", got)
	}
	if len(mr.history) != 1 || mr.history[0].SessionUUID != "s-1" {
		t.Fatalf("expected 1 stamped audit record, got %v", mr.history)
	}
	if len(ns.Hand) != 2 {
		t.Fatalf("expected the hand replenished to 2, got %d", len(ns.Hand))
	}
	if ns.TurnCount != 0 {
		t.Fatalf("expected ending a turn to leave the turn count alone, got %d", ns.TurnCount)
	}
}

func TestEndTurn_QuietTurnClearsEventAndDraws(t *testing.T) {
	s := activeSession("s-1")
	s.CurrentEvent = &game.GameEvent{ID: "stale", Title: "Stale"}
	mr := &mockRepoET{sessions: map[string]*game.GameSession{"s-1": s}}

	ns, fired, err := EndTurn(mr, testContent(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fired != nil {
		t.Fatalf("expected no event on a zero-chance tier, got %v", fired)
	}
	if ns.CurrentEvent != nil {
		t.Fatalf("expected the previous event cleared, got %v", ns.CurrentEvent)
	}
	if len(ns.Hand) != 2 {
		t.Fatalf("expected a card drawn, got hand of %d", len(ns.Hand))
	}
	if len(mr.history) != 0 {
		t.Fatalf("expected no audit records, got %d", len(mr.history))
	}
	if mr.updated != ns {
		t.Fatalf("expected the updated session to be persisted")
	}
}

func TestEndTurn_SessionNotActive(t *testing.T) {
	s := activeSession("s-1")
	s.Status = game.StatusVictory
	mr := &mockRepoET{sessions: map[string]*game.GameSession{"s-1": s}}

	if _, _, err := EndTurn(mr, testContent(), "s-1"); err != ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
}
