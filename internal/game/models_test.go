package game

import (
	"testing"
	"time"
)

func TestRangeContains_BoundsInclusive(t *testing.T) {
	r := Range{Low: 70, High: 110}
	if !r.Contains(70) || !r.Contains(110) {
		t.Fatalf("range bounds must be inclusive")
	}
	if r.Contains(69.999) || r.Contains(110.001) {
		t.Fatalf("values outside the band must not be contained")
	}
}

func TestBySystem(t *testing.T) {
	st := HomeostaticState{
		Glucose:     Biomarker{System: SystemGlucose, CurrentValue: 90},
		PH:          Biomarker{System: SystemPH, CurrentValue: 7.4},
		Temperature: Biomarker{System: SystemTemperature, CurrentValue: 37},
	}
	if b := st.BySystem(SystemPH); b == nil || b.CurrentValue != 7.4 {
		t.Fatalf("expected the pH biomarker, got %+v", b)
	}
	if b := st.BySystem(BodySystem("ADRENALINE")); b != nil {
		t.Fatalf("unknown system must resolve to nil, got %+v", b)
	}
}

func TestClone_Independence(t *testing.T) {
	orig := &GameSession{
		SessionUUID:  "s1",
		Status:       StatusInProgress,
		CurrentState: HomeostaticState{Glucose: Biomarker{System: SystemGlucose, CurrentValue: 90}},
		Hand:         []Card{{ID: "card-a"}},
		Deck:         []Card{{ID: "card-b"}},
		CurrentEvent: &GameEvent{ID: "ev-1"},
		StartTime:    time.Now(),
	}

	cp := orig.Clone()
	cp.CurrentState.Glucose.CurrentValue = 40
	cp.Hand[0].ID = "changed"
	cp.Hand = append(cp.Hand, Card{ID: "card-c"})
	cp.CurrentEvent.ID = "ev-2"

	if orig.CurrentState.Glucose.CurrentValue != 90 {
		t.Fatalf("clone mutation leaked into original state")
	}
	if orig.Hand[0].ID != "card-a" || len(orig.Hand) != 1 {
		t.Fatalf("clone mutation leaked into original hand: %+v", orig.Hand)
	}
	if orig.CurrentEvent.ID != "ev-1" {
		t.Fatalf("clone mutation leaked into original event")
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, st := range []SessionStatus{StatusVictory, StatusDefeat} {
		if !st.Terminal() {
			t.Fatalf("expected %s to be terminal", st)
		}
	}
	for _, st := range []SessionStatus{StatusLobby, StatusInProgress, StatusPaused} {
		if st.Terminal() {
			t.Fatalf("expected %s to be non-terminal", st)
		}
	}
}
