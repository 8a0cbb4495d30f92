package game

import (
	"time"

	"gorm.io/gorm"
)

// Trend classifies the direction of a biomarker's most recent change.
// The resolver derives it from the last applied delta (see internal/engine).
type Trend string

const (
	TrendStable     Trend = "stable"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// Range is an inclusive [Low, High] value band.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies inside the band, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Biomarker is one regulated physiological quantity. Values inside
// NormalRange are stable; values outside CriticalRange are critical; the
// band between the two is the intermediate "caution" region. Content
// authoring must keep NormalRange strictly inside CriticalRange; the
// resolver does not re-check that invariant at runtime (the config loader
// does, at load time).
type Biomarker struct {
	System        BodySystem `json:"system"`
	CurrentValue  float64    `json:"current_value"`
	NormalRange   Range      `json:"normal_range"`
	CriticalRange Range      `json:"critical_range"`
	IsCritical    bool       `json:"is_critical"`
	Trend         Trend      `json:"trend"`
	LastUpdate    time.Time  `json:"last_update"`
}

// InNormalRange reports whether the current value sits inside the normal
// band (bounds included). This is the "stable" predicate used by both the
// victory rule and the score formula.
func (b *Biomarker) InNormalRange() bool {
	return b.NormalRange.Contains(b.CurrentValue)
}

// HomeostaticState is the fixed record of exactly three biomarkers, one per
// regulated system. It is embedded by value in GameSession and persisted as
// a single JSON column; it is never shared between sessions.
type HomeostaticState struct {
	Glucose     Biomarker `json:"glucose"`
	PH          Biomarker `json:"ph"`
	Temperature Biomarker `json:"temperature"`
}

// BySystem returns the biomarker regulated by the given system, or nil when
// the system is not part of the closed set. Callers that accept content
// from outside the validated config must handle nil.
func (s *HomeostaticState) BySystem(sys BodySystem) *Biomarker {
	switch sys {
	case SystemGlucose:
		return &s.Glucose
	case SystemPH:
		return &s.PH
	case SystemTemperature:
		return &s.Temperature
	}
	return nil
}

// Biomarkers returns pointers to the three biomarkers in canonical order,
// for scans that count critical/stable systems.
func (s *HomeostaticState) Biomarkers() []*Biomarker {
	return []*Biomarker{&s.Glucose, &s.PH, &s.Temperature}
}

// CardType distinguishes player-initiated actions from event-style cards.
type CardType string

const (
	CardTypeAction CardType = "ACTION"
	CardTypeEvent  CardType = "EVENT"
)

// Rarity is the content-table rarity tier of a card.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// EffectType is declared by content for every card effect. Only INSTANT
// semantics are applied by the resolver; CONTINUOUS and CONDITIONAL are
// carried so authored content stays forward-compatible, and the
// Duration/Condition fields are likewise transported but not interpreted.
type EffectType string

const (
	EffectInstant     EffectType = "INSTANT"
	EffectContinuous  EffectType = "CONTINUOUS"
	EffectConditional EffectType = "CONDITIONAL"
)

// CardEffect is a single signed delta against one target system.
type CardEffect struct {
	TargetSystem BodySystem `json:"target_system"`
	Value        float64    `json:"value"`
	Type         EffectType `json:"type"`
	Duration     int        `json:"duration,omitempty"`
	Condition    string     `json:"condition,omitempty"`
}

// Card is an immutable content item. Cards are defined once in the content
// file and never mutated afterwards; only their placement (deck, hand,
// discard pile) changes. They are persisted only as part of a session
// snapshot (JSON pile columns), never in a table of their own.
type Card struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            CardType     `json:"type"`
	Description     string       `json:"description"`
	Cost            int          `json:"cost"`
	Rarity          Rarity       `json:"rarity"`
	Effects         []CardEffect `json:"effects"`
	EducationalNote string       `json:"educational_note,omitempty"`
	FlavorText      string       `json:"flavor_text,omitempty"`
}

// EventType classifies how a perturbation event is produced.
type EventType string

const (
	EventRandom    EventType = "RANDOM"
	EventScheduled EventType = "SCHEDULED"
	EventTriggered EventType = "TRIGGERED"
)

// EventSeverity is the content-table severity tier of an event.
type EventSeverity string

const (
	SeverityMild     EventSeverity = "mild"
	SeverityModerate EventSeverity = "moderate"
	SeveritySevere   EventSeverity = "severe"
	SeverityCritical EventSeverity = "critical"
)

// EventEffect is one signed delta carried by a perturbation event.
type EventEffect struct {
	System   BodySystem `json:"system"`
	Value    float64    `json:"value"`
	Duration int        `json:"duration,omitempty"`
}

// GameEvent is a random perturbation drawn from the static event table.
type GameEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        EventType     `json:"type"`
	Effects     []EventEffect `json:"effects"`
	Severity    EventSeverity `json:"severity"`
}

// SessionStatus is the GameSession state machine. The resolver only ever
// produces IN_PROGRESS, VICTORY and DEFEAT; LOBBY and PAUSED belong to the
// session lifecycle managed by the service layer.
type SessionStatus string

const (
	StatusLobby      SessionStatus = "LOBBY"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusVictory    SessionStatus = "VICTORY"
	StatusDefeat     SessionStatus = "DEFEAT"
	StatusPaused     SessionStatus = "PAUSED"
)

// Terminal reports whether no further play is possible for the status.
func (s SessionStatus) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}

// Difficulty is selected at session creation and immutable afterwards. It
// tunes content (event frequency, starting hand) in the service layer only;
// resolver logic never reads it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GameSession is the aggregate root for one match. The whole session,
// including the nested homeostatic state and the three card piles, is
// persisted as a single snapshot row keyed by SessionUUID; the nested parts
// are stored as JSON columns (`serializer:json`) so a snapshot survives
// round trips without a table per pile.
//
// Every card the session was dealt is in exactly one of Hand, Deck or
// DiscardPile; the resolver moves cards between piles but never removes
// them, so the union is conserved for the life of the session.
type GameSession struct {
	gorm.Model
	SessionUUID  string           `json:"session_uuid" gorm:"uniqueIndex"`
	PlayerID     string           `json:"player_id" gorm:"index"`
	Status       SessionStatus    `json:"status" gorm:"index"`
	CurrentState HomeostaticState `json:"current_state" gorm:"serializer:json"`
	Hand         []Card           `json:"hand" gorm:"serializer:json"`
	Deck         []Card           `json:"deck" gorm:"serializer:json"`
	DiscardPile  []Card           `json:"discard_pile" gorm:"serializer:json"`
	CurrentEvent *GameEvent       `json:"current_event,omitempty" gorm:"serializer:json"`
	Score        int              `json:"score"`
	TurnCount    int              `json:"turn_count"`
	StartTime    time.Time        `json:"start_time"`
	LastSave     time.Time        `json:"last_save" gorm:"index"`
	Difficulty   Difficulty       `json:"difficulty"`
}

// TableName overrides the default GORM table name so session snapshots are
// persisted under `game_sessions`.
func (GameSession) TableName() string { return "game_sessions" }

// Clone returns a deep copy of the session: a new session object, a new
// nested HomeostaticState and fresh pile slices. Card values are copied by
// value; their effect lists are shared because card content is immutable by
// contract (placement is the only thing that ever changes).
func (s *GameSession) Clone() *GameSession {
	ns := *s
	ns.Hand = append([]Card(nil), s.Hand...)
	ns.Deck = append([]Card(nil), s.Deck...)
	ns.DiscardPile = append([]Card(nil), s.DiscardPile...)
	if s.CurrentEvent != nil {
		ev := *s.CurrentEvent
		ns.CurrentEvent = &ev
	}
	return &ns
}

// BiomarkerHistory is the audit record of one effect application. The
// resolver produces these transiently and returns them to the caller; the
// service layer stamps SessionUUID and persists them. Change is always
// NewValue - OldValue.
type BiomarkerHistory struct {
	gorm.Model
	SessionUUID string     `json:"session_uuid" gorm:"index"`
	Timestamp   time.Time  `json:"timestamp"`
	System      BodySystem `json:"system"`
	OldValue    float64    `json:"old_value"`
	NewValue    float64    `json:"new_value"`
	Change      float64    `json:"change"`
	Reason      string     `json:"reason"`
}

// TableName keeps the audit table name explicit.
func (BiomarkerHistory) TableName() string { return "biomarker_history" }
