package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/keys"
)

type rangeEntry struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type biomarkerEntry struct {
	System        string     `json:"system"`
	InitialValue  float64    `json:"initial_value"`
	NormalRange   rangeEntry `json:"normal_range"`
	CriticalRange rangeEntry `json:"critical_range"`
}

type cardEffectEntry struct {
	TargetSystem string  `json:"target_system"`
	Value        float64 `json:"value"`
	Type         string  `json:"type"`
	Duration     int     `json:"duration"`
	Condition    string  `json:"condition"`
}

type cardEntry struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Description     string            `json:"description"`
	Cost            int               `json:"cost"`
	Rarity          string            `json:"rarity"`
	Effects         []cardEffectEntry `json:"effects"`
	EducationalNote string            `json:"educational_note"`
	FlavorText      string            `json:"flavor_text"`
}

type eventEffectEntry struct {
	System   string  `json:"system"`
	Value    float64 `json:"value"`
	Duration int     `json:"duration"`
}

type eventEntry struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Severity    string             `json:"severity"`
	Effects     []eventEffectEntry `json:"effects"`
}

type difficultyEntry struct {
	Name         string  `json:"name"`
	EventChance  float64 `json:"event_chance"`
	StartingHand int     `json:"starting_hand"`
	DeckCopies   int     `json:"deck_copies"`
}

type rawContent struct {
	BiomarkerList  []biomarkerEntry  `json:"biomarker_list"`
	CardList       []cardEntry       `json:"card_list"`
	EventList      []eventEntry      `json:"event_list"`
	DifficultyList []difficultyEntry `json:"difficulty_list"`
}

// Tuning is the per-difficulty knob set. EventChance is the probability
// that ending a turn triggers a random perturbation event.
type Tuning struct {
	EventChance  float64
	StartingHand int
	DeckCopies   int
}

// Content is the validated game content: the biomarker seed state, the card
// catalog, the event table and the per-difficulty tuning.
type Content struct {
	Seed       game.HomeostaticState
	Cards      []game.Card
	Events     []game.GameEvent
	Difficulty map[game.Difficulty]Tuning
}

// defaultTuning applies when the content file omits difficulty_list or one
// of its tiers.
var defaultTuning = map[game.Difficulty]Tuning{
	game.DifficultyEasy:   {EventChance: 0.15, StartingHand: 5, DeckCopies: 2},
	game.DifficultyMedium: {EventChance: 0.25, StartingHand: 5, DeckCopies: 2},
	game.DifficultyHard:   {EventChance: 0.40, StartingHand: 4, DeckCopies: 2},
}

// LoadContent reads the content file at path and returns the validated
// content. It requires the keys `biomarker_list` (all three systems, once
// each) and `card_list` (snake_case); event_list and difficulty_list are
// optional.
func LoadContent(path string) (*Content, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	var rc rawContent
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	seed, err := buildSeed(path, rc.BiomarkerList)
	if err != nil {
		return nil, err
	}
	cards, err := buildCards(path, rc.CardList)
	if err != nil {
		return nil, err
	}
	events, err := buildEvents(path, rc.EventList)
	if err != nil {
		return nil, err
	}
	tuning, err := buildTuning(path, rc.DifficultyList)
	if err != nil {
		return nil, err
	}

	return &Content{Seed: *seed, Cards: cards, Events: events, Difficulty: tuning}, nil
}

func buildSeed(path string, entries []biomarkerEntry) (*game.HomeostaticState, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("content file %s: biomarker_list is empty (provide 'biomarker_list' array)", path)
	}
	var seed game.HomeostaticState
	seen := make(map[game.BodySystem]struct{}, len(entries))
	for _, e := range entries {
		sys := game.BodySystem(strings.ToUpper(strings.TrimSpace(e.System)))
		if !game.ValidSystem(sys) {
			return nil, fmt.Errorf("content file %s: unknown biomarker system '%s'", path, e.System)
		}
		if _, exists := seen[sys]; exists {
			return nil, fmt.Errorf("content file %s: duplicate biomarker system '%s'", path, sys)
		}
		seen[sys] = struct{}{}

		normal := game.Range{Low: e.NormalRange.Low, High: e.NormalRange.High}
		critical := game.Range{Low: e.CriticalRange.Low, High: e.CriticalRange.High}
		if normal.Low > normal.High {
			return nil, fmt.Errorf("content file %s: biomarker '%s' normal_range low above high", path, sys)
		}
		if critical.Low >= normal.Low || normal.High >= critical.High {
			return nil, fmt.Errorf("content file %s: biomarker '%s' normal_range must sit strictly inside critical_range", path, sys)
		}
		if !normal.Contains(e.InitialValue) {
			return nil, fmt.Errorf("content file %s: biomarker '%s' initial_value %v outside normal_range", path, sys, e.InitialValue)
		}

		*seed.BySystem(sys) = game.Biomarker{
			System:        sys,
			CurrentValue:  e.InitialValue,
			NormalRange:   normal,
			CriticalRange: critical,
			Trend:         game.TrendStable,
		}
	}
	for _, sys := range game.Systems() {
		if _, exists := seen[sys]; !exists {
			return nil, fmt.Errorf("content file %s: biomarker_list missing system '%s'", path, sys)
		}
	}
	return &seed, nil
}

func buildCards(path string, entries []cardEntry) ([]game.Card, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("content file %s: card_list is empty (provide 'card_list' array)", path)
	}
	out := make([]game.Card, 0, len(entries))
	idSet := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("content file %s: card entry missing 'name'", path)
		}
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = keys.ContentKey(e.Name)
		}
		if _, exists := idSet[id]; exists {
			return nil, fmt.Errorf("content file %s: duplicate card id '%s'", path, id)
		}
		idSet[id] = struct{}{}

		cardType, err := parseCardType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("content file %s: card '%s': %w", path, id, err)
		}
		rarity, err := parseRarity(e.Rarity)
		if err != nil {
			return nil, fmt.Errorf("content file %s: card '%s': %w", path, id, err)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("content file %s: card '%s' has negative cost %d", path, id, e.Cost)
		}

		effects := make([]game.CardEffect, 0, len(e.Effects))
		for _, fe := range e.Effects {
			sys := game.BodySystem(strings.ToUpper(strings.TrimSpace(fe.TargetSystem)))
			if !game.ValidSystem(sys) {
				return nil, fmt.Errorf("content file %s: card '%s' targets unknown system '%s'", path, id, fe.TargetSystem)
			}
			if fe.Value == 0 {
				return nil, fmt.Errorf("content file %s: card '%s' has an effect with zero value", path, id)
			}
			effType, err := parseEffectType(fe.Type)
			if err != nil {
				return nil, fmt.Errorf("content file %s: card '%s': %w", path, id, err)
			}
			if effType == game.EffectContinuous && fe.Duration <= 0 {
				return nil, fmt.Errorf("content file %s: card '%s' continuous effect missing positive 'duration'", path, id)
			}
			effects = append(effects, game.CardEffect{
				TargetSystem: sys,
				Value:        fe.Value,
				Type:         effType,
				Duration:     fe.Duration,
				Condition:    strings.TrimSpace(fe.Condition),
			})
		}

		out = append(out, game.Card{
			ID:              id,
			Name:            e.Name,
			Type:            cardType,
			Description:     e.Description,
			Cost:            e.Cost,
			Rarity:          rarity,
			Effects:         effects,
			EducationalNote: e.EducationalNote,
			FlavorText:      e.FlavorText,
		})
	}
	return out, nil
}

func buildEvents(path string, entries []eventEntry) ([]game.GameEvent, error) {
	out := make([]game.GameEvent, 0, len(entries))
	idSet := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("content file %s: event entry missing 'title'", path)
		}
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = keys.ContentKey(e.Title)
		}
		if _, exists := idSet[id]; exists {
			return nil, fmt.Errorf("content file %s: duplicate event id '%s'", path, id)
		}
		idSet[id] = struct{}{}

		evType, err := parseEventType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("content file %s: event '%s': %w", path, id, err)
		}
		severity, err := parseSeverity(e.Severity)
		if err != nil {
			return nil, fmt.Errorf("content file %s: event '%s': %w", path, id, err)
		}
		if len(e.Effects) == 0 {
			return nil, fmt.Errorf("content file %s: event '%s' has no effects", path, id)
		}

		effects := make([]game.EventEffect, 0, len(e.Effects))
		for _, fe := range e.Effects {
			sys := game.BodySystem(strings.ToUpper(strings.TrimSpace(fe.System)))
			if !game.ValidSystem(sys) {
				return nil, fmt.Errorf("content file %s: event '%s' targets unknown system '%s'", path, id, fe.System)
			}
			if fe.Value == 0 {
				return nil, fmt.Errorf("content file %s: event '%s' has an effect with zero value", path, id)
			}
			effects = append(effects, game.EventEffect{System: sys, Value: fe.Value, Duration: fe.Duration})
		}

		out = append(out, game.GameEvent{
			ID:          id,
			Title:       e.Title,
			Description: e.Description,
			Type:        evType,
			Effects:     effects,
			Severity:    severity,
		})
	}
	return out, nil
}

func buildTuning(path string, entries []difficultyEntry) (map[game.Difficulty]Tuning, error) {
	tuning := make(map[game.Difficulty]Tuning, len(defaultTuning))
	for d, t := range defaultTuning {
		tuning[d] = t
	}
	for _, e := range entries {
		d := game.Difficulty(strings.ToLower(strings.TrimSpace(e.Name)))
		if _, known := defaultTuning[d]; !known {
			return nil, fmt.Errorf("content file %s: unknown difficulty '%s'", path, e.Name)
		}
		if e.EventChance < 0 || e.EventChance > 1 {
			return nil, fmt.Errorf("content file %s: difficulty '%s' event_chance %v outside [0,1]", path, d, e.EventChance)
		}
		if e.StartingHand < 1 {
			return nil, fmt.Errorf("content file %s: difficulty '%s' starting_hand must be at least 1", path, d)
		}
		if e.DeckCopies < 1 {
			return nil, fmt.Errorf("content file %s: difficulty '%s' deck_copies must be at least 1", path, d)
		}
		tuning[d] = Tuning{EventChance: e.EventChance, StartingHand: e.StartingHand, DeckCopies: e.DeckCopies}
	}
	return tuning, nil
}

func parseCardType(s string) (game.CardType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(game.CardTypeAction):
		return game.CardTypeAction, nil
	case string(game.CardTypeEvent):
		return game.CardTypeEvent, nil
	}
	return "", fmt.Errorf("unknown card type '%s'", s)
}

func parseRarity(s string) (game.Rarity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(game.RarityCommon):
		return game.RarityCommon, nil
	case string(game.RarityUncommon):
		return game.RarityUncommon, nil
	case string(game.RarityRare):
		return game.RarityRare, nil
	case string(game.RarityEpic):
		return game.RarityEpic, nil
	case string(game.RarityLegendary):
		return game.RarityLegendary, nil
	}
	return "", fmt.Errorf("unknown rarity '%s'", s)
}

func parseEffectType(s string) (game.EffectType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(game.EffectInstant):
		return game.EffectInstant, nil
	case string(game.EffectContinuous):
		return game.EffectContinuous, nil
	case string(game.EffectConditional):
		return game.EffectConditional, nil
	}
	return "", fmt.Errorf("unknown effect type '%s'", s)
}

func parseEventType(s string) (game.EventType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(game.EventRandom):
		return game.EventRandom, nil
	case string(game.EventScheduled):
		return game.EventScheduled, nil
	case string(game.EventTriggered):
		return game.EventTriggered, nil
	}
	return "", fmt.Errorf("unknown event type '%s'", s)
}

func parseSeverity(s string) (game.EventSeverity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(game.SeverityModerate):
		return game.SeverityModerate, nil
	case string(game.SeverityMild):
		return game.SeverityMild, nil
	case string(game.SeveritySevere):
		return game.SeveritySevere, nil
	case string(game.SeverityCritical):
		return game.SeverityCritical, nil
	}
	return "", fmt.Errorf("unknown severity '%s'", s)
}
