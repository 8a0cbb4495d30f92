package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

const validContent = `{
  "biomarker_list": [
    {"system": "GLUCOSE", "initial_value": 90, "normal_range": {"low": 70, "high": 110}, "critical_range": {"low": 50, "high": 140}},
    {"system": "PH", "initial_value": 7.4, "normal_range": {"low": 7.35, "high": 7.45}, "critical_range": {"low": 7.0, "high": 7.8}},
    {"system": "TEMPERATURE", "initial_value": 37.0, "normal_range": {"low": 36.5, "high": 37.5}, "critical_range": {"low": 35.0, "high": 40.0}}
  ],
  "card_list": [
    {"name": "Insulin Shot", "rarity": "COMMON", "cost": 1,
     "effects": [{"target_system": "GLUCOSE", "value": -10, "type": "INSTANT"}]},
    {"id": "glucagon", "name": "Glucagon", "rarity": "UNCOMMON", "cost": 2,
     "effects": [{"target_system": "GLUCOSE", "value": 15}]}
  ],
  "event_list": [
    {"title": "Heat Wave", "severity": "moderate",
     "effects": [{"system": "TEMPERATURE", "value": 1.5}]}
  ],
  "difficulty_list": [
    {"name": "hard", "event_chance": 0.5, "starting_hand": 3, "deck_copies": 1}
  ]
}`

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	return path
}

func TestLoadContent_Valid(t *testing.T) {
	c, err := LoadContent(writeContent(t, validContent))
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	if c.Seed.Glucose.CurrentValue != 90 || c.Seed.PH.CurrentValue != 7.4 {
		t.Fatalf("unexpected seed values: glucose=%v ph=%v", c.Seed.Glucose.CurrentValue, c.Seed.PH.CurrentValue)
	}
	if c.Seed.Temperature.Trend != game.TrendStable {
		t.Fatalf("expected seeded biomarkers to start stable, got %q", c.Seed.Temperature.Trend)
	}
	if len(c.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(c.Cards))
	}
	if c.Cards[0].ID != "insulin-shot" {
		t.Fatalf("expected derived card id 'insulin-shot', got %q", c.Cards[0].ID)
	}
	if c.Cards[1].Effects[0].Type != game.EffectInstant {
		t.Fatalf("expected omitted effect type to default to INSTANT, got %q", c.Cards[1].Effects[0].Type)
	}
	if len(c.Events) != 1 || c.Events[0].ID != "heat-wave" {
		t.Fatalf("expected derived event id 'heat-wave', got %v", c.Events)
	}
	if c.Events[0].Type != game.EventRandom {
		t.Fatalf("expected omitted event type to default to RANDOM, got %q", c.Events[0].Type)
	}

	hard := c.Difficulty[game.DifficultyHard]
	if hard.EventChance != 0.5 || hard.StartingHand != 3 || hard.DeckCopies != 1 {
		t.Fatalf("expected hard tier overridden from file, got %+v", hard)
	}
	if _, ok := c.Difficulty[game.DifficultyEasy]; !ok {
		t.Fatalf("expected unlisted tiers to keep their defaults")
	}
}

func TestLoadContent_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			"missing biomarker system",
			`{"biomarker_list": [
				{"system": "GLUCOSE", "initial_value": 90, "normal_range": {"low": 70, "high": 110}, "critical_range": {"low": 50, "high": 140}}
			 ],
			 "card_list": [{"name": "X", "effects": []}]}`,
			"missing system",
		},
		{
			"normal range outside critical range",
			strings.Replace(validContent, `"critical_range": {"low": 50, "high": 140}`, `"critical_range": {"low": 80, "high": 140}`, 1),
			"strictly inside",
		},
		{
			"initial value outside normal range",
			strings.Replace(validContent, `"initial_value": 90`, `"initial_value": 120`, 1),
			"outside normal_range",
		},
		{
			"duplicate card id",
			strings.Replace(validContent, `"id": "glucagon", "name": "Glucagon"`, `"name": "Insulin Shot"`, 1),
			"duplicate card id",
		},
		{
			"unknown target system",
			strings.Replace(validContent, `"target_system": "GLUCOSE", "value": -10`, `"target_system": "CORTISOL", "value": -10`, 1),
			"unknown system",
		},
		{
			"zero effect value",
			strings.Replace(validContent, `{"target_system": "GLUCOSE", "value": 15}`, `{"target_system": "GLUCOSE", "value": 0}`, 1),
			"zero value",
		},
		{
			"continuous effect without duration",
			strings.Replace(validContent, `"type": "INSTANT"`, `"type": "CONTINUOUS"`, 1),
			"positive 'duration'",
		},
		{
			"negative cost",
			strings.Replace(validContent, `"rarity": "COMMON", "cost": 1`, `"rarity": "COMMON", "cost": -1`, 1),
			"negative cost",
		},
		{
			"unknown rarity",
			strings.Replace(validContent, `"rarity": "UNCOMMON"`, `"rarity": "MYTHIC"`, 1),
			"unknown rarity",
		},
		{
			"unknown difficulty",
			strings.Replace(validContent, `"name": "hard"`, `"name": "nightmare"`, 1),
			"unknown difficulty",
		},
		{
			"event without effects",
			strings.Replace(validContent, `"effects": [{"system": "TEMPERATURE", "value": 1.5}]`, `"effects": []`, 1),
			"no effects",
		},
	}

	for _, tc := range cases {
		_, err := LoadContent(writeContent(t, tc.body))
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestLoadContent_MissingFile(t *testing.T) {
	_, err := LoadContent(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read content file") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseSettings_Defaults(t *testing.T) {
	s, err := ParseSettings()
	if err != nil {
		t.Fatalf("parse settings: %v", err)
	}
	if s.ContentFile != "homeostasis_config.json" {
		t.Fatalf("expected default content file, got %q", s.ContentFile)
	}
	if s.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", s.LogLevel)
	}
}

func TestParseSettings_Overrides(t *testing.T) {
	t.Setenv("HOMEOSTASIS_CONTENT", "/tmp/alt.json")
	t.Setenv("HOMEOSTASIS_IDLE_TIMEOUT", "90m")

	s, err := ParseSettings()
	if err != nil {
		t.Fatalf("parse settings: %v", err)
	}
	if s.ContentFile != "/tmp/alt.json" {
		t.Fatalf("expected overridden content file, got %q", s.ContentFile)
	}
	if s.IdleTimeout.Minutes() != 90 {
		t.Fatalf("expected 90m idle timeout, got %v", s.IdleTimeout)
	}
}
