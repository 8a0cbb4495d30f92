package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

// SessionRepo is the minimal repository interface required by the session
// use cases. Using a small interface simplifies testing.
type SessionRepo interface {
	CreateSession(s *game.GameSession) error
	GetSessionByUUID(uuid string) (*game.GameSession, error)
	UpdateSession(s *game.GameSession) error
	DeleteSession(uuid string) error
	SaveHistory(records []game.BiomarkerHistory) error
}

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// CreateSession builds a fresh lobby session for a player: seeded biomarker
// state from the content file and a shuffled deck of DeckCopies copies of
// the card catalog. The hand stays empty until BeginMatch deals it.
func CreateSession(repo SessionRepo, content *config.Content, playerID string, difficulty game.Difficulty) (*game.GameSession, error) {
	if difficulty == "" {
		difficulty = game.DifficultyMedium
	}
	tuning, ok := content.Difficulty[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	deck := make([]game.Card, 0, len(content.Cards)*tuning.DeckCopies)
	for i := 0; i < tuning.DeckCopies; i++ {
		deck = append(deck, content.Cards...)
	}
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	now := time.Now()
	s := &game.GameSession{
		SessionUUID:  uuid.NewString(),
		PlayerID:     playerID,
		Status:       game.StatusLobby,
		CurrentState: content.Seed,
		Deck:         deck,
		StartTime:    now,
		LastSave:     now,
		Difficulty:   difficulty,
	}
	s.Score = engine.Score(s)

	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	logging.Info("session created", logging.Fields{
		constants.LogFieldSessionUUID: s.SessionUUID,
		constants.LogFieldPlayerID:    playerID,
		constants.LogFieldDifficulty:  string(difficulty),
		constants.LogFieldCount:       len(deck),
	})
	return s, nil
}
