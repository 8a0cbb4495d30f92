package main

import (
	"context"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
	"github.com/pendraco002/homeostasis-cards/internal/service"
)

type idleStore interface {
	FindIdleSessions(cutoff time.Time) ([]game.GameSession, error)
	UpdateSession(s *game.GameSession) error
	DeleteSession(sessionUUID string) error
}

// sweepIdleSessions finds open sessions whose last save predates the idle
// threshold and delegates each one to service.HandleIdleSession.
func sweepIdleSessions(repo idleStore, idleTimeout time.Duration) error {
	cutoff := time.Now().Add(-idleTimeout)
	sessions, err := repo.FindIdleSessions(cutoff)
	if err != nil {
		return err
	}
	for i := range sessions {
		s := sessions[i]
		if err := service.HandleIdleSession(repo, &s); err != nil {
			logging.Error("failed to handle idle session", err, logging.Fields{
				constants.LogFieldSessionUUID: s.SessionUUID,
			})
		}
	}
	logging.Info("idle sweep finished", logging.Fields{constants.LogFieldCount: len(sessions)})
	return nil
}

// watchIdleSessions repeats the sweep on a fixed interval until the context
// is canceled.
func watchIdleSessions(ctx context.Context, repo idleStore, idleTimeout, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweepIdleSessions(repo, idleTimeout); err != nil {
				logging.Error("idle sweep failed", err, nil)
			}
		}
	}
}
