package main

import (
	"sort"
	"strings"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
	"github.com/pendraco002/homeostasis-cards/internal/storage"
)

func loadContentOrExit(path string) *config.Content {
	content, err := config.LoadContent(path)
	if err != nil {
		logging.Fatal("Missing or invalid content file", err, logging.Fields{
			constants.LogFieldPath: path,
			"hint":                 "create a homeostasis_config.json with 'biomarker_list' (glucose, ph and temperature seeds), 'card_list' and optional 'event_list'/'difficulty_list' sections",
		})
	}
	return content
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

func parseDifficultyOrExit(content *config.Content, raw string) game.Difficulty {
	d := game.Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := content.Difficulty[d]; ok {
		return d
	}
	known := make([]string, 0, len(content.Difficulty))
	for k := range content.Difficulty {
		known = append(known, string(k))
	}
	sort.Strings(known)
	logging.Fatal("Unknown difficulty", nil, logging.Fields{
		constants.LogFieldDifficulty: raw,
		"known":                      strings.Join(known, ", "),
	})
	return ""
}
