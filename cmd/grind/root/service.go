package root

import (
	"errors"

	"github.com/abhi23s/productivity-tracker/internal/calendar"
	"github.com/abhi23s/productivity-tracker/internal/config"
	"github.com/abhi23s/productivity-tracker/internal/engine"
	"github.com/abhi23s/productivity-tracker/internal/storage"
)

var userFlag string

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func openCalendar(cfg *config.Config) *calendar.Google {
	return calendar.NewGoogle(cfg.Calendar.CredentialsFile, cfg.Calendar.TokenFile)
}

func openService() (*engine.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	username := userFlag
	if username == "" {
		username = cfg.DefaultUser
	}
	if engine.NormalizeUsername(username) == "" {
		return nil, errors.New("no player set: pass --user or set default_user in config.yaml / GRIND_USER")
	}

	store := storage.NewFileStore(cfg.DataDir)
	return engine.NewService(store, openCalendar(cfg), username), nil
}
