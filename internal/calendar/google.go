package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/abhi23s/productivity-tracker/internal/storage"
)

// ErrAuthRequired means no cached token exists yet; the user has to run the
// authorization flow once.
var ErrAuthRequired = errors.New("google calendar authorization required (run `grind auth`)")

// Google creates all-day events on the user's primary Google Calendar.
// Availability is simply whether the OAuth client credentials file exists;
// the authorized token is cached in a sibling file.
type Google struct {
	credentialsPath string
	tokenPath       string
}

func NewGoogle(credentialsPath, tokenPath string) *Google {
	return &Google{credentialsPath: credentialsPath, tokenPath: tokenPath}
}

func (g *Google) Available() bool {
	_, err := os.Stat(g.credentialsPath)
	return err == nil
}

func (g *Google) oauthConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(g.credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read calendar credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse calendar credentials: %w", err)
	}
	return cfg, nil
}

func (g *Google) cachedToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(g.tokenPath)
	if err != nil {
		return nil, ErrAuthRequired
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, ErrAuthRequired
	}
	return &tok, nil
}

func (g *Google) CreateAllDayEvent(ctx context.Context, title string, due storage.Date) (string, error) {
	cfg, err := g.oauthConfig()
	if err != nil {
		return "", err
	}
	tok, err := g.cachedToken()
	if err != nil {
		return "", err
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, tok)))
	if err != nil {
		return "", fmt.Errorf("create calendar client: %w", err)
	}

	event := &gcal.Event{
		Summary:     "⏳ TASK DUE: " + title,
		Description: "Task scheduled via Productivity Tracker",
		Start:       &gcal.EventDateTime{Date: due.String()},
		End:         &gcal.EventDateTime{Date: due.String()},
		Reminders:   &gcal.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}
	created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event: %w", err)
	}
	return created.Id, nil
}

// AuthURL returns the URL the user visits to grant calendar access.
func (g *Google) AuthURL() (string, error) {
	cfg, err := g.oauthConfig()
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline), nil
}

// Exchange trades the pasted authorization code for a token and caches it.
func (g *Google) Exchange(ctx context.Context, code string) error {
	cfg, err := g.oauthConfig()
	if err != nil {
		return err
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange auth code: %w", err)
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(g.tokenPath), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(g.tokenPath, data, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}
