package calendar

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhi23s/productivity-tracker/internal/storage"
)

const testCredentials = `{
  "installed": {
    "client_id": "test-client",
    "client_secret": "test-secret",
    "redirect_uris": ["urn:ietf:wg:oauth:2.0:oob", "http://localhost"],
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token"
  }
}`

func TestDisabledCreator(t *testing.T) {
	var c Disabled
	assert.False(t, c.Available())

	_, err := c.CreateAllDayEvent(context.Background(), "X", storage.NewDate(2025, time.May, 1))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGoogleAvailability(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	g := NewGoogle(credPath, filepath.Join(dir, "token.json"))

	assert.False(t, g.Available())

	require.NoError(t, os.WriteFile(credPath, []byte(testCredentials), 0o600))
	assert.True(t, g.Available())
}

func TestGoogleAuthURL(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(credPath, []byte(testCredentials), 0o600))
	g := NewGoogle(credPath, filepath.Join(dir, "token.json"))

	url, err := g.AuthURL()
	require.NoError(t, err)
	assert.Contains(t, url, "test-client")
	assert.Contains(t, url, "accounts.google.com")
}

func TestCreateEventWithoutTokenRequiresAuth(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(credPath, []byte(testCredentials), 0o600))
	g := NewGoogle(credPath, filepath.Join(dir, "token.json"))

	_, err := g.CreateAllDayEvent(context.Background(), "Dentist", storage.NewDate(2025, time.May, 1))
	assert.ErrorIs(t, err, ErrAuthRequired)
}
