package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "credentials.json"), cfg.Calendar.CredentialsFile)
	assert.Equal(t, filepath.Join(dir, "token.json"), cfg.Calendar.TokenFile)
	assert.Empty(t, cfg.DefaultUser)
}

func TestLoadFromParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
default_user: alice
calendar:
  credentials_file: /etc/grind/creds.json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.DefaultUser)
	assert.Equal(t, "/etc/grind/creds.json", cfg.Calendar.CredentialsFile)
	// Unset values still fall back to the data dir.
	assert.Equal(t, filepath.Join(dir, "token.json"), cfg.Calendar.TokenFile)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_user: alice\n"), 0o644))
	t.Setenv("GRIND_USER", "bob")
	t.Setenv("GRIND_DATA_DIR", "/tmp/elsewhere")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.DefaultUser)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.Equal(t, filepath.Join("/tmp/elsewhere", "credentials.json"), cfg.Calendar.CredentialsFile)
}

func TestBadYAMLIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("::not yaml"), 0o644))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
