package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "inventory-agent", cfg.AgentID)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stockdeck"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".stockdeck", "config.yaml"),
		[]byte("api_key: file-key\ntheme: dark\n"),
		0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "inventory-agent", cfg.AgentID, "unset fields keep defaults")
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stockdeck"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".stockdeck", "config.yaml"),
		[]byte("api_key: file-key\nagent_id: file-agent\n"),
		0644))

	t.Setenv("STOCKDECK_API_KEY", "env-key")
	t.Setenv("STOCKDECK_AGENT_ID", "env-agent")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "env-agent", cfg.AgentID)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	want := Config{APIKey: "k", BaseURL: "http://example.test", AgentID: "a", Theme: "dark"}
	require.NoError(t, Save(want))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}
