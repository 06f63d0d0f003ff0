package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\nserve:\n  addr: \":9000\"\nlog:\n  verbose: true\n"), 0o644))
	t.Setenv("CHECKLIST_STATE_FILE", "/tmp/lists")
	t.Setenv("CHECKLIST_SERVE__ALLOW_ALL_ORIGINS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeNeon, cfg.Theme)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, "/tmp/lists", cfg.StateFile)
	assert.True(t, cfg.Serve.AllowAllOrigins)
	assert.Equal(t, "http://localhost:8080/", cfg.BaseURL)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	cfg := DefaultConfig()
	cfg.Theme = ThemeMono
	cfg.Color.Disable = true
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad theme", func(c *Config) { c.Theme = "pink" }, "invalid theme"},
		{"no state file", func(c *Config) { c.StateFile = "" }, "state_file"},
		{"no addr", func(c *Config) { c.Serve.Addr = "" }, "serve.addr"},
		{"relative base url", func(c *Config) { c.BaseURL = "lists/" }, "invalid base_url"},
		{"base url with query", func(c *Config) { c.BaseURL = "http://x/?a=b" }, "must not carry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestShareURL(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8080/?l1name=a", cfg.ShareURL("l1name=a"))
	assert.Equal(t, "http://localhost:8080/", cfg.ShareURL(""))
}
