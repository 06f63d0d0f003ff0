package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides: CHECKLIST_THEME -> theme,
// CHECKLIST_SERVE__ADDR -> serve.addr.
const EnvPrefix = "CHECKLIST_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps CHECKLIST_SERVE__ALLOW_ALL_ORIGINS to serve.allow_all_origins.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeClassic: true,
	ThemeNeon:    true,
	ThemeMono:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of classic, neon, mono", c.Theme)
	}
	if c.StateFile == "" {
		return fmt.Errorf("state_file is required")
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", c.BaseURL)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("base_url %q must not carry a query", c.BaseURL)
	}
	return nil
}

// ShareURL joins the base URL and a query string into the link a browser
// would show.
func (c *Config) ShareURL(query string) string {
	base := strings.TrimSuffix(c.BaseURL, "?")
	if query == "" {
		return base
	}
	return base + "?" + query
}
