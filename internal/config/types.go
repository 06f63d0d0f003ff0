package config

// Theme names the palette used by the terminal front ends.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeNeon    Theme = "neon"
	ThemeMono    Theme = "mono"
)

// Config is the checklist configuration, corresponding to .checklist.yml.
type Config struct {
	Theme     Theme       `yaml:"theme" koanf:"theme"`
	StateFile string      `yaml:"state_file" koanf:"state_file"`
	BaseURL   string      `yaml:"base_url" koanf:"base_url"`
	Clipboard bool        `yaml:"clipboard" koanf:"clipboard"`
	Serve     ServeConfig `yaml:"serve" koanf:"serve"`
	Log       LogConfig   `yaml:"log" koanf:"log"`
	Color     ColorConfig `yaml:"color" koanf:"color"`
}

// ServeConfig holds settings for `checklist serve`.
type ServeConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose" koanf:"verbose"`
}

// ColorConfig overrides terminal color detection.
type ColorConfig struct {
	Force   bool `yaml:"force" koanf:"force"`
	Disable bool `yaml:"disable" koanf:"disable"`
}
