package config

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".checklist.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:     ThemeClassic,
		StateFile: ".checklist",
		BaseURL:   "http://localhost:8080/",
		Clipboard: true,
		Serve: ServeConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}
