package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Configuration
// =============================================================================

// configFile is the name of the config file inside the config directory.
const configFile = "config.toml"

// Config holds user-tunable defaults read from ~/.config/newick/config.toml.
// Command-line flags always take precedence over config values.
type Config struct {
	// Order is the default traversal order ("dfs" or "bfs").
	Order string `toml:"order"`

	// Direction is the default reorder direction ("left" or "right").
	Direction string `toml:"direction"`

	// Render holds rendering defaults.
	Render RenderConfig `toml:"render"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	// Format is the default output format ("dot", "svg" or "png").
	Format string `toml:"format"`

	// Detailed enables branch lengths and comments in rendered output.
	Detailed bool `toml:"detailed"`
}

// defaultConfig returns the built-in defaults used when no config file exists
// or a field is left unset.
func defaultConfig() *Config {
	return &Config{
		Order:     "dfs",
		Direction: "left",
		Render: RenderConfig{
			Format: "svg",
		},
	}
}

// LoadConfig reads the user's config file and merges it over the built-in
// defaults. A missing or unreadable file is not an error; the defaults are
// returned unchanged. A malformed file is tolerated with a warning so that a
// bad config never blocks the CLI.
func LoadConfig() *Config {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		printWarning("Ignoring malformed config %s: %v", path, err)
		return cfg
	}

	if file.Order != "" {
		cfg.Order = file.Order
	}
	if file.Direction != "" {
		cfg.Direction = file.Direction
	}
	if file.Render.Format != "" {
		cfg.Render.Format = file.Render.Format
	}
	if file.Render.Detailed {
		cfg.Render.Detailed = true
	}
	return cfg
}
