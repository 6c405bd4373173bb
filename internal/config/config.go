// Package config loads the deckwatch configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ramonehamilton/deckwatch/internal/format"
)

// Config represents the application configuration.
type Config struct {
	// Card corpus configuration
	Corpus CorpusConfig `toml:"corpus"`

	// Deck handling defaults
	Deck DeckConfig `toml:"deck"`

	// Resolver fan-out limits
	Resolver ResolverConfig `toml:"resolver"`

	// Watch mode configuration
	Watch WatchConfig `toml:"watch"`

	// Custom formats registered on top of the builtin rule table
	Formats []FormatConfig `toml:"formats"`
}

// CorpusConfig contains card corpus settings.
type CorpusConfig struct {
	Path        string `toml:"path"`         // Path to the corpus SQLite database
	SearchLimit int    `toml:"search_limit"` // Max candidates per search
}

// DeckConfig contains deck handling defaults.
type DeckConfig struct {
	DefaultFormat string `toml:"default_format"` // Format assumed when a list names none
}

// ResolverConfig bounds concurrent card lookups.
type ResolverConfig struct {
	MaxConcurrency   int     `toml:"max_concurrency"`    // In-flight lookups
	LookupsPerSecond float64 `toml:"lookups_per_second"` // 0 = unlimited
}

// WatchConfig contains decklist watch settings.
type WatchConfig struct {
	Debounce string `toml:"debounce"` // Delay before revalidating (e.g., "500ms")
}

// FormatConfig describes a custom format in the configuration file.
type FormatConfig struct {
	Name              string `toml:"name"`
	MinSize           int    `toml:"min_size"`
	MaxSize           int    `toml:"max_size"`   // 0 = unbounded
	MaxCopies         int    `toml:"max_copies"` // 0 = unbounded
	RequiresCommander bool   `toml:"requires_commander"`
	AllowsSideboard   bool   `toml:"allows_sideboard"`
	SideboardMaxSize  int    `toml:"sideboard_max_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path:        "",
			SearchLimit: 50,
		},
		Deck: DeckConfig{
			DefaultFormat: "Standard",
		},
		Resolver: ResolverConfig{
			MaxConcurrency:   8,
			LookupsPerSecond: 0,
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".deckwatch", "config.toml"), nil
}

// Load loads the configuration from the given path. An empty path uses
// the default location; a missing file yields the default config.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the given path (default location
// when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Corpus.SearchLimit < 0 {
		return fmt.Errorf("corpus search limit cannot be negative: %d", c.Corpus.SearchLimit)
	}

	if c.Resolver.MaxConcurrency < 0 {
		return fmt.Errorf("resolver max concurrency cannot be negative: %d", c.Resolver.MaxConcurrency)
	}
	if c.Resolver.LookupsPerSecond < 0 {
		return fmt.Errorf("resolver lookups per second cannot be negative: %g", c.Resolver.LookupsPerSecond)
	}

	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
		}
	}

	for _, f := range c.Formats {
		if f.Name == "" {
			return fmt.Errorf("custom format name cannot be empty")
		}
	}

	return nil
}

// RuleTable builds the format rule table: the builtin formats plus the
// custom formats declared in the configuration.
func (c *Config) RuleTable() (*format.Table, error) {
	table := format.NewTable()

	for _, f := range c.Formats {
		rule := format.Rule{
			Name:              f.Name,
			MinSize:           f.MinSize,
			MaxSize:           f.MaxSize,
			MaxCopies:         f.MaxCopies,
			RequiresCommander: f.RequiresCommander,
			AllowsSideboard:   f.AllowsSideboard,
			SideboardMaxSize:  f.SideboardMaxSize,
		}
		if err := table.Register(rule); err != nil {
			return nil, fmt.Errorf("register custom format: %w", err)
		}
	}

	return table, nil
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 500 * time.Millisecond, nil
	}
	return time.ParseDuration(c.Watch.Debounce)
}
