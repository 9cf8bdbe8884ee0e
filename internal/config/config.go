package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pelletier/go-toml/v2"

	"showcase/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Source  SourceSettings `toml:"source"`
	UI      UISettings     `toml:"ui"`
	Cache   CacheSettings  `toml:"cache"`
}

// SourceSettings describes where the product list comes from
type SourceSettings struct {
	URL       string `toml:"url"` // http(s)://, s3://bucket/key or a local .json/.yaml file
	TimeoutMs int    `toml:"timeout_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	TransitionMs          int    `toml:"transition_ms"` // 0 switches slides immediately
	HideScrollbarWhenFits bool   `toml:"hide_scrollbar_when_fits"`
	DefaultColor          string `toml:"default_color"`
	CardWidth             int    `toml:"card_width"`
	Sort                  string `toml:"sort"` // catalog, name, price or popularity
}

// CacheSettings controls the offline product cache
type CacheSettings struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Defaults
const (
	DefaultTimeoutMs    = 10000
	DefaultTransitionMs = 500
	DefaultCardWidth    = 26
	DefaultColor        = "yellow"
	MinCardWidth        = 16
)

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultConfigDir returns the platform-appropriate config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "showcase")
	}

	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "showcase")
		}
		return filepath.Join(home, ".config", "showcase")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "showcase")
		}
		return filepath.Join(home, ".config", "showcase")
	}
}

// NewConfigService creates a config service reading the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(DefaultConfigDir(), "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service bound to path with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: ""})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so booleans missing from the file keep their default
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path, atomically
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source: SourceSettings{
			TimeoutMs: DefaultTimeoutMs,
		},
		UI: UISettings{
			TransitionMs:          DefaultTransitionMs,
			HideScrollbarWhenFits: true,
			DefaultColor:          DefaultColor,
			CardWidth:             DefaultCardWidth,
		},
		Cache: CacheSettings{
			Enabled: true,
			Path:    filepath.Join(DefaultConfigDir(), "cache.db"),
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Source.TimeoutMs <= 0 {
		cfg.Source.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.UI.TransitionMs < 0 {
		cfg.UI.TransitionMs = 0
	}
	if cfg.UI.DefaultColor == "" {
		cfg.UI.DefaultColor = DefaultColor
	}
	if cfg.UI.CardWidth < MinCardWidth {
		cfg.UI.CardWidth = DefaultCardWidth
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = filepath.Join(DefaultConfigDir(), "cache.db")
	}
}

// Timeout returns the configured fetch timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutMs) * time.Millisecond
}

// Transition returns the configured slide transition duration
func (c *Config) Transition() time.Duration {
	return time.Duration(c.UI.TransitionMs) * time.Millisecond
}
