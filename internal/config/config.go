package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"reel/internal/eventbus"
)

// FileName is the per-directory config file looked up before the user config.
const FileName = ".reel.toml"

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version" validate:"gte=0"`
	Name      string         `toml:"name"`
	SlidesDir string         `toml:"slides_dir,omitempty"`
	Watch     bool           `toml:"watch"`
	Slider    SliderSettings `toml:"slider"`
	UI        UISettings     `toml:"ui"`
	Log       LogSettings    `toml:"log"`
	Slides    []SlideConfig  `toml:"slides,omitempty" validate:"dive"`
}

// SliderSettings mirrors the carousel options
type SliderSettings struct {
	Disabled     bool              `toml:"disabled"`
	Auto         bool              `toml:"auto"`
	Circle       bool              `toml:"circle"`
	AutoInterval Duration          `toml:"auto_interval" validate:"gte=0"`
	SwitchDelay  Duration          `toml:"switch_delay" validate:"gte=0"`
	Animation    AnimationSettings `toml:"animation"`
}

// AnimationSettings selects and tunes the transition strategy
type AnimationSettings struct {
	Name      string   `toml:"name"`
	Easing    string   `toml:"easing,omitempty" validate:"omitempty,oneof=linear ease-in ease-out ease-in-out"`
	Interval  Duration `toml:"interval" validate:"gte=0"`
	Direction string   `toml:"direction,omitempty" validate:"omitempty,oneof=horizontal vertical"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title    string `toml:"title,omitempty"`
	Width    int    `toml:"width" validate:"gte=0"`
	Height   int    `toml:"height" validate:"gte=0"`
	ShowHelp bool   `toml:"show_help"`
	Mouse    bool   `toml:"mouse"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// SlideConfig is a slide declared inline or pointing at a file
type SlideConfig struct {
	Title  string `toml:"title,omitempty"`
	Body   string `toml:"body,omitempty" validate:"required_without=File"`
	File   string `toml:"file,omitempty" validate:"required_without=Body"`
	Format string `toml:"format,omitempty" validate:"omitempty,oneof=text markdown"`
}

// Duration is a time.Duration written as "2s" or "150ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

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

// NewConfigService creates a config service backed by path. An empty path
// means the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath is <user config dir>/reel/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "reel", "config.toml")
}

// Resolve picks the config file to use: the explicit path, else a
// .reel.toml in dir, else the user config path.
func Resolve(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return DefaultPath()
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values; unknown keys are an error.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Slide files and the slides dir are relative to the config file
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes and validates TOML on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	if c.SlidesDir != "" && !filepath.IsAbs(c.SlidesDir) {
		c.SlidesDir = filepath.Join(base, c.SlidesDir)
	}
	for i := range c.Slides {
		if f := c.Slides[i].File; f != "" && !filepath.IsAbs(f) {
			c.Slides[i].File = filepath.Join(base, f)
		}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Name:    "reel",
		Watch:   true,
		Slider: SliderSettings{
			Auto:         true,
			Circle:       true,
			AutoInterval: Duration(2 * time.Second),
			SwitchDelay:  Duration(50 * time.Millisecond),
			Animation: AnimationSettings{
				Name:     "default",
				Interval: Duration(200 * time.Millisecond),
			},
		},
		UI: UISettings{
			ShowHelp: true,
			Mouse:    true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// SampleConfig is written by `reel init`: the defaults plus a few slides
func SampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Slider.Animation.Name = "slide"
	cfg.Slider.Animation.Easing = "ease-out"
	cfg.Slides = []SlideConfig{
		{Title: "Welcome", Body: "# reel\n\nA carousel for your terminal.", Format: "markdown"},
		{Title: "Navigate", Body: "Use ← and → or click the arrows.\nNumber keys jump straight to a slide."},
		{Title: "Auto-play", Body: "Slides advance on their own.\nHover the stage to hold the current one."},
	}
	return cfg
}
