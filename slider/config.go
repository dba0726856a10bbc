package slider

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DeckPath is the location of the default deck inside the app content.
const DeckPath = "assets/showcase.yaml"

// EnvPrefix prefixes environment overrides: SHOWCASE_AUTOPLAY_DELAY=8s.
const EnvPrefix = "SHOWCASE_"

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// SlideConfig describes one slide of the deck.
type SlideConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Caption string `yaml:"caption" koanf:"caption"`
	// Image is an asset name loaded after the slider is built. Empty means
	// the slide only shows its colour and text.
	Image string `yaml:"image" koanf:"image"`
	Color string `yaml:"color" koanf:"color"`
}

// Config holds the slider deck and its timing.
type Config struct {
	AutoPlayDelay    time.Duration `yaml:"autoplay_delay" koanf:"autoplay_delay"`
	MinSwipeDistance float32       `yaml:"min_swipe_distance" koanf:"min_swipe_distance"`
	TransitionSound  string        `yaml:"transition_sound" koanf:"transition_sound"`
	Width            float32       `yaml:"width" koanf:"width"`
	Height           float32       `yaml:"height" koanf:"height"`
	Slides           []SlideConfig `yaml:"slides" koanf:"slides"`
}

// DefaultConfig returns the built-in timing with an empty deck.
func DefaultConfig() *Config {
	return &Config{
		AutoPlayDelay:    DefaultAutoPlayDelay,
		MinSwipeDistance: DefaultMinSwipeDistance,
		Width:            640,
		Height:           360,
	}
}

// LoadConfig reads the embedded deck, then overlays the optional YAML file
// at overridePath and SHOWCASE_* environment variables.
func LoadConfig(reader AppContentReader, overridePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := reader.ReadFile(DeckPath)
	switch {
	case err == nil:
		if err := yamlv3.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", DeckPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", DeckPath, err)
	}

	k := koanf.New(".")

	if overridePath != "" {
		if _, err := os.Stat(overridePath); err != nil {
			return nil, fmt.Errorf("accessing config %s: %w", overridePath, err)
		}
		if err := k.Load(file.Provider(overridePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", overridePath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// An override deck replaces the embedded one instead of being merged
	// slide by slide.
	if k.Exists("slides") {
		cfg.Slides = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.AutoPlayDelay <= 0 {
		return fmt.Errorf("autoplay_delay must be positive, got %s", c.AutoPlayDelay)
	}
	if c.MinSwipeDistance < 0 {
		return fmt.Errorf("min_swipe_distance must be non-negative")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	for i, s := range c.Slides {
		if s.Title == "" && s.Image == "" {
			return fmt.Errorf("slide %d: needs a title or an image", i)
		}
		if s.Color != "" {
			if _, err := ParseHexColor(s.Color); err != nil {
				return fmt.Errorf("slide %d: %w", i, err)
			}
		}
	}
	return nil
}
