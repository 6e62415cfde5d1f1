// Package config loads the TOML configuration file and applies STARFETCH_* environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/starfetch/boot"
	"github.com/lixenwraith/starfetch/sysinfo"
)

// ErrInvalid reports a config value outside its allowed set
var ErrInvalid = errors.New("invalid config")

// EnvPrefix prefixes every environment override
const EnvPrefix = "STARFETCH"

// Config is the full configuration; zero values fall back to defaults through the accessors
type Config struct {
	Color     string            `toml:"color"`
	Mode      string            `toml:"mode"`
	Fields    []string          `toml:"fields,omitempty"`
	Separator string            `toml:"separator"`
	Palette   *bool             `toml:"palette,omitempty"`
	Labels    map[string]string `toml:"labels,omitempty"`
	Colors    PanelColors       `toml:"colors"`
	Splash    Splash            `toml:"splash"`
	Log       Log               `toml:"log"`
}

// PanelColors override the theme of the static panel; empty keeps the theme color
type PanelColors struct {
	Title     string `toml:"title"`
	Label     string `toml:"label"`
	Separator string `toml:"separator"`
}

// Splash configures the boot animation
type Splash struct {
	Align string `toml:"align"`

	Width     *int `toml:"width,omitempty"`
	Height    *int `toml:"height,omitempty"`
	MinWidth  int  `toml:"min_width"`
	MinHeight int  `toml:"min_height"`
	MaxWidth  int  `toml:"max_width,omitempty"`
	MaxHeight int  `toml:"max_height,omitempty"`

	RenderMode     string `toml:"render_mode"`
	Image          string `toml:"image,omitempty"`
	Stretch        string `toml:"stretch"`
	Transparency   uint8  `toml:"transparency"`
	StarBrightness *uint8 `toml:"star_brightness,omitempty"`

	// Timeout is in seconds
	Timeout  int    `toml:"timeout"`
	Entrance string `toml:"entrance"`
	Exit     string `toml:"exit"`
	Chime    bool   `toml:"chime"`
	Capture  bool   `toml:"capture"`

	Colors SplashColors `toml:"colors"`
}

// SplashColors are tcell color names or #rrggbb
type SplashColors struct {
	Border string `toml:"border"`
	Status string `toml:"status"`
	Footer string `toml:"footer"`
}

// Log configures the file logger
type Log struct {
	Level       string `toml:"level"`
	File        string `toml:"file,omitempty"`
	Development bool   `toml:"development"`
}

// envOverrides maps STARFETCH_* variables; empty or zero means not set
type envOverrides struct {
	Color      string `envconfig:"COLOR"`
	Mode       string `envconfig:"MODE"`
	RenderMode string `envconfig:"RENDER_MODE"`
	Image      string `envconfig:"IMAGE"`
	Entrance   string `envconfig:"ENTRANCE"`
	Exit       string `envconfig:"EXIT"`
	Timeout    int    `envconfig:"TIMEOUT"`
	Capture    bool   `envconfig:"CAPTURE"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogFile    string `envconfig:"LOG_FILE"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Color:     "green",
		Mode:      ModeDefault,
		Separator: "-",
		Splash: Splash{
			Align:      "left",
			MinWidth:   boot.MinBoxWidth,
			MinHeight:  boot.MinBoxHeight,
			RenderMode: "auto",
			Stretch:    "fill",
			Timeout:    120,
			Entrance:   "slow",
			Exit:       "slow",
			Colors: SplashColors{
				Border: "#646478",
				Status: "#8c8c8c",
				Footer: "#8c8c8c",
			},
		},
		Log: Log{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/starfetch/config.toml, or ~/.config/starfetch/config.toml
func DefaultPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "starfetch", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "starfetch", "config.toml")
	}
	return filepath.Join(".config", "starfetch", "config.toml")
}

// Load reads path (DefaultPath when empty), then applies environment overrides
// A missing file is not an error. A malformed or invalid file returns the defaults with
// environment overrides applied, together with an error wrapping ErrInvalid
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath(os.Getenv)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return withEnv(Default()), fmt.Errorf("read config %s: %w", path, err)
	default:
		if perr := Parse(data, cfg); perr != nil {
			return withEnv(Default()), fmt.Errorf("config %s: %w", path, perr)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return withEnv(Default()), err
	}
	if err := cfg.Validate(); err != nil {
		return withEnv(Default()), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg; keys absent from data keep their current value
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%w: line %d column %d: %s", ErrInvalid, row, col, derr.Error())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func withEnv(cfg *Config) *Config {
	_ = applyEnv(cfg)
	return cfg
}

// applyEnv overlays STARFETCH_* variables on cfg
func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("%w: environment: %w", ErrInvalid, err)
	}

	setString(&cfg.Color, env.Color)
	setString(&cfg.Mode, env.Mode)
	setString(&cfg.Splash.RenderMode, env.RenderMode)
	setString(&cfg.Splash.Image, env.Image)
	setString(&cfg.Splash.Entrance, env.Entrance)
	setString(&cfg.Splash.Exit, env.Exit)
	setString(&cfg.Log.Level, env.LogLevel)
	setString(&cfg.Log.File, env.LogFile)
	if env.Timeout > 0 {
		cfg.Splash.Timeout = env.Timeout
	}
	if env.Capture {
		cfg.Splash.Capture = true
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ActiveFields returns the configured field order, or every field
func (c *Config) ActiveFields() []string {
	if len(c.Fields) == 0 {
		return sysinfo.DefaultFields
	}
	return c.Fields
}

// ShowPalette reports whether the color palette rows are shown
func (c *Config) ShowPalette() bool {
	return c.Palette == nil || *c.Palette
}

// SeparatorChar returns the character repeated under the title
func (c *Config) SeparatorChar() string {
	if c.Separator == "" {
		return "-"
	}
	return c.Separator
}

// LabelFor returns the display label of a field key
func (c *Config) LabelFor(key string) string {
	if l, ok := c.Labels[key]; ok {
		return l
	}
	return key
}

// ExpandHome replaces a leading ~ with home
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
