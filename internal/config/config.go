package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/uncursed/internal/logging"
	"github.com/dshills/uncursed/internal/renderer/palette"
)

// Backend names accepted by the backend setting.
const (
	BackendAuto     = "auto"
	BackendSDL      = "sdl"
	BackendTerminal = "terminal"
	BackendNull     = "null"
)

// Backends lists the valid backend names.
var Backends = []string{BackendAuto, BackendSDL, BackendTerminal, BackendNull}

// Demo patterns.
const (
	PatternPalette = "palette"
	PatternCP437   = "cp437"
	PatternScript  = "script"
)

// Patterns lists the valid demo patterns.
var Patterns = []string{PatternPalette, PatternCP437, PatternScript}

// Config holds all settings.
type Config struct {
	// Backend selects the native window: auto, sdl, terminal or null.
	Backend string        `toml:"backend" yaml:"backend"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Demo    DemoConfig    `toml:"demo" yaml:"demo"`
}

// LoggingConfig configures the log output.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log lines. Empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// DisplayConfig configures drawing.
type DisplayConfig struct {
	// Palette overrides the 16 color palette with "#rrggbb" strings.
	Palette []string `toml:"palette" yaml:"palette"`
}

// DemoConfig configures the demo program.
type DemoConfig struct {
	// Pattern is the test card drawn at startup.
	Pattern string `toml:"pattern" yaml:"pattern"`
	// Script is the Lua card drawn by the script pattern.
	Script string `toml:"script" yaml:"script"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend: BackendAuto,
		Logging: LoggingConfig{Level: "info"},
		Demo:    DemoConfig{Pattern: PatternPalette},
	}
}

// Load returns the defaults overlaid with the file at path, if it exists,
// and then with the environment. Files ending in .yaml or .yml are read as
// YAML, anything else as TOML. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// A missing file leaves the defaults in place.
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			decode := cfg.decode
			if isYAML(path) {
				decode = cfg.decodeYAML
			}
			if err := decode(path, bytes.NewReader(data)); err != nil {
				return nil, err
			}
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader overlays TOML read from r onto the defaults. The
// environment is not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode("<reader>", r); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, r io.Reader) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

func (c *Config) decodeYAML(source string, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return &ValidationError{
			Path:    "backend",
			Message: "must be one of " + strings.Join(Backends, ", "),
			Value:   c.Backend,
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Message: "unknown log level", Value: c.Logging.Level}
	}
	if !slices.Contains(Patterns, c.Demo.Pattern) {
		return &ValidationError{
			Path:    "demo.pattern",
			Message: "must be one of " + strings.Join(Patterns, ", "),
			Value:   c.Demo.Pattern,
		}
	}
	if c.Demo.Pattern == PatternScript && c.Demo.Script == "" {
		return &ValidationError{Path: "demo.script", Message: "required by the script pattern", Value: c.Demo.Script}
	}
	if len(c.Display.Palette) > 0 {
		if _, err := c.Palette(); err != nil {
			return &ValidationError{Path: "display.palette", Message: err.Error(), Value: c.Display.Palette}
		}
	}
	return nil
}

// Palette returns the configured palette, or palette.Default when none is
// set.
func (c *Config) Palette() (*palette.Palette, error) {
	if len(c.Display.Palette) == 0 {
		p := palette.Default
		return &p, nil
	}
	if len(c.Display.Palette) != palette.Size {
		return nil, fmt.Errorf("need %d colors, got %d", palette.Size, len(c.Display.Palette))
	}
	var hex [palette.Size]string
	copy(hex[:], c.Display.Palette)
	p, err := palette.Parse(hex)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LoggerConfig converts the logging settings for logging.New. The caller
// owns any file it opens.
func (c *Config) LoggerConfig(output io.Writer) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(c.Logging.Level)
	if output != nil {
		lc.Output = output
	}
	return lc
}
