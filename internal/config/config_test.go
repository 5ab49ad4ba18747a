package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/uncursed/internal/logging"
	"github.com/dshills/uncursed/internal/renderer/core"
	"github.com/dshills/uncursed/internal/renderer/palette"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvBackend, EnvLogLevel, EnvLogFile} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uncursed.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Backend != BackendAuto {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendAuto)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Demo.Pattern != PatternPalette {
		t.Errorf("Demo.Pattern = %q", cfg.Demo.Pattern)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendAuto {
		t.Errorf("Backend = %q", cfg.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
backend = "null"

[logging]
level = "debug"
file = "/tmp/x.log"

[demo]
pattern = "cp437"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendNull {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/x.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Demo.Pattern != PatternCP437 {
		t.Errorf("Demo.Pattern = %q", cfg.Demo.Pattern)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backend = \"null\"\n")
	t.Setenv(EnvBackend, "terminal")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("Backend = %q, want terminal", cfg.Backend)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestApplyEnvEmptyValues(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.Logging.File = "/var/log/x"
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogFile, "")

	cfg.ApplyEnv()
	if cfg.Backend != BackendAuto {
		t.Errorf("empty %s should be ignored, Backend = %q", EnvBackend, cfg.Backend)
	}
	if cfg.Logging.File != "" {
		t.Errorf("empty %s should select stderr, File = %q", EnvLogFile, cfg.Logging.File)
	}
}

func TestLoadParseError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backend = \n")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("colour = \"red\"\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"backend", func(c *Config) { c.Backend = "x11" }, "backend"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"pattern", func(c *Config) { c.Demo.Pattern = "plaid" }, "demo.pattern"},
		{"palette size", func(c *Config) { c.Display.Palette = []string{"#000000"} }, "display.palette"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate = %v, want validation error", err)
			}
			var verr *ValidationError
			if errors.As(err, &verr) && verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	cfg := Default()
	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if *p != palette.Default {
		t.Error("no palette setting should give the default palette")
	}

	colors := make([]string, palette.Size)
	for i := range colors {
		colors[i] = "#102030"
	}
	colors[15] = "#ffffff"
	cfg.Display.Palette = colors
	p, err = cfg.Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if got := p.Color(0); got != core.ColorFromRGB(0x10, 0x20, 0x30) {
		t.Errorf("color 0 = %v", got)
	}
	if got := p.Color(15); got != core.ColorFromRGB(0xff, 0xff, 0xff) {
		t.Errorf("color 15 = %v", got)
	}

	colors[3] = "not a color"
	if _, err := cfg.Palette(); err == nil {
		t.Error("bad color should fail")
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "error"
	lc := cfg.LoggerConfig(nil)
	if lc.Level != logging.LevelError {
		t.Errorf("Level = %v", lc.Level)
	}
	if lc.Output == nil {
		t.Error("Output should default")
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a", Line: 2, Column: 3, Message: "m"}, "parse error in a at line 2, column 3: m"},
		{ParseError{Path: "a", Line: 2, Message: "m"}, "parse error in a at line 2: m"},
		{ParseError{Path: "a", Message: "m"}, "parse error in a: m"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "uncursed.yaml")
	content := `
backend: terminal
logging:
  level: warn
demo:
  pattern: script
  script: card.lua
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendTerminal || cfg.Logging.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Demo.Pattern != PatternScript || cfg.Demo.Script != "card.lua" {
		t.Errorf("Demo = %+v", cfg.Demo)
	}
}

func TestLoadYAMLUnknownField(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "uncursed.yml")
	if err := os.WriteFile(path, []byte("colour: red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error = %v, want *ParseError", err)
	}
}

func TestScriptPatternNeedsScript(t *testing.T) {
	cfg := Default()
	cfg.Demo.Pattern = PatternScript
	var verr *ValidationError
	if err := cfg.Validate(); !errors.As(err, &verr) || verr.Path != "demo.script" {
		t.Errorf("Validate = %v, want demo.script error", err)
	}
	cfg.Demo.Script = "card.lua"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v", err)
	}
}
