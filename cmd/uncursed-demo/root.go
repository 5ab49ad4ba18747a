package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/uncursed/internal/config"
	"github.com/dshills/uncursed/internal/logging"
	"github.com/dshills/uncursed/internal/plugin/sdl"
	"github.com/dshills/uncursed/internal/renderer/backend"
	"github.com/dshills/uncursed/internal/renderer/palette"
	"github.com/dshills/uncursed/internal/script"
	"github.com/dshills/uncursed/internal/uncursed"
)

// ErrNoDisplay is returned when auto selection finds neither SDL nor a
// terminal.
var ErrNoDisplay = errors.New("no display available: SDL is not compiled in and stdout is not a terminal")

type flags struct {
	configPath string
	backend    string
	logLevel   string
	logFile    string
	pattern    string
	script     string
	watch      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "uncursed-demo",
		Short:         "Draw a test card through the uncursed graphical plugin",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return start(cfg, f, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "path to configuration file")
	fl.StringVarP(&f.backend, "backend", "b", "", "display backend (auto, sdl, terminal, null)")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	fl.StringVarP(&f.pattern, "pattern", "p", "", "test card (palette, cp437, script)")
	fl.StringVarP(&f.script, "script", "s", "", "Lua card script; implies --pattern script")
	fl.BoolVarP(&f.watch, "watch", "w", false, "reload the config file when it changes")
	return cmd
}

// loadConfig layers flags that were given over the file and environment.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fl.Changed("log-file") {
		cfg.Logging.File = f.logFile
	}
	if fl.Changed("pattern") {
		cfg.Demo.Pattern = f.pattern
	}
	if fl.Changed("script") {
		cfg.Demo.Script = f.script
		cfg.Demo.Pattern = config.PatternScript
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func start(cfg *config.Config, f flags, stderr io.Writer) error {
	logOut := stderr
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer file.Close()
		logOut = file
	}
	log := logging.New(cfg.LoggerConfig(logOut)).WithField("session", uuid.NewString())

	pal, err := cfg.Palette()
	if err != nil {
		return err
	}

	d := &demo{
		pattern:     cfg.Demo.Pattern,
		interactive: cfg.Backend != config.BackendNull,
		log:         log,
	}
	if cfg.Demo.Pattern == config.PatternScript {
		card, err := script.Load(cfg.Demo.Script)
		if err != nil {
			return err
		}
		defer card.Close()
		d.card = card
	}

	b, err := openBackend(cfg.Backend, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return err
	}
	log.Info("using %s backend", backendName(b))

	p, g, err := openDisplay(b, pal, log)
	if err != nil {
		return err
	}
	defer p.Close()
	d.hooks, d.grid = p, g

	if q, ok := b.(quitter); ok {
		stop := forwardSignals(q)
		defer stop()
	}

	if f.watch && f.configPath != "" {
		w, err := config.Watch(f.configPath, config.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		defer w.Close()
		d.reloads = w.Updates()
		d.reloadErrs = w.Errors()
		log.Info("watching %s", f.configPath)
	}

	return d.run()
}

// openDisplay opens the plugin on b with a host grid sized to the grid Init
// reports.
func openDisplay(b backend.Backend, pal *palette.Palette, log *logging.Logger) (*sdl.Plugin, *uncursed.Grid, error) {
	g := uncursed.NewGrid(sdl.InitialGrid.H, sdl.InitialGrid.W)
	p := sdl.New(sdl.Options{Backend: b, Host: g, Palette: pal, Logger: log})
	h, w, err := p.Init()
	if err != nil {
		return nil, nil, err
	}
	g.Resize(h, w)
	return p, g, nil
}

// forwardSignals turns SIGINT and SIGTERM into quit requests until stop is
// called.
func forwardSignals(q quitter) (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-signals:
			q.RequestQuit()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
		wg.Wait()
	}
}

// quitter is a backend that can be asked to deliver a quit event from
// another goroutine.
type quitter interface {
	RequestQuit()
}

// openBackend creates the named backend. Auto prefers SDL and falls back to
// the terminal when stdout is one.
func openBackend(name string, isTTY bool) (backend.Backend, error) {
	switch name {
	case config.BackendSDL:
		return newSDL()
	case config.BackendTerminal:
		return newTerminal()
	case config.BackendNull:
		return backend.NewNullBackend(), nil
	case config.BackendAuto, "":
		if backend.SDLAvailable {
			return newSDL()
		}
		if isTTY {
			return newTerminal()
		}
		return nil, ErrNoDisplay
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func newSDL() (backend.Backend, error) {
	s, err := backend.NewSDL()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newTerminal() (backend.Backend, error) {
	t, err := backend.NewTerminal(sdl.Font)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func backendName(b backend.Backend) string {
	switch b.(type) {
	case *backend.SDL:
		return config.BackendSDL
	case *backend.Terminal:
		return config.BackendTerminal
	case *backend.NullBackend:
		return config.BackendNull
	default:
		return fmt.Sprintf("%T", b)
	}
}
