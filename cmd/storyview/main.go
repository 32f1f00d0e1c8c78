package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fwojciec/storyview"
	"github.com/fwojciec/storyview/bubbletea"
	"github.com/fwojciec/storyview/clipboard"
	"github.com/fwojciec/storyview/fs"
	"github.com/fwojciec/storyview/lipgloss"
	"github.com/fwojciec/storyview/toml"
	"github.com/fwojciec/storyview/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned when the loaded deck or settings fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Overrides holds settings given on the command line. Nil fields were not set.
type Overrides struct {
	Theme          *string
	SwipeThreshold *float64
	Touch          *bool
}

// ExtLoader picks a ConfigLoader by file extension. Files ending in .toml
// use TOML; everything else is read as YAML.
type ExtLoader struct {
	YAML storyview.ConfigLoader
	TOML storyview.ConfigLoader
}

// Load implements storyview.ConfigLoader.
func (l *ExtLoader) Load(path string) (storyview.Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return l.TOML.Load(path)
	}
	return l.YAML.Load(path)
}

// ViewerFactory builds the viewer for resolved settings.
type ViewerFactory func(settings storyview.Settings, theme storyview.Theme) storyview.Viewer

// App encapsulates the application logic for testing.
type App struct {
	ConfigPath string
	Loader     storyview.ConfigLoader
	Overrides  Overrides
	NewViewer  ViewerFactory
	Logger     *zap.Logger
}

// Run resolves the configuration and displays the deck.
func (a *App) Run(ctx context.Context) error {
	cfg, theme, err := a.Resolve()
	if err != nil {
		return err
	}

	a.logger().Info("starting slideshow",
		zap.Int("stories", cfg.Deck.Len()),
		zap.String("theme", theme.Name()),
		zap.Stringer("modality", cfg.Settings.Modality),
		zap.Float64("swipe_threshold", cfg.Settings.SwipeThreshold),
	)
	return a.NewViewer(cfg.Settings, theme).View(ctx, cfg.Deck)
}

// Resolve loads the config file if one was given, applies command line
// overrides and validates the result against the selected theme.
func (a *App) Resolve() (storyview.Config, *lipgloss.Theme, error) {
	cfg := storyview.DefaultConfig()
	if a.ConfigPath != "" {
		loaded, err := a.Loader.Load(a.ConfigPath)
		if err != nil {
			return storyview.Config{}, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if a.Overrides.Theme != nil {
		cfg.Settings.Theme = *a.Overrides.Theme
	}
	if a.Overrides.SwipeThreshold != nil {
		cfg.Settings.SwipeThreshold = *a.Overrides.SwipeThreshold
	}
	if a.Overrides.Touch != nil {
		cfg.Settings.Modality = storyview.ModalityKeyboard
		if *a.Overrides.Touch {
			cfg.Settings.Modality = storyview.ModalityTouch
		}
	}

	theme, err := lipgloss.ThemeByName(cfg.Settings.Theme)
	if err != nil {
		return storyview.Config{}, nil, err
	}

	if verrs := storyview.ValidateConfig(cfg, theme); len(verrs) > 0 {
		errs := make([]error, 0, len(verrs)+1)
		errs = append(errs, ErrInvalidConfig)
		for _, verr := range verrs {
			errs = append(errs, verr)
		}
		return storyview.Config{}, nil, errors.Join(errs...)
	}
	return cfg, theme, nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// newViewer returns the terminal viewer used outside of tests.
func newViewer(logger *zap.Logger) ViewerFactory {
	return func(settings storyview.Settings, theme storyview.Theme) storyview.Viewer {
		return bubbletea.NewViewer(
			bubbletea.WithTheme(theme),
			bubbletea.WithSwipeThreshold(settings.SwipeThreshold),
			bubbletea.WithModality(settings.Modality),
			bubbletea.WithClipboard(clipboard.NewSystem()),
			bubbletea.WithLogger(logger),
		)
	}
}

// newLogger builds a logger writing JSON lines to path. The terminal belongs
// to the slideshow, so without a path nothing is logged.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		theme      string
		threshold  float64
		touch      bool
		logFile    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "storyview",
		Short: "Full-screen story slideshow for the terminal",
		Long: `storyview shows a deck of stories one at a time.

Navigate with the arrow keys (or j/k), the mouse wheel, or by dragging
up and down with the left mouse button. Press y to copy the current
story and q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logFile, verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if configPath == "" {
				if path, ok := fs.FindConfig(); ok {
					configPath = path
				}
			}

			app := &App{
				ConfigPath: configPath,
				Loader: &ExtLoader{
					YAML: yaml.NewConfigLoader(),
					TOML: toml.NewConfigLoader(),
				},
				NewViewer: newViewer(logger),
				Logger:    logger,
			}
			flags := cmd.Flags()
			if flags.Changed("theme") {
				app.Overrides.Theme = &theme
			}
			if flags.Changed("threshold") {
				app.Overrides.SwipeThreshold = &threshold
			}
			if flags.Changed("touch") {
				app.Overrides.Touch = &touch
			}
			return app.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML or TOML file with stories and settings (default $XDG_CONFIG_HOME/storyview/stories.yaml if present)")
	flags.StringVar(&theme, "theme", "dark", "color theme (dark or light)")
	flags.Float64Var(&threshold, "threshold", storyview.DefaultSwipeThreshold, "minimum drag distance that navigates, in gesture units")
	flags.BoolVar(&touch, "touch", false, "show the swipe hint instead of key bindings")
	flags.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func run() error {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
