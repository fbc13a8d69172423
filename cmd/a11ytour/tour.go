package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nhoussay/a11ytour/internal/accessibility"
	"github.com/nhoussay/a11ytour/internal/config"
	"github.com/nhoussay/a11ytour/internal/logger"
	"github.com/nhoussay/a11ytour/internal/tui"
	"github.com/nhoussay/a11ytour/internal/ui/components"
)

func runTour(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("a11ytour requires an interactive terminal")
	}

	path := flags.configPath
	if path == "" {
		path = defaultSettingsPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	// Stdout belongs to the renderer, so file logging is preferred; the
	// stderr fallback only matters when the program exits with an error.
	var log *logger.Logger
	if settings.LogFile != "" {
		log, err = logger.NewFile(settings.LogFile, level)
	} else {
		log, err = logger.New(logger.Options{Level: level, HumanReadable: true})
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	if flags.noColor {
		os.Setenv("NO_COLOR", "1")
	}

	svc := accessibility.NewEnvService(overrideFor(settings, flags))

	ctx := components.DefaultContext().WithDarkMode(darkModeFor(settings.Theme))
	caps := tui.DetectCapabilities(settings.Language)
	m := tui.NewModel(svc, log, ctx, caps, settings.Language)

	log.WithFields(map[string]any{
		"theme":         settings.Theme,
		"language":      settings.Language,
		"screen_reader": settings.ScreenReader,
		"simulate":      flags.simulate,
	}).Info("starting tour")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "tour execution failed")
		return fmt.Errorf("run tour: %w", err)
	}

	log.Info("tour closed")
	return nil
}

// overrideFor resolves the screen reader override: the simulate flag wins,
// then the settings file, then environment detection.
func overrideFor(settings *config.Settings, flags *rootFlags) accessibility.Override {
	if flags.simulate {
		return accessibility.OverrideOn
	}
	switch settings.ScreenReader {
	case config.ScreenReaderOn:
		return accessibility.OverrideOn
	case config.ScreenReaderOff:
		return accessibility.OverrideOff
	default:
		return accessibility.OverrideAuto
	}
}

// darkModeFor maps the theme setting to a dark mode flag, querying the
// terminal background only for "auto".
func darkModeFor(theme string) bool {
	switch theme {
	case config.ThemeLight:
		return false
	case config.ThemeDark:
		return true
	default:
		return lipgloss.HasDarkBackground()
	}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "a11ytour.yaml"
	}
	return filepath.Join(dir, "a11ytour", "settings.yaml")
}
