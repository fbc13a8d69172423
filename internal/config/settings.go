package config

// ThemeMode selects which palette variant the tour renders with.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Screen reader override modes.
const (
	ScreenReaderAuto = "auto"
	ScreenReaderOn   = "on"
	ScreenReaderOff  = "off"
)

// Settings is the optional user configuration for the tour. Every field has
// a default; an absent settings file is not an error.
type Settings struct {
	// Theme selects light/dark rendering; auto probes the terminal once at
	// startup.
	Theme string `yaml:"theme" validate:"omitempty,oneof=auto light dark"`

	// LogLevel controls the file logger.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`

	// LogFile is where interactive sessions write their log. The terminal
	// renderer owns stdout, so this is a path rather than a stream choice.
	LogFile string `yaml:"log_file"`

	// ScreenReader overrides detection: on and off bypass the environment
	// probes entirely.
	ScreenReader string `yaml:"screen_reader" validate:"omitempty,oneof=auto on off"`

	// Language is the BCP 47 tag used by the language-override section.
	Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:        ThemeAuto,
		LogLevel:     "info",
		LogFile:      "",
		ScreenReader: ScreenReaderAuto,
		Language:     "fr-FR",
	}
}

func (s *Settings) applyDefaults() {
	defaults := DefaultSettings()
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.LogLevel == "" {
		s.LogLevel = defaults.LogLevel
	}
	if s.ScreenReader == "" {
		s.ScreenReader = defaults.ScreenReader
	}
	if s.Language == "" {
		s.Language = defaults.Language
	}
}
