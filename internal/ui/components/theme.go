package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorRole names a semantic slot in the palette.
type ColorRole int

const (
	RolePrimary ColorRole = iota
	RoleWhite
	RoleLighter
	RoleLight
	RoleDark
	RoleDarker
	RoleBlack
)

const roleCount = int(RoleBlack) + 1

// Opacity levels applied to component content. Terminals have no alpha
// channel; anything below opaque renders as faint text.
const (
	OpacityFaded  = 0.5
	OpacityOpaque = 1.0
)

// ColorPair holds the light-mode and dark-mode values for one role.
type ColorPair struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

// Theme is an immutable mapping from color roles to values. It is created
// once at startup and injected into every render through RenderContext;
// nothing mutates it afterwards.
type Theme struct {
	colors [roleCount]ColorPair
}

// NewTheme builds a theme from explicit role pairs, falling back to the
// default palette for roles not supplied. Roles outside the recognized set
// are ignored.
func NewTheme(pairs map[ColorRole]ColorPair) Theme {
	t := DefaultTheme()
	for role, pair := range pairs {
		if int(role) >= 0 && int(role) < roleCount {
			t.colors[role] = pair
		}
	}
	return t
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	var t Theme
	t.colors = [roleCount]ColorPair{
		RolePrimary: {Light: "#1292B4", Dark: "#1292B4"},
		RoleWhite:   {Light: "#FFFFFF", Dark: "#FFFFFF"},
		RoleLighter: {Light: "#F3F3F3", Dark: "#F3F3F3"},
		RoleLight:   {Light: "#DAE1E7", Dark: "#DAE1E7"},
		RoleDark:    {Light: "#444444", Dark: "#444444"},
		RoleDarker:  {Light: "#222222", Dark: "#222222"},
		RoleBlack:   {Light: "#000000", Dark: "#000000"},
	}
	return t
}

// ColorFor resolves a role to a concrete color for the given mode. The
// lookup is total: unrecognized roles resolve to the primary slot rather
// than an out-of-palette value.
func (t Theme) ColorFor(role ColorRole, dark bool) lipgloss.Color {
	index := int(role)
	if index < 0 || index >= roleCount {
		index = int(RolePrimary)
	}
	pair := t.colors[index]
	if dark {
		return pair.Dark
	}
	return pair.Light
}

// TitleRole returns the color role for section titles in the given mode.
// Titles and subtitles use distinct pairings to signal hierarchy.
func TitleRole(dark bool) ColorRole {
	if dark {
		return RoleWhite
	}
	return RoleBlack
}

// SubtitleRole returns the color role for section subtitles.
func SubtitleRole(dark bool) ColorRole {
	if dark {
		return RoleLight
	}
	return RoleDark
}

// Style modifiers

// Foreground colors text with the mode-appropriate value for a role.
func Foreground(role ColorRole) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Foreground(ctx.Theme.ColorFor(role, ctx.DarkMode))
	}
}

// TitleForeground colors text with the title pairing for the current mode.
func TitleForeground() StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Foreground(ctx.Theme.ColorFor(TitleRole(ctx.DarkMode), ctx.DarkMode))
	}
}

// SubtitleForeground colors text with the subtitle pairing.
func SubtitleForeground() StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Foreground(ctx.Theme.ColorFor(SubtitleRole(ctx.DarkMode), ctx.DarkMode))
	}
}

// Bold renders text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.Bold(true)
	}
}

// Opacity applies an opacity level. Values below OpacityOpaque render
// faint.
func Opacity(level float64) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.Faint(level < OpacityOpaque)
	}
}
