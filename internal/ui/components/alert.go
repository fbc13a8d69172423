package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhoussay/a11ytour/internal/ui"
)

// Alert is a modal message box. Alerts are fire-and-forget: they carry no
// result and no failure path, only a message and a dismiss affordance.
type Alert struct {
	BaseComponent
	title   string
	message string
}

// NewAlert creates an alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// WithTitle adds a title line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// View renders the alert with default context.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert as a bordered box.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	rows := make([]ui.Renderable, 0, 3)
	if a.title != "" {
		rows = append(rows, TitleText(a.title))
	}
	rows = append(rows,
		NewText(a.message).WithAppliers(TitleForeground()),
		SubtitleText("press enter to dismiss"),
	)

	box := a.ComputeStyle(ctx).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.ColorFor(RolePrimary, ctx.DarkMode)).
		Padding(1, 2)

	return box.Render(VStack(rows...).WithGap(1).ViewWithContext(ctx))
}

// Overlay centers the alert within a width x height region.
func (a *Alert) Overlay(ctx RenderContext, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, a.ViewWithContext(ctx))
}
