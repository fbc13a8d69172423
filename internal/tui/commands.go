package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhoussay/a11ytour/internal/accessibility"
)

// statusQueryTimeout bounds the initial screen reader probe so a wedged
// platform bridge cannot stall the first paint.
const statusQueryTimeout = 2 * time.Second

// queryStatusCmd asks the accessibility service whether a screen reader is
// active. The result arrives as a ScreenReaderStatusMsg.
func queryStatusCmd(svc accessibility.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statusQueryTimeout)
		defer cancel()

		enabled, err := svc.Enabled(ctx)
		return ScreenReaderStatusMsg{Enabled: enabled, Err: err}
	}
}

// waitForChangeCmd blocks on the subscription channel for the next state
// change. Update re-arms it after every delivery; a closed channel yields
// OK false and the pump stops.
func waitForChangeCmd(changes <-chan bool) tea.Cmd {
	return func() tea.Msg {
		enabled, ok := <-changes
		return ScreenReaderChangedMsg{Enabled: enabled, OK: ok}
	}
}

// showAlertCmd raises the modal alert overlay.
func showAlertCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return ShowAlertMsg{Message: message}
	}
}

// dispatchActionCmd routes a named action through the dispatch table.
func dispatchActionCmd(name accessibility.ActionName) tea.Cmd {
	return func() tea.Msg {
		return DispatchActionMsg{Name: name}
	}
}
