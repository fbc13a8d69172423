package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhoussay/a11ytour/internal/accessibility"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctx = m.ctx.WithWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner tick for the busy demo
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	// Status messages
	case ScreenReaderStatusMsg:
		if msg.Err != nil {
			// A failed probe never blocks the screen; it reads as no
			// screen reader present.
			m.log.Error(msg.Err, "screen reader status query failed, assuming disabled")
			m.enabled = false
		} else {
			m.enabled = msg.Enabled
		}
		m.phase = phaseFor(m.enabled)
		return m, m.syncFocus()

	case ScreenReaderChangedMsg:
		if !msg.OK {
			// Subscription released; stop the pump.
			return m, nil
		}
		m.enabled = msg.Enabled
		m.phase = phaseFor(m.enabled)
		return m, tea.Batch(waitForChangeCmd(m.changes), m.syncFocus())

	// Alert messages
	case ShowAlertMsg:
		m.showAlert = true
		m.alertText = msg.Message
		return m, nil

	case DismissAlertMsg:
		m.showAlert = false
		m.alertText = ""
		return m, nil

	// Action dispatch
	case DispatchActionMsg:
		text, ok := alertForAction(msg.Name)
		if !ok {
			return m, nil
		}
		return m, showAlertCmd(text)
	}

	// Remaining messages belong to the text field (cursor blinks).
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleKeyPress routes keyboard input. The alert overlay swallows all keys
// except quit; the focused text field swallows everything that is not
// navigation or quit.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showAlert {
		return m.handleAlertKeys(key)
	}

	// Navigation and quit work everywhere, including over the text field.
	switch key {
	case "ctrl+c":
		return m.quit()

	case "up", "shift+tab":
		if m.phase == PhaseEnabled {
			m.moveFocus(-1)
			return m, m.syncFocus()
		}
		return m, nil

	case "down", "tab":
		if m.phase == PhaseEnabled {
			m.moveFocus(1)
			return m, m.syncFocus()
		}
		return m, nil
	}

	// With the text field focused, everything else is typing.
	if m.inputFocused() {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch key {
	case "q", "esc":
		return m.quit()

	case "t":
		if toggler, ok := m.svc.(accessibility.Toggler); ok {
			// The new state arrives through the subscription pump like
			// any other change; nothing is flipped here.
			toggler.Toggle()
		}
		return m, nil

	case "enter", " ":
		if m.phase == PhaseEnabled && m.focusedKind() == kindTappable {
			return m, showAlertCmd(tapAlertText)
		}
		return m, nil
	}

	if m.phase == PhaseEnabled && m.focusedKind() == kindActions {
		if name, ok := actionKeys[key]; ok {
			return m, dispatchActionCmd(name)
		}
	}

	return m, nil
}

// handleAlertKeys handles keys while the alert overlay is up.
func (m Model) handleAlertKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m.quit()

	case "enter", "esc", " ":
		m.showAlert = false
		m.alertText = ""
		return m, nil
	}
	return m, nil
}

// quit releases the status subscription and exits the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.release != nil {
		m.release()
	}
	return m, tea.Quit
}
