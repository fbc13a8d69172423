package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhoussay/a11ytour/internal/ui"
	"github.com/nhoussay/a11ytour/internal/ui/components"
)

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showAlert {
		alert := components.NewAlert(m.alertText).WithTitle("Alert")
		return alert.Overlay(m.ctx, m.width, m.height)
	}

	switch m.phase {
	case PhaseEnabled:
		return m.renderTour()
	default:
		return m.renderGate()
	}
}

// renderGate renders the disabled view: header, a centered guidance message,
// and the footer. Initializing shows the same gate with a probe status line.
func (m Model) renderGate() string {
	header := m.renderHeader()
	footer := footerStyle.Render("t toggle screen reader • q quit")

	var message string
	if m.phase == PhaseInitializing {
		message = m.spin.View() + " Checking screen reader status"
	} else {
		message = "Screen reader support is turned off.\nTurn it on to explore the accessibility tour."
	}

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, gateStyle.Render(message))

	return header + "\n" + body + "\n" + footer
}

// renderTour renders the enabled view: header, the section list windowed
// around the focused stop, the announcer bar, and the footer.
func (m Model) renderTour() string {
	header := m.renderHeader()
	announcer := announcerStyle.Render("announces: " + m.announceFocused())
	footer := footerStyle.Render(m.footerHelp())

	chrome := lipgloss.Height(header) + lipgloss.Height(announcer) + lipgloss.Height(footer) + 2
	body := m.renderSectionList(m.height - chrome)

	return strings.Join([]string{header, body, announcer, footer}, "\n")
}

// renderHeader renders the title and the screen reader status line.
func (m Model) renderHeader() string {
	title := titleStyle.Render("Accessibility Tour")

	var status string
	switch m.phase {
	case PhaseInitializing:
		status = statusOffStyle.Render(m.spin.View() + " screen reader: checking")
	case PhaseEnabled:
		status = statusOnStyle.Render("screen reader: on")
	default:
		status = statusOffStyle.Render("screen reader: off")
	}

	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, status))
}

// renderSectionList renders every section and slices a window of visible
// lines so the focused stop is always on screen.
func (m Model) renderSectionList(visible int) string {
	focusSection := m.focus[m.cursor].section

	var lines []string
	focusStart, focusEnd := 0, 0
	for i := range m.sections {
		block := strings.Split(m.renderSection(i), "\n")
		if i == focusSection {
			focusStart = len(lines)
			focusEnd = focusStart + len(block)
		}
		lines = append(lines, block...)
		if i < len(m.sections)-1 {
			lines = append(lines, "")
		}
	}

	if visible <= 0 || len(lines) <= visible {
		return strings.Join(lines, "\n")
	}

	// Slide the window until the focused block fits inside it.
	offset := 0
	if focusEnd > visible {
		offset = focusEnd - visible
	}
	if offset > focusStart {
		offset = focusStart
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
		offset = end - visible
	}

	window := make([]string, 0, visible+2)
	if offset > 0 {
		window = append(window, scrollIndicatorStyle.Render("▲ more above"))
	}
	window = append(window, lines[offset:end]...)
	if end < len(lines) {
		window = append(window, scrollIndicatorStyle.Render("▼ more below"))
	}
	return strings.Join(window, "\n")
}

// renderSection builds and renders one section from its spec. Sections that
// show live state (spinner, text field) pull it from the model here, so a
// render always reflects the current frame.
func (m Model) renderSection(i int) string {
	s := m.sections[i]

	focusedStop := -1
	if m.focus[m.cursor].section == i {
		focusedStop = m.focus[m.cursor].stop
	}

	// Ungrouped multi-text sections mark the focused line individually;
	// everything else is focused as a whole.
	multiStop := s.kind == kindStatic && !s.props.Group && len(s.texts) > 1

	children := make([]ui.Renderable, 0, len(s.texts)+1)
	for j, text := range s.texts {
		if multiStop {
			marker := "  "
			if j == focusedStop {
				marker = "❯ "
			}
			children = append(children, components.NewText(marker+text))
		} else {
			children = append(children, components.NewText(text))
		}
	}

	switch s.kind {
	case kindBusy:
		children = append(children, components.NewText(m.spin.View()+" loading"))
	case kindInput:
		children = append(children, components.NewText(m.nameInput.View()))
	}

	section := components.NewSection(s.title, children...).
		WithSubtitle(s.subtitle).
		WithDisabled(s.disabled).
		WithProps(s.props)

	rendered := section.ViewWithContext(m.ctx)
	if focusedStop >= 0 {
		return selectedItemStyle.Render(rendered)
	}
	return itemStyle.Render(rendered)
}

// footerHelp returns the key help line for the current focus.
func (m Model) footerHelp() string {
	if m.inputFocused() {
		return "↑/↓ move focus • ctrl+c quit"
	}

	switch m.focusedKind() {
	case kindTappable:
		return "↑/↓ move focus • enter tap • t toggle • q quit"
	case kindActions:
		return "↑/↓ move focus • m/x/c/v actions • t toggle • q quit"
	default:
		return "↑/↓ move focus • t toggle • q quit"
	}
}
