package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhoussay/a11ytour/internal/accessibility"
	"github.com/nhoussay/a11ytour/internal/logger"
	"github.com/nhoussay/a11ytour/internal/ui/components"
)

// Phase is the screen reader gate state. Before the initial query resolves
// the tour renders the disabled gate, so PhaseInitializing and PhaseDisabled
// share a view and differ only in the status line.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseDisabled
	PhaseEnabled
)

// focusRef addresses one focus stop: a section index and a stop index within
// that section. Ungrouped sections contribute more than one stop.
type focusRef struct {
	section int
	stop    int
}

// Model is the root tour model.
type Model struct {
	// Dependencies
	svc accessibility.Service
	log *logger.Logger
	ctx components.RenderContext

	// Gate state
	phase   Phase
	enabled bool

	// Subscription
	changes <-chan bool
	release func()

	// Tour content
	sections []sectionSpec
	focus    []focusRef
	cursor   int

	// Component state
	nameInput textinput.Model
	spin      spinner.Model

	// Alert overlay
	showAlert bool
	alertText string

	// Dimensions
	width  int
	height int
}

// NewModel creates the tour model and acquires the status subscription. The
// subscription is released when the user quits.
func NewModel(svc accessibility.Service, log *logger.Logger, ctx components.RenderContext, caps Capabilities, language string) Model {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	sections := demoSections(caps, language)

	m := Model{
		svc:       svc,
		log:       log,
		ctx:       ctx,
		phase:     PhaseInitializing,
		sections:  sections,
		focus:     flattenFocus(sections),
		nameInput: ti,
		spin:      sp,
		width:     80,
		height:    24,
	}
	m.changes, m.release = svc.Subscribe()
	return m
}

// Init issues the async status query and starts the subscription pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		queryStatusCmd(m.svc),
		waitForChangeCmd(m.changes),
		m.spin.Tick,
		textinput.Blink,
	)
}

// flattenFocus builds the focus order from the section inventory.
func flattenFocus(sections []sectionSpec) []focusRef {
	var refs []focusRef
	for i, s := range sections {
		for j := range s.stops() {
			refs = append(refs, focusRef{section: i, stop: j})
		}
	}
	return refs
}

// Helper Methods

// Phase returns the current gate phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Enabled reports the tracked screen reader state.
func (m Model) Enabled() bool {
	return m.enabled
}

// SectionCount returns the number of sections in the tour.
func (m Model) SectionCount() int {
	return len(m.sections)
}

// AlertVisible reports whether the modal alert overlay is up.
func (m Model) AlertVisible() bool {
	return m.showAlert
}

// AlertText returns the current alert message, or "" when no alert is up.
func (m Model) AlertText() string {
	return m.alertText
}

// NameValue returns the current text field value.
func (m Model) NameValue() string {
	return m.nameInput.Value()
}

func phaseFor(enabled bool) Phase {
	if enabled {
		return PhaseEnabled
	}
	return PhaseDisabled
}

// focusedSection returns the section entry under the cursor.
func (m Model) focusedSection() sectionSpec {
	return m.sections[m.focus[m.cursor].section]
}

func (m Model) focusedKind() sectionKind {
	return m.focusedSection().kind
}

// moveFocus moves the cursor by delta with wrapping.
func (m *Model) moveFocus(delta int) {
	if len(m.focus) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.focus)) % len(m.focus)
}

// syncFocus keeps the text field's focus aligned with the cursor. Focusing
// returns the blink command; blurring returns nothing.
func (m *Model) syncFocus() tea.Cmd {
	if m.phase == PhaseEnabled && m.focusedKind() == kindInput {
		if !m.nameInput.Focused() {
			return m.nameInput.Focus()
		}
		return nil
	}
	m.nameInput.Blur()
	return nil
}

func (m Model) inputFocused() bool {
	return m.phase == PhaseEnabled && m.focusedKind() == kindInput
}

// announceFocused builds the spoken form of the focus stop under the cursor.
// The text field's value is captured at announce time so it can never lag
// behind the typed text.
func (m Model) announceFocused() string {
	if len(m.focus) == 0 {
		return ""
	}

	ref := m.focus[m.cursor]
	s := m.sections[ref.section]
	el := s.stops()[ref.stop]

	if s.kind == kindInput {
		value := m.nameInput.Value()
		el.Props.LiveValue = func() string { return value }
	}
	return accessibility.Announce(el)
}
