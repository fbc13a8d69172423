package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhoussay/a11ytour/internal/accessibility"
	"github.com/nhoussay/a11ytour/internal/ui/components"
)

func newTestModel(t *testing.T) (Model, *accessibility.EnvService) {
	t.Helper()

	svc := accessibility.NewEnvService(accessibility.OverrideOff)
	caps := Capabilities{LanguageOverride: true, ColorInversion: true}
	m := NewModel(svc, nil, components.DefaultContext(), caps, "fr-FR")
	return m, svc
}

func resolveStatus(t *testing.T, m Model, enabled bool) Model {
	t.Helper()

	updated, _ := m.Update(ScreenReaderStatusMsg{Enabled: enabled})
	return updated.(Model)
}

func focusSectionOfKind(t *testing.T, m Model, kind sectionKind) Model {
	t.Helper()

	for i, ref := range m.focus {
		if m.sections[ref.section].kind == kind {
			m.cursor = i
			_ = (&m).syncFocus()
			return m
		}
	}
	t.Fatalf("no section of kind %d in inventory", kind)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsInitializing(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, PhaseInitializing, m.Phase())
	assert.Equal(t, 12, m.SectionCount())
	// The ungrouped section contributes two stops.
	assert.Len(t, m.focus, 13)
}

func TestStatusQueryResolvesPhase(t *testing.T) {
	tests := []struct {
		name    string
		msg     ScreenReaderStatusMsg
		want    Phase
		enabled bool
	}{
		{"enabled", ScreenReaderStatusMsg{Enabled: true}, PhaseEnabled, true},
		{"disabled", ScreenReaderStatusMsg{Enabled: false}, PhaseDisabled, false},
		{"query failure falls back to disabled", ScreenReaderStatusMsg{Enabled: true, Err: errors.New("bridge unavailable")}, PhaseDisabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)

			updated, _ := m.Update(tt.msg)
			m = updated.(Model)

			assert.Equal(t, tt.want, m.Phase())
			assert.Equal(t, tt.enabled, m.Enabled())
		})
	}
}

func TestStatusChangeUpdatesPhase(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, false)

	updated, cmd := m.Update(ScreenReaderChangedMsg{Enabled: true, OK: true})
	m = updated.(Model)
	assert.Equal(t, PhaseEnabled, m.Phase())
	require.NotNil(t, cmd, "pump must be re-armed after every delivery")

	// A repeated value is delivered, not coalesced; the phase is stable.
	updated, cmd = m.Update(ScreenReaderChangedMsg{Enabled: true, OK: true})
	m = updated.(Model)
	assert.Equal(t, PhaseEnabled, m.Phase())
	require.NotNil(t, cmd)

	updated, _ = m.Update(ScreenReaderChangedMsg{Enabled: false, OK: true})
	m = updated.(Model)
	assert.Equal(t, PhaseDisabled, m.Phase())
}

func TestClosedSubscriptionStopsPump(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)

	updated, cmd := m.Update(ScreenReaderChangedMsg{OK: false})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, PhaseEnabled, m.Phase(), "a closed channel is not a state change")
}

func TestToggleKeyRoundTripsThroughSubscription(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, false)

	_, cmd := m.Update(keyRunes("t"))
	assert.Nil(t, cmd)

	// The toggle broadcast arrives through the pump like any other change.
	msg := waitForChangeCmd(m.changes)()
	require.Equal(t, ScreenReaderChangedMsg{Enabled: true, OK: true}, msg)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, PhaseEnabled, m.Phase())

	_, _ = m.Update(keyRunes("t"))
	msg = waitForChangeCmd(m.changes)()
	require.Equal(t, ScreenReaderChangedMsg{Enabled: false, OK: true}, msg)

	updated, _ = m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, PhaseDisabled, m.Phase())
}

func TestTapRaisesFixedAlert(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)
	m = focusSectionOfKind(t, m, kindTappable)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	alertMsg := cmd()
	require.Equal(t, ShowAlertMsg{Message: "You tapped the component"}, alertMsg)

	updated, _ = m.Update(alertMsg)
	m = updated.(Model)
	assert.True(t, m.AlertVisible())
	assert.Equal(t, "You tapped the component", m.AlertText())
}

func TestActionKeyShowsAlertExactlyOnce(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)
	m = focusSectionOfKind(t, m, kindActions)

	updated, cmd := m.Update(keyRunes("c"))
	m = updated.(Model)
	require.NotNil(t, cmd)

	dispatch := cmd()
	require.Equal(t, DispatchActionMsg{Name: accessibility.ActionCopy}, dispatch)

	updated, cmd = m.Update(dispatch)
	m = updated.(Model)
	require.NotNil(t, cmd)

	alertMsg := cmd()
	require.Equal(t, ShowAlertMsg{Message: "copy action success"}, alertMsg)

	updated, cmd = m.Update(alertMsg)
	m = updated.(Model)
	assert.True(t, m.AlertVisible())
	assert.Equal(t, "copy action success", m.AlertText())
	assert.Nil(t, cmd, "showing the alert issues nothing further")
}

func TestUnknownActionIsDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)

	updated, cmd := m.Update(DispatchActionMsg{Name: accessibility.ActionName("zoom")})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.AlertVisible())
}

func TestActionKeysInertOutsideActionsSection(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)

	_, cmd := m.Update(keyRunes("c"))
	assert.Nil(t, cmd)
}

func TestAlertDismissal(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeySpace},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			m = resolveStatus(t, m, true)

			updated, _ := m.Update(ShowAlertMsg{Message: "copy action success"})
			m = updated.(Model)
			require.True(t, m.AlertVisible())

			updated, _ = m.Update(key)
			m = updated.(Model)
			assert.False(t, m.AlertVisible())
			assert.Empty(t, m.AlertText())
		})
	}
}

func TestAlertSwallowsOtherKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)

	updated, _ := m.Update(ShowAlertMsg{Message: "copy action success"})
	m = updated.(Model)

	updated, cmd := m.Update(keyRunes("t"))
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.True(t, m.AlertVisible())
}

func TestTypedTextIsAnnouncedVerbatim(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)
	m = focusSectionOfKind(t, m, kindInput)

	updated, _ := m.Update(keyRunes("Ada"))
	m = updated.(Model)
	assert.Equal(t, "Ada", m.NameValue())
	assert.Contains(t, m.announceFocused(), "value Ada")

	// Quit keys are typing while the field has focus.
	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(Model)
	assert.Equal(t, "Adaq", m.NameValue())
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
}

func TestNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, true)
	require.Equal(t, 0, m.cursor)

	for range m.focus {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	assert.Equal(t, 0, m.cursor, "moving down through every stop wraps around")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, len(m.focus)-1, m.cursor)
}

func TestNavigationInertWhileDisabled(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, false)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestQuitReleasesSubscription(t *testing.T) {
	m, _ := newTestModel(t)
	m = resolveStatus(t, m, false)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, open := <-m.changes
	assert.False(t, open, "quit must close the subscription channel")
}

func TestWindowSizeStored(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 48})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 48, m.height)
}
