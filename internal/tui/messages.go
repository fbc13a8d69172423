package tui

import (
	"github.com/nhoussay/a11ytour/internal/accessibility"
)

// Status Messages

// ScreenReaderStatusMsg carries the result of the initial screen reader query.
type ScreenReaderStatusMsg struct {
	Enabled bool
	Err     error
}

// ScreenReaderChangedMsg carries a screen reader state change notification.
// OK is false when the subscription channel has been closed.
type ScreenReaderChangedMsg struct {
	Enabled bool
	OK      bool
}

// Alert Messages

// ShowAlertMsg requests the modal alert overlay with the given message.
type ShowAlertMsg struct {
	Message string
}

// DismissAlertMsg requests alert overlay dismissal.
type DismissAlertMsg struct{}

// Action Messages

// DispatchActionMsg routes a named accessibility action to its handler.
// Names without a registered handler are dropped without effect.
type DispatchActionMsg struct {
	Name accessibility.ActionName
}
