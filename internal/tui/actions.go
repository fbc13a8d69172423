package tui

import (
	"github.com/nhoussay/a11ytour/internal/accessibility"
)

// actionAlerts maps each supported accessibility action to the alert text
// shown when it fires. There is no default branch anywhere in the dispatch
// path: a name without an entry here is dropped silently.
var actionAlerts = map[accessibility.ActionName]string{
	accessibility.ActionMagicTap: "magic tap action success",
	accessibility.ActionCut:      "cut action success",
	accessibility.ActionCopy:     "copy action success",
	accessibility.ActionPaste:    "paste action success",
}

// alertForAction resolves the alert text for a named action.
func alertForAction(name accessibility.ActionName) (string, bool) {
	text, ok := actionAlerts[name]
	return text, ok
}

// actionKeys maps key presses to named actions while the custom actions
// section has focus.
var actionKeys = map[string]accessibility.ActionName{
	"m": accessibility.ActionMagicTap,
	"x": accessibility.ActionCut,
	"c": accessibility.ActionCopy,
	"v": accessibility.ActionPaste,
}
