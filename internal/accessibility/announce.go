package accessibility

import (
	"fmt"
	"strings"
)

// Announce builds the utterance a screen reader produces for an element.
//
// Composition order follows platform convention: content (or override
// label), live value, role, state, hint, language tag. The override label
// replaces the visible content entirely rather than supplementing it.
func Announce(el Element) string {
	p := el.Props

	content := el.Content
	if p.Label != "" {
		content = p.Label
	}

	parts := []string{strings.TrimSpace(content)}

	if p.LiveValue != nil {
		if v := p.LiveValue(); v != "" {
			parts = append(parts, fmt.Sprintf("value %s", v))
		}
	}

	if role := p.Role.Announced(); role != "" {
		parts = append(parts, role)
	}

	if p.State.Disabled {
		parts = append(parts, "disabled")
	}
	switch p.State.Checked {
	case CheckedTrue:
		parts = append(parts, "checked")
	case CheckedFalse:
		parts = append(parts, "not checked")
	case CheckedMixed:
		parts = append(parts, "mixed")
	}
	if p.State.Busy {
		parts = append(parts, "busy")
	}

	out := strings.Join(parts, ", ")

	if p.Hint != "" {
		out += ". " + p.Hint
	}
	if p.Language != "" {
		out += fmt.Sprintf(" (%s)", p.Language)
	}

	return out
}
