package accessibility

// Role describes the semantic role a screen reader announces for an element.
type Role int

const (
	RoleNone Role = iota
	RoleHeader
	RoleTextField
	RoleButton
	RoleAdjustable
)

// Announced returns the spoken form of the role, or "" for RoleNone.
func (r Role) Announced() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleTextField:
		return "text field"
	case RoleButton:
		return "button"
	case RoleAdjustable:
		return "adjustable"
	default:
		return ""
	}
}

// CheckedState carries ternary checked semantics. CheckedNone means the
// element has no checkable semantics at all, which is distinct from
// CheckedFalse.
type CheckedState int

const (
	CheckedNone CheckedState = iota
	CheckedFalse
	CheckedTrue
	CheckedMixed
)

// State is the accessibility state record attached to an element.
type State struct {
	Disabled bool
	Checked  CheckedState
	Busy     bool
}

// ActionName identifies a named accessibility action.
type ActionName string

const (
	ActionMagicTap ActionName = "magicTap"
	ActionCut      ActionName = "cut"
	ActionCopy     ActionName = "copy"
	ActionPaste    ActionName = "paste"
)

// Props is the accessibility metadata attached to a rendered element. It is
// immutable configuration: built once per render and passed through to the
// announcer unchanged.
type Props struct {
	// Group announces the element and its descendants as one focus stop.
	Group bool
	// Label replaces the element's visible content entirely when set.
	Label string
	// Hint is supplementary guidance appended after content and state.
	Hint string
	Role Role
	State State
	// Language is a BCP 47 tag overriding the spoken language.
	Language string
	// NoInvertColors excludes the element from smart color inversion.
	NoInvertColors bool
	// Actions lists the named actions the element responds to.
	Actions []ActionName
	// LiveValue supplies the element's current value at announce time, so
	// the spoken value is never stale.
	LiveValue func() string
}

// HasAction reports whether name is in the element's declared action set.
func (p Props) HasAction(name ActionName) bool {
	for _, a := range p.Actions {
		if a == name {
			return true
		}
	}
	return false
}

// Element pairs visible content with its accessibility metadata. This is the
// unit the announcer consumes: one Element per focus stop.
type Element struct {
	Content string
	Props   Props
}
