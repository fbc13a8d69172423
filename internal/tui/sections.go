package tui

import (
	"runtime"
	"strings"

	"github.com/nhoussay/a11ytour/internal/accessibility"
)

// sectionKind distinguishes sections that need live model state or input
// handling from plain static demonstrations.
type sectionKind int

const (
	kindStatic sectionKind = iota
	kindBusy
	kindInput
	kindTappable
	kindActions
)

// Capabilities gates the demos that depend on the host platform or the
// loaded settings. Gated sections are absent from the tour entirely, not
// rendered disabled.
type Capabilities struct {
	// LanguageOverride reports whether a spoken-language override is
	// configured, enabling the language demo.
	LanguageOverride bool
	// ColorInversion reports whether the host supports smart color
	// inversion, enabling the inversion exclusion demo.
	ColorInversion bool
}

// DetectCapabilities derives capabilities from the settings language and the
// host platform. Smart invert is an Apple feature, so the inversion demo only
// appears on darwin.
func DetectCapabilities(language string) Capabilities {
	return Capabilities{
		LanguageOverride: language != "",
		ColorInversion:   runtime.GOOS == "darwin",
	}
}

// sectionSpec is one entry of the tour inventory. The inventory is fixed
// data: Update never mutates it, View rebuilds components from it each frame.
type sectionSpec struct {
	id       string
	title    string
	subtitle string
	texts    []string
	disabled bool
	kind     sectionKind
	props    accessibility.Props
}

// stops returns the focus stops the section contributes. Ungrouped static
// sections contribute one stop per text; everything else is a single stop.
func (s sectionSpec) stops() []accessibility.Element {
	if s.kind == kindStatic && !s.props.Group && len(s.texts) > 1 {
		stops := make([]accessibility.Element, len(s.texts))
		for i, text := range s.texts {
			stops[i] = accessibility.Element{Content: text, Props: s.props}
		}
		return stops
	}

	content := strings.Join(s.texts, " ")
	props := s.props
	if s.disabled {
		props.State.Disabled = true
	}
	return []accessibility.Element{{Content: content, Props: props}}
}

// tapAlertText is the fixed message shown when the tappable demo activates.
const tapAlertText = "You tapped the component"

// demoSections builds the tour inventory. Order is fixed; gated entries are
// skipped when the corresponding capability is absent.
func demoSections(caps Capabilities, language string) []sectionSpec {
	sections := []sectionSpec{
		{
			id:       "separate-texts",
			title:    "Separate texts",
			subtitle: "Each line is its own focus stop.",
			texts:    []string{"text one", "text two"},
		},
		{
			id:       "grouped-texts",
			title:    "Grouped texts",
			subtitle: "Both lines announce as a single stop.",
			texts:    []string{"text one", "text two"},
			props:    accessibility.Props{Group: true},
		},
		{
			id:       "label-override",
			title:    "Label override",
			subtitle: "The label replaces the visible content when spoken.",
			texts:    []string{"text one", "text two"},
			props: accessibility.Props{
				Group: true,
				Label: "These texts are grouped and read with one label",
				Hint:  "The visible text is not announced",
			},
		},
	}

	if caps.LanguageOverride {
		sections = append(sections, sectionSpec{
			id:       "spoken-language",
			title:    "Spoken language",
			subtitle: "The label is announced in the configured language.",
			texts:    []string{"Bonjour le monde"},
			props: accessibility.Props{
				Group:    true,
				Label:    "Bonjour le monde",
				Language: language,
			},
		})
	}

	if caps.ColorInversion {
		sections = append(sections, sectionSpec{
			id:       "invert-colors",
			title:    "Inversion exclusion",
			subtitle: "This content keeps its colors under smart invert.",
			texts:    []string{"these colors are never inverted"},
			props: accessibility.Props{
				Group:          true,
				NoInvertColors: true,
			},
		})
	}

	sections = append(sections,
		sectionSpec{
			id:       "header-role",
			title:    "Header role",
			subtitle: "Announced with the header role appended.",
			texts:    []string{"a heading for the content below"},
			props: accessibility.Props{
				Group: true,
				Role:  accessibility.RoleHeader,
			},
		},
		sectionSpec{
			id:       "disabled",
			title:    "Disabled",
			subtitle: "Faded visually and announced as disabled.",
			texts:    []string{"this content is not interactive"},
			disabled: true,
			props:    accessibility.Props{Group: true},
		},
		sectionSpec{
			id:       "checked",
			title:    "Checked state",
			subtitle: "Announced as checked.",
			texts:    []string{"a selected option"},
			props: accessibility.Props{
				Group: true,
				State: accessibility.State{Checked: accessibility.CheckedTrue},
			},
		},
		sectionSpec{
			id:       "busy",
			title:    "Busy state",
			subtitle: "Announced as busy while the content loads.",
			texts:    []string{"waiting for content"},
			kind:     kindBusy,
			props: accessibility.Props{
				Group: true,
				State: accessibility.State{Busy: true},
			},
		},
		sectionSpec{
			id:       "name-input",
			title:    "Text field",
			subtitle: "The announced value always matches the typed text.",
			kind:     kindInput,
			props: accessibility.Props{
				Group: true,
				Label: "Name",
				Hint:  "Type your name",
				Role:  accessibility.RoleTextField,
			},
		},
		sectionSpec{
			id:       "tappable",
			title:    "Tappable",
			subtitle: "Activating this unit raises an alert.",
			texts:    []string{"tap me"},
			kind:     kindTappable,
			props: accessibility.Props{
				Group: true,
				Hint:  "Press enter to activate",
			},
		},
		sectionSpec{
			id:       "custom-actions",
			title:    "Custom actions",
			subtitle: "m magic tap, x cut, c copy, v paste.",
			texts:    []string{"this unit responds to named actions"},
			kind:     kindActions,
			props: accessibility.Props{
				Group: true,
				Actions: []accessibility.ActionName{
					accessibility.ActionMagicTap,
					accessibility.ActionCut,
					accessibility.ActionCopy,
					accessibility.ActionPaste,
				},
			},
		},
	)

	return sections
}
