package components

import (
	"strings"

	"github.com/nhoussay/a11ytour/internal/accessibility"
	"github.com/nhoussay/a11ytour/internal/ui"
)

// Section is a titled, optionally subtitled container for demonstration
// content. Accessibility metadata passes through to the announcer
// unchanged; the section renders it but never interprets it.
type Section struct {
	BaseComponent
	title    string
	subtitle string
	disabled bool
	props    accessibility.Props
	children []ui.Renderable
}

// NewSection creates a section with the required title and nested content.
func NewSection(title string, children ...ui.Renderable) *Section {
	return &Section{
		BaseComponent: NewBaseComponent(),
		title:         title,
		children:      children,
	}
}

// WithSubtitle sets the optional subtitle. An unset subtitle is absent from
// the output entirely, not rendered as an empty line.
func (s *Section) WithSubtitle(subtitle string) *Section {
	s.subtitle = subtitle
	return s
}

// WithDisabled marks the section disabled. The faded visual treatment and
// the semantic disabled state are both derived from this one flag so the
// two signals cannot diverge.
func (s *Section) WithDisabled(disabled bool) *Section {
	s.disabled = disabled
	return s
}

// WithProps attaches accessibility metadata.
func (s *Section) WithProps(props accessibility.Props) *Section {
	s.props = props
	return s
}

// WithAppliers applies theme-based style modifiers to the container.
func (s *Section) WithAppliers(appliers ...StyleFunc) *Section {
	s.SetAppliers(appliers...)
	return s
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.title
}

// Disabled reports the section's disabled flag.
func (s *Section) Disabled() bool {
	return s.disabled
}

// Opacity returns the opacity level the section renders with.
func (s *Section) Opacity() float64 {
	if s.disabled {
		return OpacityFaded
	}
	return OpacityOpaque
}

// Props returns the section's accessibility metadata with the semantic
// disabled state synchronized to the visual flag.
func (s *Section) Props() accessibility.Props {
	props := s.props
	if s.disabled {
		props.State.Disabled = true
	}
	return props
}

// ContentText returns the plain text of the nested content, used as the
// announced content when no override label is set.
func (s *Section) ContentText() string {
	var parts []string
	for _, child := range s.children {
		switch c := child.(type) {
		case *Text:
			parts = append(parts, c.Content())
		case interface{ ContentText() string }:
			if text := c.ContentText(); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// Element returns the announcer unit for the section as one grouped stop.
func (s *Section) Element() accessibility.Element {
	return accessibility.Element{
		Content: s.ContentText(),
		Props:   s.Props(),
	}
}

// View renders the section with default context.
func (s *Section) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the titled container. Disabled sections render
// all content at the faded opacity.
func (s *Section) ViewWithContext(ctx RenderContext) string {
	rows := make([]ui.Renderable, 0, len(s.children)+2)

	title := TitleText(s.title)
	if s.disabled {
		title.AddAppliers(Opacity(OpacityFaded))
	}
	rows = append(rows, title)

	if s.subtitle != "" {
		subtitle := SubtitleText(s.subtitle)
		if s.disabled {
			subtitle.AddAppliers(Opacity(OpacityFaded))
		}
		rows = append(rows, subtitle)
	}

	for _, child := range s.children {
		rows = append(rows, child)
	}

	body := VStack(rows...)
	if s.disabled {
		body.AddAppliers(Opacity(OpacityFaded))
	}

	container := s.ComputeStyle(ctx)
	return container.Render(body.ViewWithContext(ctx))
}
