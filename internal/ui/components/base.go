package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhoussay/a11ytour/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style
}

// StyleFunc applies a styling transformation using data from the render
// context. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, ctx)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the
// provided render context.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, ctx)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
	} else {
		currentStrategy := b.strategy
		wrapper := func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
			if currentStrategy != nil {
				base = currentStrategy.Apply(base, ctx)
			}
			for _, applier := range appliers {
				base = applier(base, ctx)
			}
			return base
		}
		b.strategy = NewCompositeStrategy(wrapper)
	}
}

// RenderContext carries the theme and environment to components during
// rendering. Dark mode is computed once per render pass at the root and
// threaded down, so components never query the terminal themselves. This
// keeps renders deterministic and testable with fixed inputs.
type RenderContext struct {
	Theme    Theme
	DarkMode bool
	Width    int
}

// DefaultContext returns a render context with the default theme, light
// mode, and no width.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithDarkMode returns a new context with the given dark mode flag.
func (r RenderContext) WithDarkMode(dark bool) RenderContext {
	r.DarkMode = dark
	return r
}

// WithWidth returns a new context constrained to the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive render context.
// Most components implement this; plain Renderables are rendered as-is.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}
