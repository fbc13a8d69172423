// Package components provides a declarative, theme-aware UI component
// library for the accessibility tour.
//
// Themes are immutable and passed explicitly through RenderContext,
// eliminating global state. Dark mode is computed once per render pass at
// the root and threaded down, so renders are deterministic and testable
// with fixed inputs:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme).WithDarkMode(true)
//	output := component.ViewWithContext(ctx)
//
// Components:
//   - Text: styled text content
//   - Stack: vertical/horizontal arrangement with gaps
//   - Section: titled, optionally subtitled container carrying
//     accessibility metadata through to the announcer
//   - Alert: modal message box
//
// Style modifiers are theme-aware functions applied through WithAppliers:
//
//	title := NewText("Header").WithAppliers(Bold(), TitleForeground())
//
// Rendering is stateless: the same component with the same context always
// produces the same output.
package components
