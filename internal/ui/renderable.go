package ui

// Renderable is anything that can produce a terminal frame fragment.
type Renderable interface {
	View() string
}
