// Package ui defines the rendering contract shared by all visual
// components.
package ui

// Renderable is anything that can draw itself into a string of
// terminal cells.
type Renderable interface {
	View() string
}
