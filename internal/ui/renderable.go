// Package ui holds the interfaces shared by terminal components.
package ui

// Renderable is anything that can draw itself as a string.
type Renderable interface {
	View() string
}
