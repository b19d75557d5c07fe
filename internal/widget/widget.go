// Package widget is a small toolkit of labels, buttons and layouts that a
// screen hands to a Manager for rendering and input dispatch.
package widget

// Widget is anything that can render itself into an area
type Widget interface {
	View(width, height int) string
}

// Container is a widget that holds other widgets
type Container interface {
	Widget
	Children() []Widget
}
