package paint

import "image"

// Kind is the type of a pointer event.
type Kind uint8

const (
	Press Kind = iota
	Move
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	}
	return "Kind(UNKNOWN)"
}

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

// Event is a pointer event in canvas coordinates.
type Event struct {
	Kind     Kind
	Position image.Point
	// Buttons is the button that changed state for Press and Release, and
	// the set of held buttons for Move.
	Buttons Buttons
}
