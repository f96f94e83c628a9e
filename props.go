package golay

// PositionMode specifies how a component's offsets are interpreted.
// Both modes resolve edges against the parent rect; Relative exists so that
// an external flow-assigning layer can offset from a sibling position, which
// this core does not do itself.
type PositionMode string

const (
	PositionAbsolute PositionMode = "absolute"
	PositionRelative PositionMode = "relative"
)

// SizeMode specifies how a component's extent is determined.
type SizeMode string

const (
	// SizeFixed derives the extent from explicit size units or an edge pair.
	SizeFixed SizeMode = "fixed"
	// SizeFill occupies the full parent content box, ignoring edges and sizes.
	SizeFill SizeMode = "fill"
	// SizeFitContent takes the extent from an externally measured natural size.
	SizeFitContent SizeMode = "fit-content"
)

// LayoutProps is the declarative layout props attached to one component.
// All unit fields are optional; nil means absent. A LayoutProps is built once
// when a theme is loaded and never mutated afterwards.
type LayoutProps struct {
	Position PositionMode
	Size     SizeMode

	Left   *Unit
	Top    *Unit
	Right  *Unit
	Bottom *Unit

	Width  *Unit
	Height *Unit

	MinWidth  *Unit
	MaxWidth  *Unit
	MinHeight *Unit
	MaxHeight *Unit
}

// DefaultProps is the props used for components the theme does not mention:
// fill the parent content box.
func DefaultProps() LayoutProps {
	return LayoutProps{
		Position: PositionAbsolute,
		Size:     SizeFill,
	}
}

// axisSpec is one axis' view of a LayoutProps: the leading edge (left/top),
// the trailing edge (right/bottom), the explicit size and the constraints.
type axisSpec struct {
	lead  *Unit
	trail *Unit
	size  *Unit
	min   *Unit
	max   *Unit
}

func (p LayoutProps) horizontal() axisSpec {
	return axisSpec{
		lead:  p.Left,
		trail: p.Right,
		size:  p.Width,
		min:   p.MinWidth,
		max:   p.MaxWidth,
	}
}

func (p LayoutProps) vertical() axisSpec {
	return axisSpec{
		lead:  p.Top,
		trail: p.Bottom,
		size:  p.Height,
		min:   p.MinHeight,
		max:   p.MaxHeight,
	}
}
