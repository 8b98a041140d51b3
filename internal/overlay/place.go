package overlay

// Rect is the screen-cell rectangle occupied by a trigger.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Size is the measured size of an overlay surface.
type Size struct {
	W, H int
}

// Point is the computed top-left corner for an overlay surface.
type Point struct {
	X, Y int
}

// Position anchors the overlay relative to its trigger.
type Position int

const (
	// PositionBottomRight hangs below the trigger, left edges aligned.
	// It is the default.
	PositionBottomRight Position = iota
	// PositionBottomLeft hangs below, right edges aligned.
	PositionBottomLeft
	// PositionTopRight sits above, left edges aligned.
	PositionTopRight
	// PositionTopLeft sits above, right edges aligned.
	PositionTopLeft
)

// ParsePosition converts a config token ("bottom-left", "top-right")
// into a Position.
func ParsePosition(s string) (Position, bool) {
	switch s {
	case "", "bottom-right":
		return PositionBottomRight, true
	case "bottom-left":
		return PositionBottomLeft, true
	case "top-right":
		return PositionTopRight, true
	case "top-left":
		return PositionTopLeft, true
	default:
		return PositionBottomRight, false
	}
}

// Place computes the overlay's top-left corner. Below-positions start at
// the trigger's bottom edge; above-positions subtract the overlay
// height from the trigger's top edge. Left-aligned positions shift left
// by the overlay-minus-trigger width so the right edges line up.
func Place(anchor Rect, menu Size, pos Position) Point {
	p := Point{X: anchor.X, Y: anchor.Y + anchor.H}

	switch pos {
	case PositionTopRight, PositionTopLeft:
		p.Y = anchor.Y - menu.H
	}
	switch pos {
	case PositionBottomLeft, PositionTopLeft:
		p.X = anchor.X - (menu.W - anchor.W)
	}
	return p
}

// Clamp keeps p inside a viewport of the given size, preferring to keep
// the top-left corner visible when the overlay is larger than the
// viewport.
func Clamp(p Point, menu Size, viewport Size) Point {
	if p.X+menu.W > viewport.W {
		p.X = viewport.W - menu.W
	}
	if p.Y+menu.H > viewport.H {
		p.Y = viewport.H - menu.H
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
