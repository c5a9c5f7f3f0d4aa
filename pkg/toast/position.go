package toast

import "strings"

// Position is the screen bucket a toast stacks into. Center variants count
// as neither left nor right for animation purposes.
type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionTopCenter    Position = "top-center"
	PositionBottomCenter Position = "bottom-center"
)

// Positions lists every known bucket in rendering order.
var Positions = []Position{
	PositionTopRight,
	PositionTopLeft,
	PositionBottomRight,
	PositionBottomLeft,
	PositionTopCenter,
	PositionBottomCenter,
}

// ParsePosition maps a raw string onto the known bucket set. Unrecognized
// values degrade to PositionTopRight.
func ParsePosition(s string) Position {
	switch Position(s) {
	case PositionTopRight, PositionTopLeft, PositionBottomRight,
		PositionBottomLeft, PositionTopCenter, PositionBottomCenter:
		return Position(s)
	default:
		return PositionTopRight
	}
}

// Valid reports whether p is one of the known buckets.
func (p Position) Valid() bool {
	return p == ParsePosition(string(p)) && p != ""
}

// Top reports whether the bucket hangs from the top edge.
func (p Position) Top() bool {
	return strings.HasPrefix(string(p), "top")
}

// Bottom reports whether the bucket sits on the bottom edge.
func (p Position) Bottom() bool {
	return strings.HasPrefix(string(p), "bottom")
}

// Left reports whether the bucket is flush left.
func (p Position) Left() bool {
	return strings.HasSuffix(string(p), "left")
}

// Right reports whether the bucket is flush right.
func (p Position) Right() bool {
	return strings.HasSuffix(string(p), "right")
}

// Center reports whether the bucket is horizontally centered.
func (p Position) Center() bool {
	return strings.HasSuffix(string(p), "center")
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return string(p)
}
