// Package geometry implements the rectangle exercise: an area computation
// and a containment predicate between two rectangles.
package geometry

import "fmt"

// Rectangle is an axis-aligned rectangle described only by its dimensions.
type Rectangle struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// Area returns Width*Height. The product is widened to 64 bits, where the
// product of two 32-bit dimensions always fits.
func (r Rectangle) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// CanHold reports whether other fits inside r without rotation, that is
// whether neither of other's dimensions exceeds r's.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width >= other.Width && r.Height >= other.Height
}

// String renders r in an indented, multi-line debug form.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle {\n    width: %d,\n    height: %d,\n}", r.Width, r.Height)
}
