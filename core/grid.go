package core

import "fmt"

// GridPos addresses one chest slot
type GridPos struct {
	X, Y int
}

// Front is the presentation slot
var Front = GridPos{}

// IsFront reports whether p is the presentation slot
func (p GridPos) IsFront() bool {
	return p == Front
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Handle is an opaque visual identity owned by the front-end
// Zero is never allocated
type Handle uint64
