package geom

import "fmt"

// Size is a width/height pair.
type Size struct {
	W Scalar
	H Scalar
}

// ToPoint treats width as x and height as y.
func (s Size) ToPoint() Point {
	return Point{X: s.W, Y: s.H}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}
