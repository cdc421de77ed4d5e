package geom

// Scalar is the coordinate type used throughout the package.
type Scalar = float64

// Vec2d is the generic [x, y] representation used when exchanging points
// with other graphics code.
type Vec2d [2]Scalar

func (v Vec2d) ToPoint() Point {
	return Point{X: v[0], Y: v[1]}
}

// Pair is a loose (x, y) tuple.
type Pair struct {
	X Scalar
	Y Scalar
}

func (p Pair) ToPoint() Point {
	return Point{X: p.X, Y: p.Y}
}
