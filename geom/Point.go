package geom

import (
	"fmt"
	"image"
	"math"

	"github.com/kpfaulkner/geom2d/util"
	"golang.org/x/exp/constraints"
)

// Point is a location in the Cartesian plane.
type Point struct {
	X Scalar
	Y Scalar
}

// PointLike is anything that can stand in for a Point in Add and Sub.
type PointLike interface {
	ToPoint() Point
}

// Zero is the origin.
var Zero = Point{}

func Pt(x Scalar, y Scalar) Point {
	return Point{X: x, Y: y}
}

// PointOf builds a Point from any numeric pair.
func PointOf[T constraints.Integer | constraints.Float](x T, y T) Point {
	return Point{X: Scalar(x), Y: Scalar(y)}
}

func FromVec2d(v Vec2d) Point {
	return v.ToPoint()
}

func FromPair(x Scalar, y Scalar) Point {
	return Point{X: x, Y: y}
}

func FromSize(s Size) Point {
	return s.ToPoint()
}

func FromImagePoint(ip image.Point) Point {
	return Point{X: Scalar(ip.X), Y: Scalar(ip.Y)}
}

func (p Point) ToPoint() Point {
	return p
}

func (p Point) AddScalar(s Scalar) Point {
	return Point{X: p.X + s, Y: p.Y + s}
}

// Add converts v to a Point and adds it field-wise. v must not be nil.
func (p Point) Add(v PointLike) Point {
	q := v.ToPoint()
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) SubScalar(s Scalar) Point {
	return Point{X: p.X - s, Y: p.Y - s}
}

// Sub converts v to a Point and subtracts it field-wise. v must not be nil.
func (p Point) Sub(v PointLike) Point {
	q := v.ToPoint()
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(s Scalar) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Min returns the component-wise minimum. A NaN in either point wins.
func (p Point) Min(v PointLike) Point {
	q := v.ToPoint()
	return Point{X: util.Min(p.X, q.X), Y: util.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum. A NaN in either point wins.
func (p Point) Max(v PointLike) Point {
	q := v.ToPoint()
	return Point{X: util.Max(p.X, q.X), Y: util.Max(p.Y, q.Y)}
}

// Clamp limits each coordinate to the box spanned by lo and hi.
func (p Point) Clamp(lo PointLike, hi PointLike) Point {
	a, b := lo.ToPoint(), hi.ToPoint()
	return Point{X: util.Clamp3(p.X, a.X, b.X), Y: util.Clamp3(p.Y, a.Y, b.Y)}
}

func (p Point) Vec2d() Vec2d {
	return Vec2d{p.X, p.Y}
}

func (p Point) Size() Size {
	return Size{W: p.X, H: p.Y}
}

// ImagePoint rounds each coordinate to the nearest integer, halves away
// from zero. A NaN or infinite coordinate gives an implementation-defined
// integer for that axis only.
func (p Point) ImagePoint() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

func (p Point) ApproxEqual(v PointLike, eps Scalar) bool {
	q := v.ToPoint()
	return util.AlmostEqual(p.X, q.X, eps) && util.AlmostEqual(p.Y, q.Y, eps)
}

func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
