package frame

import (
	"math"

	"github.com/reidswan/servo/core/dimen"
)

// Matrix represents a 2D affine transformation matrix (3x3).
//
//	[ a c e ]
//	[ b d f ]
//	[ 0 0 1 ]
//
// Translations E and F are in (fractional) CSS pixels.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation creates a translation matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scaling creates a scaling matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation creates a rotation matrix. Angle is in radians, clockwise in
// a y-down coordinate system.
func Rotation(angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply combines two matrices (m * n): n is applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// IsIdentity is true for the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Apply transforms a point given in fractional pixels.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyPoint transforms a point.
func (m Matrix) ApplyPoint(p dimen.Point) dimen.Point {
	x, y := m.Apply(p.X.Points(), p.Y.Points())
	return dimen.Point{X: dimen.FromPoints(x), Y: dimen.FromPoints(y)}
}

// ApplyRect returns the bounding box of a transformed rectangle.
func (m Matrix) ApplyRect(r dimen.Rect) dimen.Rect {
	corners := [4]dimen.Point{
		r.TopL, {X: r.BotR.X, Y: r.TopL.Y}, r.BotR, {X: r.TopL.X, Y: r.BotR.Y},
	}
	p := m.ApplyPoint(corners[0])
	bbox := dimen.Rect{TopL: p, BotR: p}
	for _, c := range corners[1:] {
		p = m.ApplyPoint(c)
		bbox.TopL.X = dimen.Min(bbox.TopL.X, p.X)
		bbox.TopL.Y = dimen.Min(bbox.TopL.Y, p.Y)
		bbox.BotR.X = dimen.Max(bbox.BotR.X, p.X)
		bbox.BotR.Y = dimen.Max(bbox.BotR.Y, p.Y)
	}
	return bbox
}

// TransformKind identifies a CSS transform function.
type TransformKind uint8

// Supported transform functions.
const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
	TransformMatrix
)

// TransformFunc is a single transform function of a CSS `transform` list.
type TransformFunc struct {
	Kind   TransformKind
	X, Y   Length  // translate; percentages refer to the border box
	Angle  float64 // rotate, in radians
	SX, SY float64 // scale
	M      Matrix  // matrix
}

// Translate creates a translate(x, y) transform function.
func Translate(x, y Length) TransformFunc {
	return TransformFunc{Kind: TransformTranslate, X: x, Y: y}
}

// Rotate creates a rotate(angle) transform function.
func Rotate(angle float64) TransformFunc {
	return TransformFunc{Kind: TransformRotate, Angle: angle}
}

// Scale creates a scale(sx, sy) transform function.
func Scale(sx, sy float64) TransformFunc {
	return TransformFunc{Kind: TransformScale, SX: sx, SY: sy}
}

func (tf TransformFunc) matrix(size dimen.Size) Matrix {
	switch tf.Kind {
	case TransformTranslate:
		return Translation(tf.X.Resolve(size.W).Points(), tf.Y.Resolve(size.H).Points())
	case TransformRotate:
		return Rotation(tf.Angle)
	case TransformScale:
		return Scaling(tf.SX, tf.SY)
	case TransformMatrix:
		return tf.M
	}
	return Identity()
}

// TransformMatrix computes the transformation matrix of a style for a given
// border box. The transform origin is resolved against the border box and
// the resulting matrix maps points of the border box's coordinate system:
// T(origin) * M * T(-origin).
// Returns false if the style has no transform.
func (s *Style) TransformMatrix(borderBox dimen.Rect) (Matrix, bool) {
	if !s.HasTransform() {
		return Identity(), false
	}
	size := borderBox.Size()
	m := Identity()
	for _, tf := range s.Transform {
		m = m.Multiply(tf.matrix(size))
	}
	o := s.transformOrigin()
	ox := (borderBox.TopL.X + o[0].Resolve(size.W)).Points()
	oy := (borderBox.TopL.Y + o[1].Resolve(size.H)).Points()
	return Translation(ox, oy).Multiply(m).Multiply(Translation(-ox, -oy)), true
}
