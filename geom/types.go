package geom

import "math"

// Points are values. Nothing in the kernel ever mutates a point in place;
// polygons replace their vertex lists instead.
type Point struct {
	X float64
	Y float64
}

type Vector struct {
	X float64
	Y float64
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Tolerance based equality, see Equal.
func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Z component of the 3D cross product. Positive when w turns
// counterclockwise from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Rotate a quarter turn counterclockwise.
func (v Vector) Rotate90() Vector {
	return Vector{-v.Y, v.X}
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit vector in the same direction. The zero vector is returned unchanged
// rather than turning into NaNs.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
