// Package monotone triangulates y-monotone polygons with a single sweep.
//
// A y-monotone polygon is a simple polygon such that any horizontal line
// intersects at most two edges. Its boundary splits at the top and bottom
// vertices into a left and a right chain, which are merged by height and
// triangulated with a stack in linear time.
//
// Ties in y are broken by x, which simulates a slightly rotated coordinate
// system with no horizontal edges. Note that this affects where horizontal
// edges are allowed while keeping the polygon strictly monotone: on the left
// chain a horizontal edge must sit above the inside of the polygon, and on the
// right chain below it.
package monotone

import (
	"github.com/osuushi/polykit/dbg"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/throw"
)

// If two points have the same y, the one with the smaller x is lower.
func below(p, q geom.Point) bool {
	if geom.Equal(p.Y, q.Y) {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func above(p, q geom.Point) bool {
	return !below(p, q)
}

// IsMonotone reports whether the polygon is y-monotone under the tie-breaking
// rule, which is true when exactly one vertex is above both of its neighbours.
func IsMonotone(polygon *geom.Polygon) bool {
	return isMonotone(polygon.Points())
}

func isMonotone(points []geom.Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	maxima := 0
	for i, p := range points {
		prev := points[geom.CircularIndex(i-1, n)]
		next := points[geom.CircularIndex(i+1, n)]
		if below(prev, p) && below(next, p) {
			maxima++
		}
	}
	return maxima == 1
}

type triangulation struct {
	points []geom.Point
	// The input was clockwise, and points holds it reversed.
	reversed  bool
	source    *geom.Polygon
	triangles []*geom.Polygon
}

// Triangulate splits a y-monotone polygon of either winding into n-2
// triangles in absolute coordinates, wound like the polygon. Polygons with
// fewer than three vertices give nothing.
//
// Monotonicity is checked up front. A polygon that isn't monotone is a caller
// error and panics with a throw.KernelError.
func Triangulate(polygon *geom.Polygon) []*geom.Polygon {
	points := polygon.Absolute()
	n := len(points)
	if n < 3 {
		return nil
	}

	tr := &triangulation{source: polygon, triangles: make([]*geom.Polygon, 0, n-2)}
	// The sweep is written for counterclockwise polygons
	if geom.Orientation(points) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
		tr.reversed = true
	}
	tr.points = points

	if !isMonotone(points) {
		throw.Fatalf("polygon %s is not y-monotone", dbg.Name(polygon))
	}
	if n == 3 {
		tr.add(0, 1, 2)
		return tr.triangles
	}

	// Find the top point
	top := 0
	for i, p := range points {
		if above(p, points[top]) {
			top = i
		}
	}

	// Merge the chains from the top down, noting which points are on the left
	// chain. The bottom point is tracked separately.
	sorted := make([]int, 1, n)
	sorted[0] = top
	left := make([]bool, n)
	leftOffset, rightOffset := 1, 1
	var bottom int
	for {
		l := geom.CircularIndex(top+leftOffset, n)
		r := geom.CircularIndex(top-rightOffset, n)
		// If we've met up, we're done
		if l == r {
			bottom = l
			break
		}
		if above(points[l], points[r]) {
			left[l] = true
			sorted = append(sorted, l)
			leftOffset++
		} else {
			sorted = append(sorted, r)
			rightOffset++
		}
	}

	stack := make(indexStack, 0, n)
	stack.push(sorted[0])
	stack.push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		onLeft := left[p]
		if onLeft != left[stack.peek()] {
			// Switching chains. Monotonicity guarantees that every point on the
			// stack is visible from p, so the whole stack can be fanned out.
			for !stack.empty() {
				a := stack.pop()
				if stack.empty() {
					break
				}
				b := stack.peek()
				if onLeft {
					/*
					              b
					             /|
					 diagonal-> / |
					           p--a
					*/
					tr.add(p, a, b)
				} else {
					/*
						b
						|\ <- diagonal
						| \
						a--p
					*/
					tr.add(a, p, b)
				}
			}
			stack.push(sorted[i-1])
			stack.push(p)
			continue
		}

		// Same chain. Pop the last point, and cut off triangles for as long as p
		// can see the point below it on the stack.
		v := stack.pop()
		for !stack.empty() {
			q := stack.peek()
			var a, b, c int
			if onLeft {
				/*
					q
					|\
					v \
					  \\ <- diagonal
					    \
					     p
				*/
				a, b, c = p, q, v
			} else {
				/*
					               q
					              /|
					             / v
					            / /
					diagonal-> //
					          /
					         p
				*/
				a, b, c = p, v, q
			}
			// The easiest way to see if p sees q is to try the triangle, and see
			// if it's counterclockwise
			if geom.SignedArea([]geom.Point{points[a], points[b], points[c]}) <= 0 {
				break
			}
			v = stack.pop()
			tr.add(a, b, c)
		}
		stack.push(v)
		stack.push(p)
	}

	// Fan the bottom point out to everything left on the stack, which always
	// holds at least two points. Stopping one short, as a pure diagonal search
	// would, would drop the bottom point from the last triangle.
	l := stack.pop()
	for !stack.empty() {
		p := stack.pop()
		if left[l] {
			tr.add(bottom, p, l)
		} else {
			tr.add(bottom, l, p)
		}
		l = p
	}
	return tr.triangles
}

// Every triangle comes out counterclockwise; anything else means the sweep is
// broken.
func (tr *triangulation) add(a, b, c int) {
	pa, pb, pc := tr.points[a], tr.points[b], tr.points[c]
	if geom.SignedArea([]geom.Point{pa, pb, pc}) < 0 {
		throw.Fatalf("triangle is clockwise: %v %v %v", pa, pb, pc)
	}
	if tr.reversed {
		pa, pc = pc, pa
	}
	tri := geom.NewPolygon(pa, pb, pc)
	tri.Color = tr.source.Color
	tr.triangles = append(tr.triangles, tri)
}

type indexStack []int

func (s *indexStack) push(i int) {
	*s = append(*s, i)
}

func (s *indexStack) pop() int {
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *indexStack) peek() int {
	return (*s)[len(*s)-1]
}

func (s *indexStack) empty() bool {
	return len(*s) == 0
}
