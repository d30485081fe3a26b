// Package earclip decomposes simple polygons into triangles by ear clipping.
package earclip

import (
	"github.com/osuushi/polykit/dbg"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/trace"
)

// Role is the classification of a vertex during ear clipping.
type Role int

const (
	Convex Role = iota
	Reflex
	Ear // Convex, and clippable without cutting off another vertex
)

func (r Role) String() string {
	switch r {
	case Convex:
		return "convex"
	case Reflex:
		return "reflex"
	case Ear:
		return "ear"
	}
	return "unknown"
}

type triangulator struct {
	points []geom.Point
	// +1 for counterclockwise input, -1 for clockwise
	orientation float64
	ring        *ring
	reflex      *indexList
	ears        *indexList
}

func newTriangulator(points []geom.Point) *triangulator {
	n := len(points)
	t := &triangulator{
		points:      points,
		orientation: geom.Orientation(points),
		ring:        newRing(n),
		reflex:      newIndexList(n),
		ears:        newIndexList(n),
	}

	// Ear tests need the complete reflex set, so classify in two passes.
	for i := 0; i < n; i++ {
		if t.isReflex(i) {
			t.reflex.pushBack(i)
		}
	}
	for i := 0; i < n; i++ {
		if !t.reflex.contains(i) && t.isEar(i) {
			t.ears.pushBack(i)
		}
	}
	return t
}

// Triangulate splits the polygon into triangles in absolute coordinates. A
// simple polygon with n vertices yields n-2 triangles whose areas sum to the
// polygon's area. Polygons with fewer than three vertices yield nothing, and a
// self-intersecting polygon may yield fewer triangles than expected.
func Triangulate(polygon *geom.Polygon) []*geom.Polygon {
	points := polygon.Absolute()
	n := len(points)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return []*geom.Polygon{triangle(polygon, points[0], points[1], points[2])}
	}

	t := newTriangulator(points)
	result := make([]*geom.Polygon, 0, n-2)
	for t.ring.live >= 3 {
		ear := t.ears.front()
		if ear == none {
			trace.Logger().Debug("ear clipping ran out of ears",
				"polygon", dbg.Name(polygon),
				"remaining", t.ring.live,
				"triangles", len(result),
			)
			break
		}

		prev, next := t.ring.prev[ear], t.ring.next[ear]
		result = append(result, triangle(polygon, points[prev], points[ear], points[next]))

		t.ears.remove(ear)
		t.reflex.remove(ear)
		t.ring.remove(ear)
		if t.ring.live < 3 {
			break
		}
		t.update(prev)
		t.update(next)
	}
	return result
}

// Classify reports the role each vertex has before any ear is clipped.
func Classify(polygon *geom.Polygon) []Role {
	points := polygon.Absolute()
	if len(points) < 3 {
		return nil
	}
	t := newTriangulator(points)
	roles := make([]Role, len(points))
	for i := range roles {
		switch {
		case t.reflex.contains(i):
			roles[i] = Reflex
		case t.ears.contains(i):
			roles[i] = Ear
		default:
			roles[i] = Convex
		}
	}
	return roles
}

// Re-derive a vertex's role after one of its neighbours was clipped.
func (t *triangulator) update(i int) {
	if t.isReflex(i) {
		t.reflex.pushBack(i)
		t.ears.remove(i)
		return
	}
	t.reflex.remove(i)
	if t.isEar(i) {
		t.ears.pushFront(i)
	} else {
		t.ears.remove(i)
	}
}

func (t *triangulator) isReflex(i int) bool {
	prev, next := t.ring.prev[i], t.ring.next[i]
	in := t.points[i].Sub(t.points[prev]).Normalized()
	out := t.points[next].Sub(t.points[i]).Normalized()
	return t.orientation*in.Rotate90().Dot(out) < 0
}

func (t *triangulator) isEar(i int) bool {
	prev, next := t.ring.prev[i], t.ring.next[i]
	a, b, c := t.points[prev], t.points[i], t.points[next]
	ear := true
	t.reflex.each(func(j int) bool {
		if j == prev || j == i || j == next {
			return true
		}
		if inTriangle(a, b, c, t.points[j]) {
			ear = false
		}
		return ear
	})
	return ear
}

// Barycentric test. Points on the a-b and a-c edges count as inside, points
// on b-c do not. A degenerate triangle contains nothing.
func inTriangle(a, b, c, p geom.Point) bool {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	v00 := v0.Dot(v0)
	v01 := v0.Dot(v1)
	v02 := v0.Dot(v2)
	v11 := v1.Dot(v1)
	v12 := v1.Dot(v2)

	denom := v00*v11 - v01*v01
	if denom == 0 {
		return false
	}
	u := (v11*v02 - v01*v12) / denom
	v := (v00*v12 - v01*v02) / denom
	return u >= 0 && v >= 0 && u+v < 1
}

func triangle(source *geom.Polygon, a, b, c geom.Point) *geom.Polygon {
	tri := geom.NewPolygon(a, b, c)
	tri.Color = source.Color
	return tri
}
