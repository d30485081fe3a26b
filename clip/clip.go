// Package clip intersects polygons with the Sutherland-Hodgman algorithm.
//
// The window is used as a sequence of half-planes, one per directed edge, so
// the result is only exact for convex windows. Concave windows should be
// triangulated first and clipped against triangle by triangle, which is what
// the workspace pipeline does.
package clip

import (
	"math"

	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/trace"
)

type Clipper struct {
	// Round result coordinates to whole pixels.
	Snap bool
}

// Clip with the default (unsnapped) clipper.
func Clip(subject, window *geom.Polygon) *geom.Polygon {
	return Clipper{}.Clip(subject, window)
}

// Clip returns the part of subject inside window, in absolute coordinates: the
// translations of both operands are baked into the result, which has no
// translation of its own. The result takes the subject's colour.
//
// A window with fewer than three vertices cannot bound a region, so the subject
// is returned unclipped. A result without vertices means the polygons do not
// overlap, and is not an error.
func (c Clipper) Clip(subject, window *geom.Polygon) *geom.Polygon {
	points := subject.Absolute()
	if window.Len() >= 3 {
		clipPoints := window.Absolute()
		// Which side of a directed edge counts as inside depends on the
		// window's winding.
		side := geom.Orientation(clipPoints)
		n := len(clipPoints)
		for i := 0; i < n && len(points) > 0; i++ {
			points = clipAgainstEdge(points, clipPoints[i], clipPoints[geom.CircularIndex(i+1, n)], side)
		}
	}

	if c.Snap {
		for i, p := range points {
			points[i] = geom.Point{X: math.Round(p.X), Y: math.Round(p.Y)}
		}
	}

	result := geom.NewPolygon(points...)
	result.Color = subject.Color
	return result
}

// One Sutherland-Hodgman pass against the line through a and b. Each polygon
// edge is walked as (s, e), where s is the previous vertex, so a polygon that
// is entirely inside comes back unchanged, in the same vertex order.
func clipAgainstEdge(points []geom.Point, a, b geom.Point, side float64) []geom.Point {
	result := make([]geom.Point, 0, len(points)+1)
	s := points[len(points)-1]
	sInside := inside(s, a, b, side)
	for _, e := range points {
		eInside := inside(e, a, b, side)
		switch {
		case sInside && eInside:
			result = append(result, e)
		case !sInside && eInside:
			result = appendIntersection(result, a, b, s, e)
			result = append(result, e)
		case sInside && !eInside:
			result = appendIntersection(result, a, b, s, e)
		}
		s, sInside = e, eInside
	}
	return result
}

// Points on the clip line count as inside, so polygons touching the window
// boundary are kept whole.
func inside(p, a, b geom.Point, side float64) bool {
	return side*b.Sub(a).Cross(p.Sub(a)) >= 0
}

func appendIntersection(points []geom.Point, a, b, s, e geom.Point) []geom.Point {
	p, ok := Intersection(a, b, s, e)
	if !ok {
		trace.Logger().Debug("dropping clip intersection of parallel lines",
			"clipStart", a, "clipEnd", b, "edgeStart", s, "edgeEnd", e)
		return points
	}
	return append(points, p)
}

// Intersection of the infinite lines through (a, b) and (c, d), using the
// determinant form. ok is false when the lines are parallel (or a coordinate is
// not finite), in which case there is no point to return.
func Intersection(a, b, c, d geom.Point) (p geom.Point, ok bool) {
	denom := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if denom == 0 {
		return geom.Point{}, false
	}
	ab := a.X*b.Y - a.Y*b.X
	cd := c.X*d.Y - c.Y*d.X
	p = geom.Point{
		X: (ab*(c.X-d.X) - (a.X-b.X)*cd) / denom,
		Y: (ab*(c.Y-d.Y) - (a.Y-b.Y)*cd) / denom,
	}
	if !p.IsFinite() {
		return geom.Point{}, false
	}
	return p, true
}
