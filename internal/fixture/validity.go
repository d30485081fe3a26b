package fixture

import (
	"testing"

	"github.com/osuushi/polykit/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. The set of points in the triangles equals the set of absolute points in the polygon.
// 3. Every edge of the polygon is an edge of some triangle.
// 4. No triangle is wound against the polygon. Collinear vertices can leave
//    zero area slivers, which are allowed.
// 5. The sum of the areas of all triangles equals the area of the polygon, as
//    measured independently by orb.
func AssertValidTriangulation(t *testing.T, polygon *geom.Polygon, triangles []*geom.Polygon) {
	t.Helper()
	points := polygon.Absolute()
	require.Len(t, triangles, len(points)-2, "a simple polygon with n vertices has n-2 triangles")

	polyPoints := make(map[geom.Point]struct{})
	for _, p := range points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[geom.Point]struct{})
	segments := make(segmentSet)
	orientation := geom.Orientation(points)

	var triangleArea float64
	for _, tri := range triangles {
		require.Equal(t, 3, tri.Len(), "not a triangle: %s", tri)
		require.True(t, tri.Translation.IsZero(), "triangles are in absolute coordinates")
		require.GreaterOrEqual(t, orientation*tri.SignedArea(), -geom.Tolerance, "triangle wound against the polygon: %s", tri)
		triangleArea += tri.Area()
		for i := 0; i < 3; i++ {
			trianglePoints[tri.At(i)] = struct{}{}
			segments.add(tri.At(i), tri.At(i+1))
		}
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	for i, p1 := range points {
		p2 := points[(i+1)%len(points)]
		require.True(t, segments.contains(p1, p2), "segment %v-%v of the polygon is not an edge of any triangle", p1, p2)
	}

	require.InDelta(t, ReferenceArea(points), triangleArea, 1e-6, "sum of the triangle areas must equal the polygon area")
}

// ReferenceArea measures the polygon through orb, independently of geom.
func ReferenceArea(points []geom.Point) float64 {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	ring = append(ring, ring[0])
	area := planar.Area(orb.Polygon{ring})
	if area < 0 {
		area = -area
	}
	return area
}

// Unordered pair of points
type segment struct {
	a, b geom.Point
}

func newSegment(a, b geom.Point) segment {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return segment{a, b}
}

type segmentSet map[segment]struct{}

func (set segmentSet) add(a, b geom.Point) {
	set[newSegment(a, b)] = struct{}{}
}

func (set segmentSet) contains(a, b geom.Point) bool {
	_, ok := set[newSegment(a, b)]
	return ok
}
