package geom

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/osuushi/polykit/dbg"
)

// A Polygon is a closed, ordered cycle of vertices together with its derived
// edge list.
//
// The translation is kept apart from the vertices and applied whenever the
// polygon is consumed (clipped, filled, triangulated or drawn). The colour is
// only carried along for the UI.
//
// The edge list is rebuilt synchronously on every vertex mutation, so Edges()
// can never observe stale data. A Polygon is not safe for concurrent use; finish
// editing before handing it to an algorithm.
type Polygon struct {
	points []Point
	edges  []Edge

	Translation Vector
	Color       color.RGBA
}

func NewPolygon(points ...Point) *Polygon {
	poly := new(Polygon)
	poly.SetPoints(points)
	return poly
}

func (poly *Polygon) Len() int {
	return len(poly.points)
}

// Vertex i, treating the vertex list as a circular buffer. An empty polygon
// yields the zero Point.
func (poly *Polygon) At(i int) Point {
	if len(poly.points) == 0 {
		return Point{}
	}
	return poly.points[CircularIndex(i, len(poly.points))]
}

// Copy of the raw (untranslated) vertices.
func (poly *Polygon) Points() []Point {
	return append([]Point(nil), poly.points...)
}

// Vertices with the translation applied.
func (poly *Polygon) Absolute() []Point {
	result := make([]Point, len(poly.points))
	for i, p := range poly.points {
		result[i] = p.Add(poly.Translation)
	}
	return result
}

func (poly *Polygon) AddPoint(p Point) {
	poly.points = append(poly.points, p)
	poly.update()
}

// Replace every vertex. The slice is copied.
func (poly *Polygon) SetPoints(points []Point) {
	poly.points = append(poly.points[:0:0], points...)
	poly.update()
}

func (poly *Polygon) Clear() {
	poly.points = nil
	poly.update()
}

// The edges of the untranslated polygon, sorted by (YMin, InvSlope). The
// returned slice is shared with the polygon and must not be modified.
func (poly *Polygon) Edges() []Edge {
	return poly.edges
}

// Edges of the polygon with its translation applied, in the same order as
// Edges().
func (poly *Polygon) AbsoluteEdges() []Edge {
	if poly.Translation.IsZero() {
		return poly.edges
	}
	return EdgesOf(poly.Absolute())
}

func (poly *Polygon) update() {
	poly.edges = EdgesOf(poly.points)
}

// EdgesOf builds the closed edge list of a vertex cycle, sorted by YMin with
// ties broken by InvSlope. This is the insertion order the scanline fill wants
// for its edge table.
func EdgesOf(points []Point) []Edge {
	edges := boundaryEdges(points)
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].YMin != edges[j].YMin {
			return edges[i].YMin < edges[j].YMin
		}
		return edges[i].InvSlope < edges[j].InvSlope
	})
	return edges
}

func (poly *Polygon) Clone() *Polygon {
	clone := NewPolygon(poly.points...)
	clone.Translation = poly.Translation
	clone.Color = poly.Color
	return clone
}

// A copy with the vertex order reversed. Translation and colour are kept.
func (poly *Polygon) Reverse() *Polygon {
	points := make([]Point, len(poly.points))
	for i, p := range poly.points {
		points[len(points)-1-i] = p
	}
	reversed := NewPolygon(points...)
	reversed.Translation = poly.Translation
	reversed.Color = poly.Color
	return reversed
}

// Even-odd point-in-polygon test on the absolute vertices.
func (poly *Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p towards +X.
func (poly *Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	points := poly.Absolute()
	for i, vertex := range points {
		nextVertex := points[CircularIndex(i+1, len(points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := NewEdge(vertex, nextVertex).XAt(p.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly *Polygon) String() string {
	return fmt.Sprintf("Polygon %s <n: %d, t: (%g, %g)>",
		dbg.Label(poly, len(poly.points)),
		len(poly.points),
		poly.Translation.X,
		poly.Translation.Y,
	)
}
