package geom

// An Edge is one side of a polygon, in the form the scanline fill wants it:
// ordered by y, with the x step per unit of y precomputed. The original
// endpoints are kept in boundary order as P1 and P2.
//
// Edges are derived data. A polygon rebuilds all of its edges whenever its
// vertices change, so an Edge is never updated in place.
type Edge struct {
	P1, P2 Point

	YMin, YMax float64
	// X of whichever endpoint has the smaller Y.
	XAtYMin float64
	// dx/dy. Zero for horizontal edges, which have no defined inverse slope and
	// must be checked with Horizontal() instead.
	InvSlope float64
}

func NewEdge(p1, p2 Point) Edge {
	e := Edge{P1: p1, P2: p2}
	lower, upper := p1, p2
	if upper.Y < lower.Y {
		lower, upper = upper, lower
	}
	e.YMin = lower.Y
	e.YMax = upper.Y
	e.XAtYMin = lower.X
	if dy := upper.Y - lower.Y; dy != 0 {
		e.InvSlope = (upper.X - lower.X) / dy
	}
	return e
}

// Horizontal edges never cross a scanline, so the fill skips them.
func (e Edge) Horizontal() bool {
	return e.YMin == e.YMax
}

// X value of the edge's supporting line at y.
func (e Edge) XAt(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.InvSlope
}

// Direction of the edge in boundary order.
func (e Edge) Vector() Vector {
	return e.P2.Sub(e.P1)
}

func (e Edge) Len() float64 {
	return e.Vector().Len()
}

func (e Edge) Midpoint() Point {
	return e.P1.Midpoint(e.P2)
}

func (e Edge) IsFinite() bool {
	return e.P1.IsFinite() && e.P2.IsFinite()
}

// Build the closed edge list of a vertex cycle: edge i joins vertex i to
// vertex i+1, and the last vertex joins the first. The result is in boundary
// order.
func boundaryEdges(points []Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, n)
	for i, p := range points {
		edges[i] = NewEdge(p, points[CircularIndex(i+1, n)])
	}
	return edges
}
