package geom

import "math"

// Bounds returns the corners of the axis aligned box around the raw vertices.
// ok is false when the polygon has fewer than three vertices, since such a
// polygon has no region to bound.
func (poly *Polygon) Bounds() (min, max Point, ok bool) {
	if len(poly.points) < 3 {
		return Point{}, Point{}, false
	}
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max, true
}

// BoundingBox returns the bounding box as a four vertex polygon, in the order
// (xmin,ymin), (xmin,ymax), (xmax,ymax), (xmax,ymin). The box shares the
// source's translation. It returns nil for polygons with fewer than three
// vertices.
func (poly *Polygon) BoundingBox() *Polygon {
	min, max, ok := poly.Bounds()
	if !ok {
		return nil
	}
	box := NewPolygon(
		Point{min.X, min.Y},
		Point{min.X, max.Y},
		Point{max.X, max.Y},
		Point{max.X, min.Y},
	)
	box.Translation = poly.Translation
	return box
}

// Subdivide inserts the midpoint of every edge after the edge's start vertex,
// doubling the vertex count.
func (poly *Polygon) Subdivide() {
	poly.refine(func(e Edge) Point {
		return e.Midpoint()
	})
}

// Fractalize is one step of a fractal boundary: like Subdivide, but every
// inserted vertex is pushed off the edge midpoint along the outward normal by
// half the edge length.
//
// Outward is decided from the winding, so clockwise and counterclockwise
// polygons both grow. Neither operator repairs self intersections; a jagged
// enough input can produce a non-simple result.
func (poly *Polygon) Fractalize() {
	// The left normal points inside a counterclockwise polygon.
	outward := -Orientation(poly.points)
	poly.refine(func(e Edge) Point {
		v := e.Vector()
		normal := v.Normalized().Rotate90().Scale(outward)
		return e.Midpoint().Add(normal.Scale(v.Len() / 2))
	})
}

func (poly *Polygon) refine(insert func(e Edge) Point) {
	if len(poly.points) < 2 {
		return
	}
	edges := boundaryEdges(poly.points)
	points := make([]Point, 0, 2*len(poly.points))
	for i, p := range poly.points {
		points = append(points, p, insert(edges[i]))
	}
	poly.SetPoints(points)
}
