// Package scanfill rasterises polygons into horizontal spans with an edge
// table and an active edge table (AET).
//
// Scanlines are the integer y values inside the polygon's vertical extent. An
// edge covers the half-open range [yMin, yMax): it joins the sweep on the first
// scanline at or above yMin and leaves on the first scanline at or above yMax.
// Counting shared vertices only once this way keeps the number of active edges
// even on every scanline of a simple polygon.
package scanfill

import (
	"math"
	"sort"

	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/trace"
)

// A Span is one horizontal run of interior pixels, from X0 to X1 inclusive.
type Span struct {
	Y      float64
	X0, X1 float64
}

// Endpoints of the span as a line segment (x0, y, x1, y).
func (s Span) Segment() (x0, y0, x1, y1 float64) {
	return s.X0, s.Y, s.X1, s.Y
}

// Active edge state for a single Fill call.
type bucket struct {
	yMin, yMax float64
	// First scanline the edge covers.
	yStart   float64
	currentX float64
	invSlope float64
}

// Fill scan converts the polygon (with its translation applied) and returns the
// interior spans, scanline by scanline from the bottom up.
//
// Polygons with fewer than three edges produce no spans. Horizontal edges never
// cross a scanline and are left out of the edge table, as are edges with
// non-finite coordinates. Self-intersecting polygons are not rejected; if such
// a polygon leaves an odd number of active edges on a scanline, the last one is
// ignored.
func Fill(polygon *geom.Polygon) []Span {
	edges := polygon.AbsoluteEdges()
	if len(edges) < 3 {
		return nil
	}

	edgeTable := buildEdgeTable(edges)
	if len(edgeTable) == 0 {
		return nil
	}

	yStart := edgeTable[0].yStart
	top := yStart
	for _, b := range edgeTable {
		top = math.Max(top, b.yMax)
	}
	// Past 2^53 consecutive scanlines are no longer distinct float64 values.
	if yStart+1 == yStart || top+1 == top {
		trace.Logger().Debug("scanline precision exhausted, no spans",
			"yStart", yStart, "yMax", top)
		return nil
	}

	var (
		spans  []Span
		active []bucket
	)
	for row := int64(0); len(edgeTable) > 0 || len(active) > 0; row++ {
		y := yStart + float64(row)
		// Move edges that start on this scanline into the AET
		for len(edgeTable) > 0 && edgeTable[0].yStart <= y {
			b := edgeTable[0]
			b.currentX += (b.yStart - b.yMin) * b.invSlope
			active = append(active, b)
			edgeTable = edgeTable[1:]
		}

		// Drop edges that have ended
		remaining := active[:0]
		for _, b := range active {
			if b.yMax > y {
				remaining = append(remaining, b)
			}
		}
		active = remaining

		sort.SliceStable(active, func(i, j int) bool {
			return active[i].currentX < active[j].currentX
		})

		if len(active)%2 == 1 {
			trace.Logger().Debug("odd active edge count, ignoring last edge",
				"y", y, "count", len(active))
		}
		for i := 0; i+1 < len(active); i += 2 {
			x0 := math.Ceil(active[i].currentX)
			x1 := math.Floor(active[i+1].currentX)
			if x0 <= x1 {
				spans = append(spans, Span{Y: y, X0: x0, X1: x1})
			}
		}

		for i := range active {
			active[i].currentX += active[i].invSlope
		}
	}
	return spans
}

// One bucket per non-horizontal edge, sorted by (yMin, currentX, invSlope).
// Edges too short to reach a scanline are left out.
func buildEdgeTable(edges []geom.Edge) []bucket {
	table := make([]bucket, 0, len(edges))
	for _, e := range edges {
		if e.Horizontal() || !e.IsFinite() {
			continue
		}
		yStart := math.Ceil(e.YMin)
		if yStart >= e.YMax {
			continue
		}
		table = append(table, bucket{
			yMin:     e.YMin,
			yMax:     e.YMax,
			yStart:   yStart,
			currentX: e.XAtYMin,
			invSlope: e.InvSlope,
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.yMin != b.yMin {
			return a.yMin < b.yMin
		}
		if a.currentX != b.currentX {
			return a.currentX < b.currentX
		}
		return a.invSlope < b.invSlope
	})
	return table
}

// Crossings returns the sorted x values where scanline y crosses the polygon's
// edges, using the same half-open rule as Fill. For a simple polygon the result
// always has even length.
func Crossings(polygon *geom.Polygon, y float64) []float64 {
	var xs []float64
	for _, e := range polygon.AbsoluteEdges() {
		if e.Horizontal() || !e.IsFinite() {
			continue
		}
		if e.YMin <= y && y < e.YMax {
			xs = append(xs, e.XAt(y))
		}
	}
	sort.Float64s(xs)
	return xs
}
