// Package render turns kernel output into things that can be drawn: flat
// coordinate buffers for a GPU, PNG images, and coverage masks.
//
// Nothing in this package mutates geometry.
package render

import (
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/scanfill"
)

// OutlineBuffer flattens the absolute vertices into x, y pairs, to be drawn as
// a line loop.
func OutlineBuffer(p *geom.Polygon) []float32 {
	points := p.Absolute()
	buf := make([]float32, 0, 2*len(points))
	for _, pt := range points {
		buf = append(buf, float32(pt.X), float32(pt.Y))
	}
	return buf
}

// SpanBuffer flattens spans into x0, y, x1, y quads, to be drawn as
// independent lines.
func SpanBuffer(spans []scanfill.Span) []float32 {
	buf := make([]float32, 0, 4*len(spans))
	for _, s := range spans {
		x0, y0, x1, y1 := s.Segment()
		buf = append(buf, float32(x0), float32(y0), float32(x1), float32(y1))
	}
	return buf
}

// TriangleBuffer flattens triangles into three x, y pairs each. Anything that
// isn't a triangle is skipped.
func TriangleBuffer(triangles []*geom.Polygon) []float32 {
	buf := make([]float32, 0, 6*len(triangles))
	for _, tri := range triangles {
		if tri.Len() != 3 {
			continue
		}
		buf = append(buf, OutlineBuffer(tri)...)
	}
	return buf
}
