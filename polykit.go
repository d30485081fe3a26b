// A 2D polygon geometry kernel for Go.
//
// This package clips polygons against convex windows (Sutherland-Hodgman),
// scan converts them into horizontal spans, and splits them into triangles by
// ear clipping. Polygons carry a translation that every operation applies, and
// results are always in absolute coordinates.
//
// The subpackages hold the algorithms themselves, plus a workspace that runs
// the whole pipeline over a set of shapes and windows.
package polykit

import (
	"log/slog"

	"github.com/osuushi/polykit/clip"
	"github.com/osuushi/polykit/earclip"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/throw"
	"github.com/osuushi/polykit/internal/trace"
	"github.com/osuushi/polykit/monotone"
	"github.com/osuushi/polykit/scanfill"
)

type Point = geom.Point
type Vector = geom.Vector
type Polygon = geom.Polygon
type Span = scanfill.Span

func NewPolygon(points ...Point) *Polygon {
	return geom.NewPolygon(points...)
}

// Clip returns the part of subject inside window. The window should be convex;
// triangulate concave windows first and clip against each triangle.
//
// Polygons that don't overlap give an empty result, not an error. An error
// means an internal invariant was broken.
func Clip(subject, window *Polygon) (result *Polygon, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return clip.Clip(subject, window), nil
}

// Fill returns the interior spans of the polygon, one or more per integer
// scanline.
func Fill(polygon *Polygon) (spans []Span, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			spans = nil
			err = recoveredErr
		}
	}()
	return scanfill.Fill(polygon), nil
}

// Triangulate splits a simple polygon of either winding into n-2 triangles.
// Self-intersecting polygons are not rejected, but may come back with fewer.
func Triangulate(polygon *Polygon) (triangles []*Polygon, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return earclip.Triangulate(polygon), nil
}

// TriangulateMonotone splits a y-monotone polygon into n-2 triangles in a single
// sweep. Polygons that aren't y-monotone give an error.
func TriangulateMonotone(polygon *Polygon) (triangles []*Polygon, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return monotone.Triangulate(polygon), nil
}

// SetLogger enables debug logging of degenerate cases across every polykit
// package. Pass nil to silence it again, which is the default.
func SetLogger(l *slog.Logger) {
	trace.SetLogger(l)
}
