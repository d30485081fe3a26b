package monotone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/polykit/earclip"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/fixture"
	"github.com/osuushi/polykit/internal/throw"
)

func polygon(coords ...float64) *geom.Polygon {
	points := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, geom.Point{X: coords[i], Y: coords[i+1]})
	}
	return geom.NewPolygon(points...)
}

func reflect(poly *geom.Polygon, sx, sy float64) *geom.Polygon {
	points := poly.Points()
	for i, p := range points {
		points[i] = geom.Point{X: sx * p.X, Y: sy * p.Y}
	}
	return geom.NewPolygon(points...)
}

func TestTriangulate(t *testing.T) {
	cases := map[string]*geom.Polygon{
		// Triangles are special-cased, so these should be a no-op. Included in
		// case that implementation changes.
		"simple triangle":          polygon(0, 0, 1, 1, 0, 2),
		"wacky triangle":           polygon(-10, 0, 43, 2, 0, 2),
		"triangle with horizontal": polygon(0, 0, 1, 0, 0, 1),
		// A square has horizontal segments, but it is still strictly y-monotone
		// because of the lexicographic ordering.
		"square":  polygon(0, 0, 1, 0, 1, 1, 0, 1),
		"diamond": polygon(0, 0, 1, 1, 0, 2, -1, 1),
		/*
			 C
			 \ \
			  \  \
			  D   B
			 /  /
			/ /
			A
		*/
		"quad chevron":       polygon(0, 0, 10, 10, 0, 20, 5, 10),
		"collinear vertices": polygon(0, 0, 2, 0, 4, 0, 4, 4, 0, 4),
		"hexagon":            fixture.Regular(geom.Point{X: 20, Y: 20}, 10, 6),
		"zigzag":             fixture.Zigzag(3),
		"long zigzag":        fixture.Zigzag(40),
	}

	for name, poly := range cases {
		t.Run(name+" (original)", func(t *testing.T) {
			fixture.AssertValidTriangulation(t, poly, Triangulate(poly))
		})
		t.Run(name+" (reversed)", func(t *testing.T) {
			reversed := poly.Reverse()
			fixture.AssertValidTriangulation(t, reversed, Triangulate(reversed))
		})
		t.Run(name+" (x reflected)", func(t *testing.T) {
			reflected := reflect(poly, -1, 1).Reverse()
			fixture.AssertValidTriangulation(t, reflected, Triangulate(reflected))
		})
		t.Run(name+" (y reflected)", func(t *testing.T) {
			reflected := reflect(poly, 1, -1).Reverse()
			fixture.AssertValidTriangulation(t, reflected, Triangulate(reflected))
		})
		t.Run(name+" (xy reflected)", func(t *testing.T) {
			reflected := reflect(poly, -1, -1)
			fixture.AssertValidTriangulation(t, reflected, Triangulate(reflected))
		})
	}
}

func TestTriangulate_AgreesWithEarClipping(t *testing.T) {
	poly := fixture.Zigzag(12)
	poly.Translation = geom.Vector{X: 3, Y: -7}

	var monotoneArea, earArea float64
	for _, tri := range Triangulate(poly) {
		monotoneArea += tri.Area()
	}
	for _, tri := range earclip.Triangulate(poly) {
		earArea += tri.Area()
	}
	assert.InDelta(t, earArea, monotoneArea, 1e-9)
	assert.InDelta(t, poly.Area(), monotoneArea, 1e-9)
}

func TestTriangulate_Degenerate(t *testing.T) {
	assert.Empty(t, Triangulate(geom.NewPolygon()))
	assert.Empty(t, Triangulate(polygon(0, 0, 1, 1)))
}

func TestTriangulate_NotMonotone(t *testing.T) {
	for _, name := range []string{"comb", "spiral", "c_shape"} {
		poly := fixture.Load(name)
		assert.False(t, IsMonotone(poly), name)

		var err error
		func() {
			defer func() {
				err = throw.HandlePanicRecover(recover())
			}()
			Triangulate(poly)
		}()
		if assert.Error(t, err, name) {
			assert.Contains(t, err.Error(), "not y-monotone", name)
		}
	}
}

func TestIsMonotone(t *testing.T) {
	assert.True(t, IsMonotone(fixture.Zigzag(5)))
	assert.True(t, IsMonotone(fixture.Rect(0, 0, 1, 1)))
	assert.False(t, IsMonotone(fixture.Star(geom.Point{}, 10, 4, 5)))
	assert.False(t, IsMonotone(polygon(0, 0, 1, 1)))
}

func TestBelow(t *testing.T) {
	assert.True(t, below(geom.Point{X: 5, Y: 0}, geom.Point{X: 0, Y: 1}))
	assert.True(t, below(geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1}), "ties go to the smaller x")
	assert.False(t, below(geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1}))
	assert.True(t, above(geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1}))
}

func TestIndexStack(t *testing.T) {
	var s indexStack
	assert.True(t, s.empty())
	s.push(1)
	assert.False(t, s.empty())
	assert.Equal(t, 1, s.peek())
	assert.Equal(t, 1, s.pop())
	assert.True(t, s.empty())
	s.push(1)
	s.push(3)
	assert.Equal(t, 3, s.peek())
	assert.Equal(t, 3, s.pop())
	assert.Equal(t, 1, s.peek())
	assert.Equal(t, 1, s.pop())
	assert.True(t, s.empty())
}
