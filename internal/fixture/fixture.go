// Package fixture provides polygons for tests.
//
// SVG fixtures live in the fixtures/ directory and are available by name, sans
// extension. Every fixture holds exactly one polygon and is returned
// counterclockwise. If anything goes wrong, loading panics, since a broken
// fixture is a bug in the test suite.
package fixture

import (
	"embed"
	"log"
	"math"
	"strings"

	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/svgin"
)

//go:embed fixtures
var fixtures embed.FS

// Names of every SVG fixture.
func Names() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}

func Load(name string) *geom.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := svgin.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}

	result := polygons[0]
	// Ensure that the polygon is CCW
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc generated fixtures

// A star with the given number of spikes, counterclockwise, starting on the +X
// axis.
func Star(center geom.Point, outerRadius, innerRadius float64, spikes int) *geom.Polygon {
	var points []geom.Point
	for i := 0; i < 2*spikes; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := math.Pi * float64(i) / float64(spikes)
		points = append(points, geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return geom.NewPolygon(points...)
}

// A convex regular polygon, counterclockwise.
func Regular(center geom.Point, radius float64, sides int) *geom.Polygon {
	points := make([]geom.Point, sides)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return geom.NewPolygon(points...)
}

// An axis aligned rectangle, counterclockwise.
func Rect(x0, y0, x1, y1 float64) *geom.Polygon {
	return geom.NewPolygon(
		geom.Point{X: x0, Y: y0},
		geom.Point{X: x1, Y: y0},
		geom.Point{X: x1, Y: y1},
		geom.Point{X: x0, Y: y1},
	)
}

// A y-monotone polygon with k vertices on each chain, whose chains wobble in and
// out so that both have reflex vertices. Counterclockwise.
func Zigzag(k int) *geom.Polygon {
	points := make([]geom.Point, 0, 2*k)
	for i := 0; i < k; i++ {
		points = append(points, geom.Point{X: 5 + 3*math.Cos(float64(i)*1.7), Y: float64(i)})
	}
	for i := k - 1; i >= 0; i-- {
		points = append(points, geom.Point{X: -5 - 3*math.Sin(float64(i)*1.3), Y: float64(i) + 0.5})
	}
	return geom.NewPolygon(points...)
}

// Every fixture from disk plus a few generated ones, keyed by name. All of them
// are simple and counterclockwise.
func All() map[string]*geom.Polygon {
	all := map[string]*geom.Polygon{
		"star":     Star(geom.Point{X: 50, Y: 50}, 40, 15, 5),
		"star7":    Star(geom.Point{X: 0, Y: 0}, 10, 4, 7),
		"hexagon":  Regular(geom.Point{X: 20, Y: 20}, 10, 6),
		"triangle": Regular(geom.Point{X: 0, Y: 0}, 5, 3),
		"square":   Rect(0, 0, 4, 4),
	}
	for _, name := range Names() {
		all[name] = Load(name)
	}
	return all
}

// A copy of the polygon with every vertex multiplied by s.
func Scale(poly *geom.Polygon, s float64) *geom.Polygon {
	points := poly.Points()
	for i, p := range points {
		points[i] = geom.Point{X: p.X * s, Y: p.Y * s}
	}
	scaled := geom.NewPolygon(points...)
	scaled.Translation = poly.Translation
	scaled.Color = poly.Color
	return scaled
}
