package geom

// Winding helpers. Signs follow the usual y-up convention: counterclockwise
// polygons have positive area. On a y-down screen the visual direction is
// mirrored, but every algorithm here only cares about consistency.

// Shoelace area of the vertex cycle, positive for counterclockwise polygons.
func SignedArea(points []Point) float64 {
	var a float64
	n := len(points)
	for i, p := range points {
		q := points[CircularIndex(i+1, n)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func (poly *Polygon) SignedArea() float64 {
	return SignedArea(poly.points)
}

func (poly *Polygon) Area() float64 {
	a := poly.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly *Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// +1 for counterclockwise vertex cycles, -1 for clockwise ones. Degenerate
// cycles with zero area count as counterclockwise.
func Orientation(points []Point) float64 {
	if SignedArea(points) < 0 {
		return -1
	}
	return 1
}
