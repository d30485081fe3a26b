// Package svgin reads polygons from SVG documents and from the plain text
// point format.
//
// Only what the polykit tools need is supported: <polygon> elements with a
// points attribute, an optional translate() transform, and a #rrggbb fill.
// Anything else in the document is ignored.
package svgin

import (
	"bufio"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/polykit/geom"
)

var (
	ErrNoPolygons   = errors.New("no polygons found")
	ErrBadPoints    = errors.New("malformed point list")
	ErrBadTransform = errors.New("unsupported transform")
	ErrBadColor     = errors.New("malformed colour")
)

// ReadSVG returns every <polygon> in the document, in document order.
func ReadSVG(r io.Reader) ([]*geom.Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, ErrNoPolygons
	}

	polygons := make([]*geom.Polygon, 0, len(elements))
	for i, el := range elements {
		poly, err := polygonFromElement(el)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, poly)
	}
	return polygons, nil
}

func polygonFromElement(el *svgparser.Element) (*geom.Polygon, error) {
	points, err := ParsePoints(el.Attributes["points"])
	if err != nil {
		return nil, err
	}
	poly := geom.NewPolygon(points...)

	if transform, ok := el.Attributes["transform"]; ok {
		poly.Translation, err = parseTranslate(transform)
		if err != nil {
			return nil, err
		}
	}
	if fill, ok := el.Attributes["fill"]; ok {
		poly.Color, err = parseHexColor(fill)
		if err != nil {
			return nil, err
		}
	}
	return poly, nil
}

// ParsePoints reads an SVG points attribute. Coordinates may be separated by
// commas, whitespace or both.
func ParsePoints(s string) ([]geom.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrBadPoints, "odd coordinate count %d", len(fields))
	}
	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadPoints, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadPoints, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// Only translate(x[, y]) is supported, which maps onto a polygon's translation.
func parseTranslate(s string) (geom.Vector, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return geom.Vector{}, errors.Wrapf(ErrBadTransform, "%q", s)
	}
	args := strings.Fields(strings.ReplaceAll(s[len("translate("):len(s)-1], ",", " "))
	if len(args) == 0 || len(args) > 2 {
		return geom.Vector{}, errors.Wrapf(ErrBadTransform, "%q", s)
	}
	var v geom.Vector
	var err error
	if v.X, err = strconv.ParseFloat(args[0], 64); err != nil {
		return geom.Vector{}, errors.Wrapf(ErrBadTransform, "%q", s)
	}
	if len(args) == 2 {
		if v.Y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return geom.Vector{}, errors.Wrapf(ErrBadTransform, "%q", s)
		}
	}
	return v, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.Wrapf(ErrBadColor, "%q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrBadColor, "%q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ReadText reads newline separated points in the form "x y", with each polygon
// separated by an extra newline. Lines starting with '#' are comments.
func ReadText(r io.Reader) ([]*geom.Polygon, error) {
	var polygons []*geom.Polygon
	var points []geom.Point
	flush := func() {
		if len(points) > 0 {
			polygons = append(polygons, geom.NewPolygon(points...))
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current polygon
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Wrapf(ErrBadPoints, "line %d: %q", lineNumber, line)
		}
		point, err := ParsePoints(parts[0] + " " + parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	flush()
	if len(polygons) == 0 {
		return nil, ErrNoPolygons
	}
	return polygons, nil
}
