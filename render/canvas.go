package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/scanfill"
)

// A Canvas draws polygons and spans onto an image, with the origin at the
// bottom left and one unit per pixel, the same space scanfill works in.
type Canvas struct {
	c             *gg.Context
	width, height int
	LineWidth     float64
}

// A black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	return &Canvas{c: c, width: width, height: height, LineWidth: 1}
}

func (cv *Canvas) Width() int  { return cv.width }
func (cv *Canvas) Height() int { return cv.height }

// DrawOutline strokes the polygon's boundary in its own colour.
func (cv *Canvas) DrawOutline(p *geom.Polygon) {
	if p.Len() < 2 {
		return
	}
	cv.tracePath(p.Absolute())
	cv.c.SetColor(p.Color)
	cv.c.SetLineWidth(cv.LineWidth)
	cv.c.Stroke()
}

// DrawSpans fills the pixels each span covers.
func (cv *Canvas) DrawSpans(spans []scanfill.Span, col color.Color) {
	if len(spans) == 0 {
		return
	}
	for _, s := range spans {
		cv.c.DrawRectangle(s.X0, s.Y, s.X1-s.X0+1, 1)
	}
	cv.c.SetColor(col)
	cv.c.Fill()
}

// DrawTriangles strokes every triangle in its own colour, which shows how a
// window was split.
func (cv *Canvas) DrawTriangles(triangles []*geom.Polygon) {
	for _, tri := range triangles {
		cv.DrawOutline(tri)
	}
}

func (cv *Canvas) Image() image.Image {
	return cv.c.Image()
}

func (cv *Canvas) SavePNG(path string) error {
	return errors.Wrapf(cv.c.SavePNG(path), "saving %s", path)
}

func (cv *Canvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(cv.c.EncodePNG(w), "encoding png")
}

func (cv *Canvas) tracePath(points []geom.Point) {
	cv.c.NewSubPath()
	cv.c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		cv.c.LineTo(p.X, p.Y)
	}
	cv.c.ClosePath()
}

// Preview prints a PNG file inline, for terminals that support the iTerm image
// protocol.
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "previewing %s", path)
}
