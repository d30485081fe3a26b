package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/osuushi/polykit/geom"
)

// Mask rasterises triangles into an anti-aliased coverage mask. Unlike Canvas,
// y grows downwards, so pixel (x, y) covers the unit square at (x, y).
//
// Triangles of one triangulation share a winding, so their coverage adds up to
// exactly one along shared edges.
func Mask(triangles []*geom.Polygon, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}
	r := vector.NewRasterizer(width, height)
	for _, tri := range triangles {
		if tri.Len() < 3 {
			continue
		}
		points := tri.Absolute()
		r.MoveTo(float32(points[0].X), float32(points[0].Y))
		for _, p := range points[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// Coverage is the total area a mask covers, in pixels.
func Coverage(mask *image.Alpha) float64 {
	var sum int
	for _, a := range mask.Pix {
		sum += int(a)
	}
	return float64(sum) / 255
}

// Composite paints col through the mask onto the canvas. The mask is in y-down
// space and is flipped to match the canvas.
func (cv *Canvas) Composite(mask *image.Alpha, col color.Color) {
	dst, ok := cv.c.Image().(draw.Image)
	if !ok {
		return
	}
	b := mask.Bounds()
	flipped := image.NewAlpha(image.Rect(0, 0, cv.width, cv.height))
	for y := b.Min.Y; y < b.Max.Y && y < cv.height; y++ {
		for x := b.Min.X; x < b.Max.X && x < cv.width; x++ {
			flipped.SetAlpha(x, cv.height-1-y, mask.AlphaAt(x, y))
		}
	}
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, flipped, image.Point{}, draw.Over)
}
