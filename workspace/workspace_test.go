package workspace

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polykit/geom"
)

func draw(t *testing.T, w *Workspace, kind Kind, points ...geom.Point) ID {
	t.Helper()
	_, err := w.StartShape(kind)
	require.NoError(t, err)
	for _, p := range points {
		require.NoError(t, w.AddPoint(p.X, p.Y))
	}
	id, err := w.FinishShape()
	require.NoError(t, err)
	return id
}

func rect(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func totalArea(polys []*geom.Polygon) float64 {
	var area float64
	for _, poly := range polys {
		area += poly.Area()
	}
	return area
}

func TestEditing(t *testing.T) {
	w := New()

	err := w.AddPoint(1, 1)
	assert.True(t, errors.Is(err, ErrNotEditing))
	_, err = w.FinishShape()
	assert.True(t, errors.Is(err, ErrNotEditing))

	_, err = w.StartShape(Result)
	assert.True(t, errors.Is(err, ErrWrongKind))

	id, err := w.StartShape(Shape)
	require.NoError(t, err)
	editing, ok := w.Editing()
	assert.True(t, ok)
	assert.Equal(t, id, editing)

	_, err = w.StartShape(Window)
	assert.True(t, errors.Is(err, ErrAlreadyEditing))

	for _, p := range rect(0, 0, 4, 4) {
		require.NoError(t, w.AddPoint(p.X, p.Y))
	}
	finished, err := w.FinishShape()
	require.NoError(t, err)
	assert.Equal(t, id, finished)
	_, ok = w.Editing()
	assert.False(t, ok)

	poly, err := w.Polygon(id)
	require.NoError(t, err)
	assert.Equal(t, 4, poly.Len())
	assert.Equal(t, DefaultColors[Shape], poly.Color)
}

func TestFinishShape_Degenerate(t *testing.T) {
	w := New()
	first := draw(t, w, Shape, rect(0, 0, 1, 1)...)

	id, err := w.StartShape(Shape)
	require.NoError(t, err)
	require.NoError(t, w.AddPoint(0, 0))
	require.NoError(t, w.AddPoint(1, 0))
	_, err = w.FinishShape()
	assert.True(t, errors.Is(err, ErrDegenerateShape))

	_, err = w.Polygon(id)
	assert.True(t, errors.Is(err, ErrUnknownPolygon))
	assert.Len(t, w.Polygons(Shape), 1)
	current, ok := w.Current(Shape)
	assert.True(t, ok)
	assert.Equal(t, first, current, "selection falls back to the previous shape")
}

func TestSelection(t *testing.T) {
	w := New()
	_, ok := w.Current(Shape)
	assert.False(t, ok)
	assert.False(t, w.DeleteCurrent(Shape))

	a := draw(t, w, Shape, rect(0, 0, 1, 1)...)
	b := draw(t, w, Shape, rect(2, 2, 3, 3)...)
	win := draw(t, w, Window, rect(0, 0, 5, 5)...)

	current, _ := w.Current(Shape)
	assert.Equal(t, b, current)
	current, _ = w.Current(Window)
	assert.Equal(t, win, current)

	require.NoError(t, w.Select(a))
	current, _ = w.Current(Shape)
	assert.Equal(t, a, current)

	assert.True(t, errors.Is(w.Select(ID(999)), ErrUnknownPolygon))

	assert.True(t, w.DeleteCurrent(Shape))
	assert.Equal(t, []ID{b}, w.IDs(Shape))
	current, _ = w.Current(Shape)
	assert.Equal(t, b, current)

	assert.True(t, w.DeleteCurrent(Shape))
	_, ok = w.Current(Shape)
	assert.False(t, ok)
	assert.Equal(t, []ID{win}, w.IDs(Window))

	t.Run("deleting the open edit", func(t *testing.T) {
		_, err := w.StartShape(Shape)
		require.NoError(t, err)
		assert.True(t, w.DeleteCurrent(Shape))
		_, ok := w.Editing()
		assert.False(t, ok)
		assert.True(t, errors.Is(w.AddPoint(0, 0), ErrNotEditing))
	})
}

func TestBoundaryEdits(t *testing.T) {
	w := New()
	id := draw(t, w, Shape, rect(0, 0, 4, 4)...)
	poly, _ := w.Polygon(id)

	require.NoError(t, w.Subdivide(id))
	assert.Equal(t, 8, poly.Len())
	require.NoError(t, w.Fractalize(id))
	assert.Equal(t, 16, poly.Len())

	require.NoError(t, w.Translate(id, geom.Vector{X: 1, Y: 2}))
	require.NoError(t, w.Translate(id, geom.Vector{X: 1, Y: 0}))
	assert.Equal(t, geom.Vector{X: 2, Y: 2}, poly.Translation)

	magenta := color.RGBA{R: 255, B: 255, A: 255}
	require.NoError(t, w.SetColor(id, magenta))
	assert.Equal(t, magenta, poly.Color)

	require.NoError(t, w.Clear(id))
	assert.Equal(t, 0, poly.Len())

	for _, err := range []error{
		w.Clear(ID(42)),
		w.Subdivide(ID(42)),
		w.Fractalize(ID(42)),
		w.Translate(ID(42), geom.Vector{}),
		w.SetColor(ID(42), magenta),
	} {
		assert.True(t, errors.Is(err, ErrUnknownPolygon), "%v", err)
	}
}

func TestUpdate(t *testing.T) {
	w := New()
	draw(t, w, Shape, rect(0, 0, 10, 10)...)
	draw(t, w, Window, rect(5, 5, 15, 15)...)
	w.Update()

	assert.Len(t, w.Polygons(Triangle), 2)
	assert.InDelta(t, 100, totalArea(w.Polygons(Triangle)), geom.Tolerance)

	// One triangle only touches the shape at (10, 10)
	results := w.Polygons(Result)
	require.Len(t, results, 1)
	assert.InDelta(t, 25, results[0].Area(), geom.Tolerance)
	assert.Equal(t, DefaultColors[Result], results[0].Color)

	boxes := w.Polygons(Box)
	require.Len(t, boxes, 1)
	min, max, ok := boxes[0].Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, min)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, max)
	assert.Equal(t, DefaultColors[Box], boxes[0].Color)

	t.Run("rebuilds rather than accumulates", func(t *testing.T) {
		w.Update()
		assert.Len(t, w.Polygons(Triangle), 2)
		assert.Len(t, w.Polygons(Result), 1)
		assert.Len(t, w.Polygons(Box), 1)
	})

	t.Run("translation", func(t *testing.T) {
		shapes := w.IDs(Shape)
		require.NoError(t, w.Translate(shapes[0], geom.Vector{X: 5, Y: 5}))
		w.Update()
		assert.InDelta(t, 100, totalArea(w.Polygons(Result)), 1e-9)
	})
}

func TestUpdate_ConcaveWindow(t *testing.T) {
	w := New()
	draw(t, w, Shape, rect(-100, -100, 100, 100)...)
	draw(t, w, Shape, rect(200, 200, 300, 300)...)
	draw(t, w, Window,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 5, Y: 10},
		geom.Point{X: 10, Y: 0},
		geom.Point{X: 5, Y: 20},
	)
	w.Update()

	// The far shape misses the window entirely
	assert.Len(t, w.Polygons(Result), 2)
	assert.InDelta(t, 50, totalArea(w.Polygons(Result)), 1e-9)
	assert.Len(t, w.Polygons(Box), 2)
}

func TestUpdate_SkipsOpenEdit(t *testing.T) {
	w := New()
	draw(t, w, Window, rect(0, 0, 10, 10)...)
	_, err := w.StartShape(Shape)
	require.NoError(t, err)
	for _, p := range rect(0, 0, 5, 5) {
		require.NoError(t, w.AddPoint(p.X, p.Y))
	}
	w.Update()
	assert.Empty(t, w.Polygons(Result))

	_, err = w.FinishShape()
	require.NoError(t, err)
	w.Update()
	assert.InDelta(t, 25, totalArea(w.Polygons(Result)), 1e-9)
}

func TestFill(t *testing.T) {
	w := New()
	assert.Empty(t, w.Fill())

	draw(t, w, Shape, rect(0, 0, 100, 100)...)
	draw(t, w, Window, rect(10, 10, 20, 20)...)
	w.Update()

	spans := w.Fill()
	require.NotEmpty(t, spans)
	for _, span := range spans {
		assert.GreaterOrEqual(t, span.Y, 10.0)
		assert.Less(t, span.Y, 20.0)
		assert.GreaterOrEqual(t, span.X0, 10.0)
		assert.LessOrEqual(t, span.X1, 20.0)
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "window", Window.String())
	assert.True(t, Shape.Editable())
	assert.False(t, Box.Editable())

	w := New()
	id := draw(t, w, Window, rect(0, 0, 1, 1)...)
	kind, err := w.Kind(id)
	require.NoError(t, err)
	assert.Equal(t, Window, kind)
	assert.Contains(t, w.String(), "window")
}
