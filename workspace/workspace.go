// Package workspace holds the polygons of an editing session and runs the
// clip, fill and triangulate pipeline over them.
//
// Shapes and windows are drawn by the user. Everything else is derived by
// Update: the triangles of every window, the result of clipping every shape
// against each of those triangles, and a bounding box per result.
package workspace

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"

	"github.com/osuushi/polykit/clip"
	"github.com/osuushi/polykit/earclip"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/internal/trace"
	"github.com/osuushi/polykit/scanfill"
)

var (
	ErrNotEditing      = errors.New("no shape is being edited")
	ErrAlreadyEditing  = errors.New("a shape is already being edited")
	ErrDegenerateShape = errors.New("shape has fewer than 3 vertices")
	ErrUnknownPolygon  = errors.New("unknown polygon")
	ErrWrongKind       = errors.New("wrong kind of polygon")
)

type ID int

type Kind int

const (
	Shape Kind = iota
	Window
	Result
	Box
	Triangle
)

func (k Kind) String() string {
	switch k {
	case Shape:
		return "shape"
	case Window:
		return "window"
	case Result:
		return "result"
	case Box:
		return "box"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Only shapes and windows are drawn by hand. The other kinds are rebuilt by
// every Update.
func (k Kind) Editable() bool {
	return k == Shape || k == Window
}

var DefaultColors = map[Kind]color.RGBA{
	Shape:    {R: 255, A: 255},
	Window:   {B: 255, A: 255},
	Result:   {G: 255, A: 255},
	Box:      {R: 255, G: 255, A: 255},
	Triangle: {B: 255, A: 255},
}

type entry struct {
	kind    Kind
	polygon *geom.Polygon
}

// A Workspace is not safe for concurrent use.
type Workspace struct {
	// Used for every clip in Update.
	Clipper clip.Clipper

	entries map[ID]*entry
	// Creation order, for stable listings
	order   []ID
	lastID  ID
	editing ID
	current map[Kind]ID
}

func New() *Workspace {
	return &Workspace{
		entries: make(map[ID]*entry),
		current: make(map[Kind]ID),
	}
}

// StartShape opens a new, empty shape or window for editing and selects it.
// Points are added with AddPoint, and the edit is closed with FinishShape.
func (w *Workspace) StartShape(kind Kind) (ID, error) {
	if !kind.Editable() {
		return 0, errors.Wrapf(ErrWrongKind, "cannot draw a %s", kind)
	}
	if w.editing != 0 {
		return 0, errors.Wrapf(ErrAlreadyEditing, "%s %d", w.entries[w.editing].kind, w.editing)
	}
	poly := geom.NewPolygon()
	poly.Color = DefaultColors[kind]
	id := w.add(kind, poly)
	w.editing = id
	w.current[kind] = id
	return id, nil
}

func (w *Workspace) AddPoint(x, y float64) error {
	if w.editing == 0 {
		return ErrNotEditing
	}
	w.entries[w.editing].polygon.AddPoint(geom.Point{X: x, Y: y})
	return nil
}

// Editing reports the polygon currently being drawn, if any.
func (w *Workspace) Editing() (ID, bool) {
	return w.editing, w.editing != 0
}

// FinishShape closes the current edit. A shape with fewer than three vertices
// can't bound anything, so it is discarded and ErrDegenerateShape returned.
func (w *Workspace) FinishShape() (ID, error) {
	id := w.editing
	if id == 0 {
		return 0, ErrNotEditing
	}
	w.editing = 0

	e := w.entries[id]
	if n := e.polygon.Len(); n < 3 {
		trace.Logger().Debug("discarding degenerate shape",
			"kind", e.kind.String(),
			"id", int(id),
			"vertices", n,
		)
		w.remove(id)
		return 0, errors.Wrapf(ErrDegenerateShape, "%s %d has %d", e.kind, id, n)
	}
	return id, nil
}

// Current returns the selected polygon of an editable kind.
func (w *Workspace) Current(kind Kind) (ID, bool) {
	id, ok := w.current[kind]
	return id, ok
}

func (w *Workspace) Select(id ID) error {
	e, err := w.lookup(id)
	if err != nil {
		return err
	}
	if !e.kind.Editable() {
		return errors.Wrapf(ErrWrongKind, "cannot select %s %d", e.kind, id)
	}
	w.current[e.kind] = id
	return nil
}

// DeleteCurrent removes the selected polygon of the given kind, and selects
// the most recently created one that is left. It reports whether anything was
// deleted.
func (w *Workspace) DeleteCurrent(kind Kind) bool {
	id, ok := w.current[kind]
	if !ok {
		return false
	}
	if w.editing == id {
		w.editing = 0
	}
	w.remove(id)
	return true
}

// Polygon returns the polygon with the given id. The polygon is shared with
// the workspace, not copied.
func (w *Workspace) Polygon(id ID) (*geom.Polygon, error) {
	e, err := w.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.polygon, nil
}

func (w *Workspace) Kind(id ID) (Kind, error) {
	e, err := w.lookup(id)
	if err != nil {
		return 0, err
	}
	return e.kind, nil
}

// IDs of every polygon of the kind, oldest first.
func (w *Workspace) IDs(kind Kind) []ID {
	var ids []ID
	for _, id := range w.order {
		if w.entries[id].kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// Polygons of the kind, oldest first.
func (w *Workspace) Polygons(kind Kind) []*geom.Polygon {
	var polys []*geom.Polygon
	for _, id := range w.IDs(kind) {
		polys = append(polys, w.entries[id].polygon)
	}
	return polys
}

// Boundary edits. These apply to any polygon, but derived polygons are
// replaced on the next Update.

func (w *Workspace) Clear(id ID) error {
	return w.edit(id, (*geom.Polygon).Clear)
}

func (w *Workspace) Subdivide(id ID) error {
	return w.edit(id, (*geom.Polygon).Subdivide)
}

func (w *Workspace) Fractalize(id ID) error {
	return w.edit(id, (*geom.Polygon).Fractalize)
}

func (w *Workspace) Translate(id ID, v geom.Vector) error {
	return w.edit(id, func(poly *geom.Polygon) {
		poly.Translation = poly.Translation.Add(v)
	})
}

func (w *Workspace) SetColor(id ID, c color.RGBA) error {
	return w.edit(id, func(poly *geom.Polygon) {
		poly.Color = c
	})
}

// Update rebuilds every derived polygon. Each window is triangulated, so
// concave windows clip correctly, and every finished shape is clipped against
// every triangle. Empty and zero area intersections are dropped, and each result gets a
// bounding box. An open edit takes no part.
func (w *Workspace) Update() {
	for _, kind := range []Kind{Triangle, Result, Box} {
		for _, id := range w.IDs(kind) {
			w.remove(id)
		}
	}

	var triangles []*geom.Polygon
	for _, id := range w.finished(Window) {
		for _, tri := range earclip.Triangulate(w.entries[id].polygon) {
			tri.Color = DefaultColors[Triangle]
			w.add(Triangle, tri)
			triangles = append(triangles, tri)
		}
	}

	results := 0
	for _, id := range w.finished(Shape) {
		shape := w.entries[id].polygon
		for _, tri := range triangles {
			result := w.Clipper.Clip(shape, tri)
			// Touching at a corner or along an edge leaves a zero area sliver
			if result.Len() < 3 || result.Area() < geom.Tolerance {
				continue
			}
			result.Color = DefaultColors[Result]
			w.add(Result, result)
			results++

			box := result.BoundingBox()
			box.Color = DefaultColors[Box]
			w.add(Box, box)
		}
	}

	trace.Logger().Debug("workspace updated",
		"triangles", len(triangles),
		"results", results,
	)
}

// Fill scan-converts every result polygon.
func (w *Workspace) Fill() []scanfill.Span {
	var spans []scanfill.Span
	for _, result := range w.Polygons(Result) {
		spans = append(spans, scanfill.Fill(result)...)
	}
	return spans
}

func (w *Workspace) String() string {
	s := "Workspace{"
	for i, id := range w.order {
		if i > 0 {
			s += ", "
		}
		e := w.entries[id]
		s += fmt.Sprintf("%s %d: %s", e.kind, id, e.polygon)
	}
	return s + "}"
}

func (w *Workspace) add(kind Kind, poly *geom.Polygon) ID {
	w.lastID++
	id := w.lastID
	w.entries[id] = &entry{kind: kind, polygon: poly}
	w.order = append(w.order, id)
	return id
}

func (w *Workspace) remove(id ID) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	delete(w.entries, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	if w.current[e.kind] == id {
		delete(w.current, e.kind)
		if remaining := w.IDs(e.kind); len(remaining) > 0 {
			w.current[e.kind] = remaining[len(remaining)-1]
		}
	}
}

func (w *Workspace) lookup(id ID) (*entry, error) {
	e, ok := w.entries[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPolygon, "id %d", id)
	}
	return e, nil
}

func (w *Workspace) edit(id ID, fn func(*geom.Polygon)) error {
	e, err := w.lookup(id)
	if err != nil {
		return err
	}
	fn(e.polygon)
	return nil
}

// Polygons of the kind that are not being edited.
func (w *Workspace) finished(kind Kind) []ID {
	var ids []ID
	for _, id := range w.IDs(kind) {
		if id != w.editing {
			ids = append(ids, id)
		}
	}
	return ids
}
