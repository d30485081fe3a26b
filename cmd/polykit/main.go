// Command polykit clips, fills and triangulates polygons from the command
// line.
//
// Polygons are read from SVG files (every <polygon> element) or from text
// files of newline separated "x y" points, with an extra newline between
// polygons. A path of "-" reads text from stdin.
//
//	polykit render --shapes shapes.svg --windows windows.txt --out out.png
//	polykit triangulate < polygon.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polykit"
	"github.com/osuushi/polykit/geom"
	"github.com/osuushi/polykit/render"
	"github.com/osuushi/polykit/svgin"
	"github.com/osuushi/polykit/workspace"
)

const canvasPadding = 10

type renderOptions struct {
	shapes, windows, out string
	snap                 bool
	subdivide            int
	fractalize           int
	preview              bool
}

var (
	app     = kingpin.New("polykit", "Clip, fill and triangulate polygons.")
	verbose = app.Flag("verbose", "Log degenerate cases to stderr.").Short('v').Bool()

	renderCmd  = app.Command("render", "Clip every shape against every window and draw the filled result as a PNG.")
	renderOpts = renderOptions{}

	triangulateCmd      = app.Command("triangulate", "Triangulate polygons and print the triangles as text.")
	triangulateInput    = triangulateCmd.Arg("file", "Polygon file, or - for stdin.").Default("-").String()
	triangulateMonotone = triangulateCmd.Flag("monotone", "Use the single sweep triangulator. Every polygon must be y-monotone.").Bool()
)

func init() {
	renderCmd.Flag("shapes", "Shapes to clip.").Required().StringVar(&renderOpts.shapes)
	renderCmd.Flag("windows", "Clip windows. Concave windows are triangulated first.").Required().StringVar(&renderOpts.windows)
	renderCmd.Flag("out", "PNG to write.").Default("polykit.png").StringVar(&renderOpts.out)
	renderCmd.Flag("snap", "Round clipped vertices to whole pixels.").BoolVar(&renderOpts.snap)
	renderCmd.Flag("subdivide", "Subdivide every shape this many times before clipping.").Default("0").IntVar(&renderOpts.subdivide)
	renderCmd.Flag("fractalize", "Fractalize every shape this many times before clipping.").Default("0").IntVar(&renderOpts.fractalize)
	renderCmd.Flag("preview", "Print the PNG inline in the terminal.").BoolVar(&renderOpts.preview)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		polykit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case renderCmd.FullCommand():
		err = runRender(renderOpts, os.Stdout)
	case triangulateCmd.FullCommand():
		err = runTriangulate(*triangulateInput, *triangulateMonotone, os.Stdin, os.Stdout)
	}
	app.FatalIfError(err, command)
}

func runRender(opts renderOptions, stdout io.Writer) error {
	shapes, err := loadPolygons(opts.shapes, nil)
	if err != nil {
		return err
	}
	windows, err := loadPolygons(opts.windows, nil)
	if err != nil {
		return err
	}

	ws := workspace.New()
	ws.Clipper.Snap = opts.snap
	if err := addAll(ws, workspace.Shape, shapes); err != nil {
		return err
	}
	if err := addAll(ws, workspace.Window, windows); err != nil {
		return err
	}
	for _, id := range ws.IDs(workspace.Shape) {
		for i := 0; i < opts.subdivide; i++ {
			if err := ws.Subdivide(id); err != nil {
				return err
			}
		}
		for i := 0; i < opts.fractalize; i++ {
			if err := ws.Fractalize(id); err != nil {
				return err
			}
		}
	}
	ws.Update()

	width, height := canvasSize(ws)
	cv := render.NewCanvas(width, height)
	for _, result := range ws.Polygons(workspace.Result) {
		spans, err := polykit.Fill(result)
		if err != nil {
			return err
		}
		cv.DrawSpans(spans, result.Color)
	}
	cv.DrawTriangles(ws.Polygons(workspace.Triangle))
	for _, kind := range []workspace.Kind{workspace.Box, workspace.Shape, workspace.Window} {
		for _, poly := range ws.Polygons(kind) {
			cv.DrawOutline(poly)
		}
	}

	if err := cv.SavePNG(opts.out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d results to %s\n", len(ws.Polygons(workspace.Result)), opts.out)

	if opts.preview {
		return render.Preview(opts.out, stdout)
	}
	return nil
}

func runTriangulate(path string, useMonotone bool, stdin io.Reader, stdout io.Writer) error {
	polygons, err := loadPolygons(path, stdin)
	if err != nil {
		return err
	}
	triangulate := polykit.Triangulate
	if useMonotone {
		triangulate = polykit.TriangulateMonotone
	}
	for _, poly := range polygons {
		triangles, err := triangulate(poly)
		if err != nil {
			return err
		}
		for _, tri := range triangles {
			for _, p := range tri.Points() {
				fmt.Fprintf(stdout, "%g %g\n", p.X, p.Y)
			}
			fmt.Fprintln(stdout)
		}
	}
	return nil
}

func loadPolygons(path string, stdin io.Reader) ([]*geom.Polygon, error) {
	if path == "-" {
		if stdin == nil {
			return nil, errors.New("stdin is not available here")
		}
		return svgin.ReadText(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening polygons")
	}
	defer f.Close()

	var polygons []*geom.Polygon
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		polygons, err = svgin.ReadSVG(f)
	} else {
		polygons, err = svgin.ReadText(f)
	}
	return polygons, errors.Wrapf(err, "reading %s", path)
}

// Polygons go through the workspace's own editing calls, so the degenerate
// shape rule applies to files too.
func addAll(ws *workspace.Workspace, kind workspace.Kind, polygons []*geom.Polygon) error {
	for _, poly := range polygons {
		if _, err := ws.StartShape(kind); err != nil {
			return err
		}
		for _, p := range poly.Absolute() {
			if err := ws.AddPoint(p.X, p.Y); err != nil {
				return err
			}
		}
		id, err := ws.FinishShape()
		if errors.Is(err, workspace.ErrDegenerateShape) {
			fmt.Fprintf(os.Stderr, "skipping %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		if poly.Color.A != 0 {
			if err := ws.SetColor(id, poly.Color); err != nil {
				return err
			}
		}
	}
	return nil
}

// Big enough for every shape and window, plus padding.
func canvasSize(ws *workspace.Workspace) (width, height int) {
	maxX, maxY := 0.0, 0.0
	for _, kind := range []workspace.Kind{workspace.Shape, workspace.Window} {
		for _, poly := range ws.Polygons(kind) {
			for _, p := range poly.Absolute() {
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	return int(math.Ceil(maxX)) + canvasPadding, int(math.Ceil(maxY)) + canvasPadding
}
