// Package svg renders report pages as SVG previews. Each page is shown the way a PDF
// viewer would show it, with the page's display rotation already applied.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
	"github.com/flanksource/tablepdf/render"
)

const Extension = ".svg"

// scale is the number of SVG user units per point; svgo only writes integer coordinates.
const scale = 10

// lineWidth matches the default PDF line width of 0.2mm
const lineWidth = 0.567

var errClosed = errors.New("already closed")

type page struct {
	width, height float64
	buf           bytes.Buffer
}

// Document is a render.Document that produces one SVG per page.
type Document struct {
	pages  []*page
	open   *surface
	closed bool
}

func NewDocument() (render.Document, error) {
	return &Document{}, nil
}

func (d *Document) Extension() string {
	return Extension
}

// view maps the unrotated media box onto the page as displayed with the given
// clockwise rotation, returning the displayed width and height.
func view(size api.PageSize, rotation int) (layout.Matrix, float64, float64, error) {
	w, h := size.Width, size.Height
	switch ((rotation % 360) + 360) % 360 {
	case 0:
		return layout.Identity(), w, h, nil
	case 90:
		return layout.Matrix{A: 0, B: -1, C: 1, D: 0, E: 0, F: w}, h, w, nil
	case 180:
		return layout.Matrix{A: -1, B: 0, C: 0, D: -1, E: w, F: h}, w, h, nil
	case 270:
		return layout.Matrix{A: 0, B: 1, C: -1, D: 0, E: h, F: 0}, h, w, nil
	}
	return layout.Matrix{}, 0, 0, fmt.Errorf("rotation %d is not a multiple of 90", rotation)
}

func (d *Document) AddPage(size api.PageSize, rotation int) (render.Surface, error) {
	if d.closed {
		return nil, errClosed
	}
	if d.open != nil {
		return nil, fmt.Errorf("page %d is still open", len(d.pages))
	}
	ctm, w, h, err := view(size, rotation)
	if err != nil {
		return nil, err
	}
	p := &page{width: w, height: h}
	d.pages = append(d.pages, p)

	canvas := svgo.New(&p.buf)
	canvas.StartviewUnit(int(math.Round(w)), int(math.Round(h)), "pt", 0, 0, units(w), units(h))
	canvas.Title(fmt.Sprintf("page %d", len(d.pages)))
	canvas.Rect(0, 0, units(w), units(h), "fill:white")

	d.open = &surface{doc: d, page: p, canvas: canvas, ctm: ctm, font: api.Helvetica, size: api.DefaultFontSize}
	return d.open, nil
}

// Files returns the file each page is written to by Save
func Files(path string, pages int) []string {
	if pages <= 1 {
		return []string{path}
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	files := make([]string, pages)
	for i := range files {
		files[i] = fmt.Sprintf("%s-p%d%s", base, i+1, Extension)
	}
	return files
}

// Save writes a single page to path, or every page to path-pN.svg. A document with
// no pages is saved as one blank A4 page.
func (d *Document) Save(path string) error {
	if d.closed {
		return errClosed
	}
	if d.open != nil {
		return fmt.Errorf("page %d is still open", len(d.pages))
	}
	pages := d.pages
	if len(pages) == 0 {
		blank := &page{width: api.A4.Width, height: api.A4.Height}
		canvas := svgo.New(&blank.buf)
		canvas.StartviewUnit(int(math.Round(blank.width)), int(math.Round(blank.height)), "pt", 0, 0, units(blank.width), units(blank.height))
		canvas.End()
		pages = []*page{blank}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	for i, file := range Files(path, len(pages)) {
		if err := os.WriteFile(file, pages[i].buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) Close() error {
	d.closed = true
	d.open = nil
	d.pages = nil
	return nil
}

func units(pt float64) int {
	return int(math.Round(pt * scale))
}

type surface struct {
	doc    *Document
	page   *page
	canvas *svgo.SVG
	// ctm maps user space onto the displayed page, y up
	ctm    layout.Matrix
	font   api.Font
	bold   bool
	size   float64
	closed bool
}

func (s *surface) check() error {
	if s.closed || s.doc.closed {
		return errClosed
	}
	return nil
}

// project maps a user space point to SVG units, where y grows downwards
func (s *surface) project(p layout.Point) (int, int) {
	q := s.ctm.Apply(p)
	return units(q.X), units(s.page.height - q.Y)
}

func (s *surface) SetFont(f api.Font, bold bool, size float64) error {
	if err := s.check(); err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("invalid font size %g", size)
	}
	s.font, s.bold, s.size = f, bold, size
	return nil
}

func (s *surface) Line(from, to layout.Point) error {
	if err := s.check(); err != nil {
		return err
	}
	x1, y1 := s.project(from)
	x2, y2 := s.project(to)
	s.canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:black;stroke-width:%g", lineWidth*scale))
	return nil
}

func (s *surface) Text(at layout.Point, text string) error {
	if err := s.check(); err != nil {
		return err
	}
	x, y := s.project(at)
	attrs := []string{s.textStyle()}
	// PDF angles run counter-clockwise with y up, SVG ones clockwise with y down
	if angle := math.Atan2(s.ctm.B, s.ctm.A) * 180 / math.Pi; math.Abs(angle) > 1e-9 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, -angle, x, y))
	}
	s.canvas.Text(x, y, text, attrs...)
	return nil
}

func (s *surface) textStyle() string {
	style := fmt.Sprintf("font-family:%s;font-size:%gpx", cssFamily(s.font), s.size*scale)
	if s.bold {
		style += ";font-weight:bold"
	}
	return style
}

func cssFamily(f api.Font) string {
	if f.IsTrueType() {
		return fmt.Sprintf("'%s'", strings.TrimSuffix(filepath.Base(f.File), filepath.Ext(f.File)))
	}
	switch strings.ToLower(f.Family) {
	case "times", "times-roman", "times new roman":
		return "Times,serif"
	case "courier", "courier new":
		return "Courier,monospace"
	default:
		return "Helvetica,Arial,sans-serif"
	}
}

// Transform concatenates m in front of the current matrix, as the PDF cm operator does
func (s *surface) Transform(m layout.Matrix) error {
	if err := s.check(); err != nil {
		return err
	}
	s.ctm = m.Multiply(s.ctm)
	return nil
}

func (s *surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.doc.open == s {
		s.doc.open = nil
	}
	if s.doc.closed {
		return errClosed
	}
	s.canvas.End()
	return nil
}
