// Package render draws planned table pages onto a document through a small set of
// drawing primitives, so any backend that can draw lines and text can host a report.
package render

import (
	"fmt"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

// Surface is one page's content stream. It must be closed once drawing is done.
type Surface interface {
	SetFont(font api.Font, bold bool, size float64) error
	Line(from, to layout.Point) error
	Text(at layout.Point, text string) error
	// Transform concatenates m onto the current transformation matrix.
	Transform(m layout.Matrix) error
	Close() error
}

// Document owns pages and persists them.
type Document interface {
	// AddPage allocates a page with a portrait media box and a display rotation, appends
	// it to the document and opens its content stream.
	AddPage(size api.PageSize, rotation int) (Surface, error)
	// Extension is the canonical file extension, including the dot.
	Extension() string
	Save(path string) error
	Close() error
}

// Canvas is a surface whose coordinate frame has already been set up for content
// drawing. The only way to get one is EnterFrame, which applies the frame transform.
type Canvas struct {
	surface Surface
}

// EnterFrame applies the frame's transform to a freshly opened surface. Calling it a
// second time on the same surface would compose the rotation, so every page gets
// exactly one Canvas.
func EnterFrame(s Surface, frame layout.Frame) (*Canvas, error) {
	if !frame.Transform.IsIdentity() {
		if err := s.Transform(frame.Transform); err != nil {
			return nil, fmt.Errorf("apply %s: %w", frame.Transform, err)
		}
	}
	return &Canvas{surface: s}, nil
}

func (c *Canvas) HLine(y, x1, x2 float64) error {
	return c.surface.Line(layout.Point{X: x1, Y: y}, layout.Point{X: x2, Y: y})
}

func (c *Canvas) VLine(x, y1, y2 float64) error {
	return c.surface.Line(layout.Point{X: x, Y: y1}, layout.Point{X: x, Y: y2})
}

func (c *Canvas) Font(font api.Font, bold bool, size float64) error {
	return c.surface.SetFont(font, bold, size)
}

func (c *Canvas) Text(x, y float64, text string) error {
	return c.surface.Text(layout.Point{X: x, Y: y}, text)
}

// Row writes one cell per column anchor on baseline y and returns the baseline of the next row.
func (c *Canvas) Row(cells []string, xs []float64, y, rowHeight float64) (float64, error) {
	for i, x := range xs {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		if err := c.Text(x, y, text); err != nil {
			return y, err
		}
	}
	return layout.NextRow(y, rowHeight), nil
}
