package render

import (
	"errors"
	"fmt"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

var errDiskFull = errors.New("disk full")

type textRun struct {
	At   layout.Point
	Text string
	Bold bool
	Size float64
}

type fakeSurface struct {
	doc        *fakeDocument
	Size       api.PageSize
	Rotation   int
	Transforms []layout.Matrix
	Lines      [][2]layout.Point
	Texts      []textRun
	Closed     int
	// ops records the order of primitive calls
	ops []string

	bold bool
	size float64
}

func (s *fakeSurface) live() error {
	if s.Closed > 0 {
		return fmt.Errorf("surface closed")
	}
	if s.doc.failAfter != 0 && len(s.ops) >= s.doc.failAfter {
		return errDiskFull
	}
	return nil
}

func (s *fakeSurface) SetFont(font api.Font, bold bool, size float64) error {
	if err := s.live(); err != nil {
		return err
	}
	s.ops = append(s.ops, "font")
	s.bold, s.size = bold, size
	return nil
}

func (s *fakeSurface) Line(from, to layout.Point) error {
	if err := s.live(); err != nil {
		return err
	}
	s.ops = append(s.ops, "line")
	s.Lines = append(s.Lines, [2]layout.Point{from, to})
	return nil
}

func (s *fakeSurface) Text(at layout.Point, text string) error {
	if err := s.live(); err != nil {
		return err
	}
	s.ops = append(s.ops, "text")
	s.Texts = append(s.Texts, textRun{At: at, Text: text, Bold: s.bold, Size: s.size})
	return nil
}

func (s *fakeSurface) Transform(m layout.Matrix) error {
	if err := s.live(); err != nil {
		return err
	}
	s.ops = append(s.ops, "transform")
	s.Transforms = append(s.Transforms, m)
	return nil
}

func (s *fakeSurface) Close() error {
	s.Closed++
	return s.doc.closeErr
}

func (s *fakeSurface) texts() []string {
	var out []string
	for _, t := range s.Texts {
		out = append(out, t.Text)
	}
	return out
}

type fakeDocument struct {
	Pages   []*fakeSurface
	Saved   []string
	Closed  int
	saveErr error
	pageErr error
	// closeErr is returned by every surface Close
	closeErr error
	// failAfter makes primitives fail once a surface has recorded this many ops;
	// a negative value fails every primitive
	failAfter int
}

func (d *fakeDocument) AddPage(size api.PageSize, rotation int) (Surface, error) {
	if d.pageErr != nil {
		return nil, d.pageErr
	}
	s := &fakeSurface{doc: d, Size: size, Rotation: rotation}
	d.Pages = append(d.Pages, s)
	return s, nil
}

func (d *fakeDocument) Extension() string { return ".pdf" }

func (d *fakeDocument) Save(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.Saved = append(d.Saved, path)
	return nil
}

func (d *fakeDocument) Close() error {
	d.Closed++
	return nil
}

var fakeFonts = layout.FontMetricsFunc(func(api.Font) (float64, error) { return 1000, nil })
