package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/samber/lo"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
	"github.com/flanksource/tablepdf/render"
)

const Extension = ".pdf"

var errClosed = errors.New("already closed")

// Document is a render.Document backed by fpdf, working in PDF points.
type Document struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	fonts     map[string]bool
	rotations map[int][]string
	pages     int
	open      *surface
	closed    bool
}

// NewDocument creates an empty PDF document
func NewDocument() (render.Document, error) {
	return newDocument(), nil
}

func newDocument() *Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: api.A4.Width, Ht: api.A4.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCreator("tablepdf", true)
	return &Document{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		fonts:     map[string]bool{},
		rotations: map[int][]string{},
	}
}

func (d *Document) Extension() string {
	return Extension
}

func (d *Document) AddPage(size api.PageSize, rotation int) (render.Surface, error) {
	if d.closed {
		return nil, errClosed
	}
	if d.open != nil {
		return nil, fmt.Errorf("page %d is still open", d.pages)
	}
	if rotation%90 != 0 {
		return nil, fmt.Errorf("rotation %d is not a multiple of 90", rotation)
	}
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})
	d.pages++
	if rotation != 0 {
		d.rotations[rotation] = append(d.rotations[rotation], strconv.Itoa(d.pages))
	}
	// every page's drawing lives in its own graphics state so its transform cannot leak
	d.pdf.TransformBegin()
	if err := d.pdf.Error(); err != nil {
		return nil, err
	}
	d.open = &surface{doc: d, height: size.Height}
	return d.open, nil
}

// Save writes the document, applying page rotations that fpdf cannot express.
func (d *Document) Save(path string) error {
	if d.closed {
		return errClosed
	}
	if d.open != nil {
		return fmt.Errorf("page %d is still open", d.pages)
	}
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return err
	}
	data := buf.Bytes()
	for _, rotation := range lo.Keys(d.rotations) {
		rotated, err := Rotate(data, rotation, d.rotations[rotation])
		if err != nil {
			return err
		}
		data = rotated
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.open = nil
	d.pdf = nil
	return nil
}

func (d *Document) setFont(f api.Font, bold bool, size float64) error {
	style := lo.Ternary(bold, "B", "")
	if !f.IsTrueType() {
		d.pdf.SetFont(coreFamily(f.Family), style, size)
		return d.pdf.Error()
	}

	family := "tt-" + strings.TrimSuffix(filepath.Base(f.File), filepath.Ext(f.File))
	key := family + style
	if !d.fonts[key] {
		file := f.File
		if bold && f.BoldFile != "" {
			file = f.BoldFile
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		d.pdf.AddUTF8FontFromBytes(family, style, data)
		d.fonts[key] = true
	}
	d.pdf.SetFont(family, style, size)
	return d.pdf.Error()
}

// surface draws into the current fpdf page. fpdf measures y from the top edge, PDF user
// space from the bottom, so every y is flipped against the media box height.
type surface struct {
	doc      *Document
	height   float64
	trueType bool
	closed   bool
}

func (s *surface) check() error {
	if s.closed || s.doc.pdf == nil {
		return errClosed
	}
	return s.doc.pdf.Error()
}

func (s *surface) SetFont(f api.Font, bold bool, size float64) error {
	if err := s.check(); err != nil {
		return err
	}
	s.trueType = f.IsTrueType()
	return s.doc.setFont(f, bold, size)
}

func (s *surface) Line(from, to layout.Point) error {
	if err := s.check(); err != nil {
		return err
	}
	s.doc.pdf.Line(from.X, s.height-from.Y, to.X, s.height-to.Y)
	return s.doc.pdf.Error()
}

func (s *surface) Text(at layout.Point, text string) error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.trueType {
		text = s.doc.translate(text)
	}
	s.doc.pdf.Text(at.X, s.height-at.Y, text)
	return s.doc.pdf.Error()
}

func (s *surface) Transform(m layout.Matrix) error {
	if err := s.check(); err != nil {
		return err
	}
	s.doc.pdf.Transform(fpdf.TransformMatrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
	return s.doc.pdf.Error()
}

func (s *surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.doc.open = nil
	if s.doc.pdf == nil {
		return errClosed
	}
	s.doc.pdf.TransformEnd()
	return s.doc.pdf.Error()
}
