package svg

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
	"github.com/flanksource/tablepdf/render"
)

type fixedFonts struct{}

func (fixedFonts) BoundingBoxHeight(api.Font) (float64, error) { return 1156, nil }

func expenses(rows int) api.Table {
	t := api.NewTable(
		api.Column{Name: "Date", Width: 90},
		api.Column{Name: "Description", Width: 200},
		api.Column{Name: "Amount", Width: 70},
	)
	for i := 0; i < rows; i++ {
		t.AddRow("2024-03-01", fmt.Sprintf("fish & chips #%d", i), 7.5)
	}
	return t
}

var report = api.Report{From: "2024-03-01", To: "2024-03-31", Sum: 97.5}

func generate(t *testing.T, table api.Table) string {
	t.Helper()
	d := render.Driver{NewDocument: NewDocument, Fonts: fixedFonts{}}
	out := filepath.Join(t.TempDir(), "preview")
	require.NoError(t, d.Generate(table, report, out))
	return out + Extension
}

type svgFile struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Texts  []struct {
		X     int    `xml:"x,attr"`
		Y     int    `xml:"y,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
	Lines []struct {
		X1 int `xml:"x1,attr"`
		Y1 int `xml:"y1,attr"`
	} `xml:"line"`
}

func parse(t *testing.T, path string) svgFile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var f svgFile
	require.NoError(t, xml.Unmarshal(data, &f), string(data))
	return f
}

func TestSinglePagePreview(t *testing.T) {
	path := generate(t, expenses(3))
	f := parse(t, path)

	assert.Equal(t, "595pt", f.Width)
	assert.Equal(t, "842pt", f.Height)
	// caption, 3 headers, 3 rows of 3 cells, summary
	require.Len(t, f.Texts, 1+3+9+1)
	assert.Equal(t, "Expenses Report [ 2024-03-01 - 2024-03-31 ]", f.Texts[0].Value)
	// the 20pt margin plus the 20pt caption band, less the 15pt rise: 25pt from the top edge
	assert.Equal(t, 200, f.Texts[0].X)
	assert.Equal(t, 250, f.Texts[0].Y)
	assert.Equal(t, "fish & chips #0", f.Texts[5].Value)
	assert.Equal(t, "Summary is: 97.50 ILS", f.Texts[len(f.Texts)-1].Value)
	// 5 row lines and 4 column lines
	assert.Len(t, f.Lines, 5+4)
}

func TestLandscapePreviewIsShownUpright(t *testing.T) {
	table := expenses(30)
	table.Orientation = api.Landscape
	path := generate(t, table)

	files := Files(path, 2)
	assert.NoFileExists(t, path)
	for _, file := range files {
		require.FileExists(t, file)
	}

	f := parse(t, files[0])
	assert.Equal(t, "842pt", f.Width)
	assert.Equal(t, "595pt", f.Height)
	// the rotation into the media box and the viewer's /Rotate cancel out
	assert.Equal(t, 200, f.Texts[0].X)
	assert.Equal(t, 250, f.Texts[0].Y)
}

func TestFiles(t *testing.T) {
	assert.Equal(t, []string{"out/r.svg"}, Files("out/r.svg", 0))
	assert.Equal(t, []string{"out/r.svg"}, Files("out/r.svg", 1))
	assert.Equal(t, []string{"out/r-p1.svg", "out/r-p2.svg", "out/r-p3.svg"}, Files("out/r.svg", 3))
}

func TestZeroRowsWritesBlankPage(t *testing.T) {
	path := generate(t, expenses(0))
	f := parse(t, path)
	assert.Empty(t, f.Texts)
}

func TestViewMatrices(t *testing.T) {
	size := api.PageSize{Width: 100, Height: 200}
	for _, tt := range []struct {
		rotation int
		w, h     float64
		// where the media box's bottom-left corner ends up
		corner layout.Point
	}{
		{0, 100, 200, layout.Point{X: 0, Y: 0}},
		{90, 200, 100, layout.Point{X: 0, Y: 100}},
		{180, 100, 200, layout.Point{X: 100, Y: 200}},
		{270, 200, 100, layout.Point{X: 200, Y: 0}},
		{-90, 200, 100, layout.Point{X: 200, Y: 0}},
	} {
		m, w, h, err := view(size, tt.rotation)
		require.NoError(t, err)
		assert.Equal(t, tt.w, w, tt.rotation)
		assert.Equal(t, tt.h, h, tt.rotation)
		assert.Equal(t, tt.corner, m.Apply(layout.Point{}), tt.rotation)
	}

	_, _, _, err := view(size, 45)
	assert.Error(t, err)
}

func TestSurfaceAfterClose(t *testing.T) {
	doc, err := NewDocument()
	require.NoError(t, err)
	s, err := doc.AddPage(api.A4, 0)
	require.NoError(t, err)

	_, err = doc.AddPage(api.A4, 0)
	assert.Error(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Line(layout.Point{}, layout.Point{X: 1}), errClosed)

	require.NoError(t, doc.Close())
	_, err = doc.AddPage(api.A4, 0)
	assert.ErrorIs(t, err, errClosed)
}
