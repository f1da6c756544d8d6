package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
	"github.com/flanksource/tablepdf/render"
)

func expenses(rows int) api.Table {
	t := api.NewTable(
		api.Column{Name: "Date", Width: 90},
		api.Column{Name: "Category", Width: 140},
		api.Column{Name: "Description", Width: 200},
		api.Column{Name: "Amount", Width: 70},
	)
	for i := 0; i < rows; i++ {
		t.AddRow(fmt.Sprintf("2024-03-%02d", i%28+1), "groceries", fmt.Sprintf("receipt #%d", i), 10.25*float64(i+1))
	}
	return t
}

var report = api.Report{From: "2024-03-01", To: "2024-03-31", Sum: 1234.5}

func generateFile(t *testing.T, table api.Table) string {
	t.Helper()
	d := render.Driver{NewDocument: NewDocument, Fonts: Fonts()}
	out := filepath.Join(t.TempDir(), "reports", "march")
	require.NoError(t, d.Generate(table, report, out))

	path := out + Extension
	require.FileExists(t, path)
	return path
}

func readPDF(t *testing.T, path string) *lpdf.Reader {
	t.Helper()
	f, r, err := lpdf.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return r
}

func pageText(t *testing.T, r *lpdf.Reader, n int) string {
	t.Helper()
	text, err := r.Page(n).GetPlainText(nil)
	require.NoError(t, err)
	return text
}

func TestPortraitDocument(t *testing.T) {
	// A4 portrait holds 39 rows per page
	path := generateFile(t, expenses(45))

	info, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Pages)
	assert.Greater(t, info.Size, 1000)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))

	r := readPDF(t, path)
	require.Equal(t, 2, r.NumPage())
	for n := 1; n <= 2; n++ {
		assert.Zero(t, r.Page(n).V.Key("Rotate").Int64())
	}

	first := pageText(t, r, 1)
	assert.Contains(t, first, "Expenses Report")
	assert.Contains(t, first, "receipt #0")
	assert.Contains(t, first, "receipt #38")
	assert.NotContains(t, first, "receipt #39")
	assert.Contains(t, pageText(t, r, 2), "receipt #44")
	assert.Contains(t, pageText(t, r, 2), "Summary is: 1234.50 ILS")
}

func TestLandscapeDocumentIsRotated(t *testing.T) {
	table := expenses(30)
	table.Orientation = api.Landscape
	path := generateFile(t, table)

	r := readPDF(t, path)
	// landscape A4 holds floor(555.28/20)-1 = 26 rows per page
	require.Equal(t, 2, r.NumPage())
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		assert.Equal(t, int64(90), page.V.Key("Rotate").Int64())
	}
	assert.Contains(t, pageText(t, r, 2), "receipt #29")
}

func TestZeroRowsStillSavesADocument(t *testing.T) {
	path := generateFile(t, expenses(0))
	_, err := InspectFile(path)
	require.NoError(t, err)
}

func TestSaveToUnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	d := render.Driver{NewDocument: NewDocument, Fonts: Fonts()}
	err := d.Generate(expenses(3), report, filepath.Join(blocker, "report"))

	var docErr *api.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "save", docErr.Op)
}

func TestSurfaceLifecycle(t *testing.T) {
	doc := newDocument()

	s, err := doc.AddPage(api.A4, 0)
	require.NoError(t, err)

	_, err = doc.AddPage(api.A4, 0)
	assert.Error(t, err, "a second page cannot open while the first is being drawn")

	require.NoError(t, s.SetFont(api.Helvetica, true, 12))
	require.NoError(t, s.Text(layout.Point{X: 20, Y: 800}, "Caption €"))
	require.NoError(t, s.Line(layout.Point{X: 20, Y: 780}, layout.Point{X: 300, Y: 780}))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "closing twice is harmless")

	assert.ErrorIs(t, s.Text(layout.Point{}, "late"), errClosed)

	_, err = doc.AddPage(api.A4, 45)
	assert.Error(t, err)

	require.NoError(t, doc.Close())
	_, err = doc.AddPage(api.A4, 0)
	assert.ErrorIs(t, err, errClosed)
	assert.ErrorIs(t, doc.Save(filepath.Join(t.TempDir(), "x.pdf")), errClosed)
}

func TestStandardFonts(t *testing.T) {
	fonts := Fonts()
	for family, want := range map[string]float64{
		"helvetica":      1156,
		"Helvetica":      1156,
		"arial":          1156,
		"Helvetica-Bold": 1190,
		"times":          1116,
		"courier":        1055,
	} {
		got, err := fonts.BoundingBoxHeight(api.Font{Family: family})
		require.NoError(t, err, family)
		assert.Equal(t, want, got, family)
	}

	_, err := fonts.BoundingBoxHeight(api.Font{Family: "comic sans"})
	assert.Error(t, err)
}

func TestTrueTypeMetrics(t *testing.T) {
	h, err := BoundingBoxHeight(goregular.TTF)
	require.NoError(t, err)
	assert.Greater(t, h, 500.0)
	assert.Less(t, h, 3000.0)

	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	fromFile, err := Fonts().BoundingBoxHeight(api.Font{File: path})
	require.NoError(t, err)
	assert.Equal(t, h, fromFile)

	_, err = BoundingBoxHeight([]byte("not a font"))
	assert.Error(t, err)
}

func TestTrueTypeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	table := expenses(5)
	table.Font = api.Font{File: path}
	out := generateFile(t, table)

	info, err := InspectFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Pages)
}
