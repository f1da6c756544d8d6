package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/tablepdf/api"
)

func TestLandscapeMatrix(t *testing.T) {
	m := Landscape(595)
	assert.Equal(t, Matrix{A: 0, B: 1, C: -1, D: 0, E: 595, F: 0}, m)

	// the content frame's origin lands on the media box's bottom-right corner
	assert.Equal(t, Point{X: 595, Y: 0}, m.Apply(Point{}))
	// its top-left corner lands on the media box origin
	assert.Equal(t, Point{X: 0, Y: 842}, m.Apply(Point{X: 842, Y: 595}))
}

func TestLandscapeIsNotIdempotent(t *testing.T) {
	once := Landscape(595)
	twice := once.Multiply(once)

	assert.NotEqual(t, once, twice)
	assert.Equal(t, Matrix{A: -1, B: 0, C: 0, D: -1, E: 595, F: 595}, twice)

	p := Point{X: 100, Y: 50}
	assert.Equal(t, once.Apply(once.Apply(p)), twice.Apply(p))
}

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix{A: 2, B: 0.5, C: -1, D: 3, E: 10, F: -4}
	assert.Equal(t, m, Identity().Multiply(m))
	assert.Equal(t, m, m.Multiply(Identity()))
	assert.True(t, Identity().IsIdentity())
	assert.False(t, m.IsIdentity())
}

func TestFrameFor(t *testing.T) {
	portrait := FrameFor(api.A4, api.Portrait)
	assert.Equal(t, api.A4.Width, portrait.Width)
	assert.Equal(t, api.A4.Height, portrait.Height)
	assert.True(t, portrait.Transform.IsIdentity())

	landscape := FrameFor(api.A4, api.Landscape)
	assert.Equal(t, api.A4.Height, landscape.Width)
	assert.Equal(t, api.A4.Width, landscape.Height)
	assert.Equal(t, Landscape(api.A4.Width), landscape.Transform)
}

func TestMetricsFor(t *testing.T) {
	table := api.NewTable(api.Column{Name: "a", Width: 100})
	fonts := FontMetricsFunc(func(f api.Font) (float64, error) {
		assert.Equal(t, api.Helvetica, f)
		return 1156, nil
	})

	m, err := MetricsFor(table, fonts)
	require.NoError(t, err)
	assert.InDelta(t, api.A4.Height-40, m.UsableHeight, 1e-9)
	assert.InDelta(t, api.A4.Width-40, m.UsableWidth, 1e-9)
	assert.Equal(t, 1156.0, m.FontBBoxHeight)
	assert.Equal(t, 20.0, m.RowHeight)

	rpp, err := m.RowsPerPage()
	require.NoError(t, err)
	assert.Equal(t, 39, rpp)
}

func TestMetricsForFontFailure(t *testing.T) {
	boom := errors.New("no such font")
	_, err := MetricsFor(api.NewTable(), FontMetricsFunc(func(api.Font) (float64, error) { return 0, boom }))
	assert.ErrorIs(t, err, boom)
}
