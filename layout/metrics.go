package layout

import (
	"fmt"

	"github.com/flanksource/tablepdf/api"
)

// FontMetrics looks up font geometry without needing a document backend.
type FontMetrics interface {
	// BoundingBoxHeight is the height of the font's bounding box in glyph space units (1/1000 em).
	BoundingBoxHeight(font api.Font) (float64, error)
}

// FontMetricsFunc adapts a plain function to FontMetrics
type FontMetricsFunc func(font api.Font) (float64, error)

func (f FontMetricsFunc) BoundingBoxHeight(font api.Font) (float64, error) {
	return f(font)
}

// Metrics is the geometry a table needs from its page and font.
type Metrics struct {
	Frame          Frame
	UsableHeight   float64
	UsableWidth    float64
	RowHeight      float64
	Margin         float64
	CellMargin     float64
	FontSize       float64
	FontBBoxHeight float64
}

// MetricsFor derives the metrics of a table, in its orientation, using the font metrics given.
func MetricsFor(table api.Table, fonts FontMetrics) (Metrics, error) {
	bbox, err := fonts.BoundingBoxHeight(table.Font)
	if err != nil {
		return Metrics{}, fmt.Errorf("font metrics for %s: %w", table.Font, err)
	}
	frame := FrameFor(table.Page, table.Orientation)
	return Metrics{
		Frame:          frame,
		UsableHeight:   frame.Height - 2*table.Margin,
		UsableWidth:    frame.Width - 2*table.Margin,
		RowHeight:      table.RowHeight,
		Margin:         table.Margin,
		CellMargin:     table.CellMargin,
		FontSize:       table.FontSize,
		FontBBoxHeight: bbox,
	}, nil
}

// RowsPerPage is the planner's page capacity for these metrics
func (m Metrics) RowsPerPage() (int, error) {
	return RowsPerPage(m.UsableHeight, m.RowHeight)
}
