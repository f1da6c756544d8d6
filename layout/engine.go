package layout

import "github.com/flanksource/tablepdf/api"

const (
	// CaptionReserve is the space kept above the grid for the report caption.
	CaptionReserve = 20.0
	// CaptionRise is how far above the grid top the caption baseline sits.
	CaptionRise = 15.0
	// SummaryDrop is how far below the running baseline the summary line sits.
	SummaryDrop = 5.0
)

// PageLayout holds every coordinate needed to draw one page, in content space.
type PageLayout struct {
	Left          float64   `json:"left" yaml:"left"`
	Right         float64   `json:"right" yaml:"right"`
	TopY          float64   `json:"top_y" yaml:"top_y"`
	BottomY       float64   `json:"bottom_y" yaml:"bottom_y"`
	RowLines      []float64 `json:"row_lines" yaml:"row_lines"`
	ColumnLines   []float64 `json:"column_lines" yaml:"column_lines"`
	TextX         []float64 `json:"text_x" yaml:"text_x"`
	FirstBaseline float64   `json:"first_baseline" yaml:"first_baseline"`
	Caption       Point     `json:"caption" yaml:"caption"`
}

// TextOffset is the distance from a row's top edge to its text baseline. The quarter
// bounding-box term lifts the text so it looks centred rather than sitting on the midline.
func TextOffset(rowHeight, bboxHeight, fontSize float64) float64 {
	return rowHeight/2 + (bboxHeight/1000*fontSize)/4
}

// NextRow returns the baseline of the row below y
func NextRow(y, rowHeight float64) float64 {
	return y - rowHeight
}

// SummaryY returns the summary baseline given the running baseline after the last row
func SummaryY(y float64) float64 {
	return y - SummaryDrop
}

// TopY is the y of the grid's top border
func TopY(m Metrics) float64 {
	return m.Frame.Height - m.Margin - CaptionReserve
}

// Compute lays out a page holding a header row plus rows content rows.
func Compute(m Metrics, columns []api.Column, rows int) PageLayout {
	top := TopY(m)
	l := PageLayout{
		Left:          m.Margin,
		TopY:          top,
		BottomY:       top - (m.RowHeight + m.RowHeight*float64(rows)),
		RowLines:      make([]float64, 0, rows+2),
		ColumnLines:   make([]float64, 0, len(columns)+1),
		TextX:         make([]float64, 0, len(columns)),
		FirstBaseline: top - TextOffset(m.RowHeight, m.FontBBoxHeight, m.FontSize),
		Caption:       Point{X: m.Margin, Y: top + CaptionRise},
	}

	y := top
	for i := 0; i <= rows+1; i++ {
		l.RowLines = append(l.RowLines, y)
		y = NextRow(y, m.RowHeight)
	}

	x := m.Margin
	for _, c := range columns {
		l.ColumnLines = append(l.ColumnLines, x)
		l.TextX = append(l.TextX, x+m.CellMargin)
		x += c.Width
	}
	l.ColumnLines = append(l.ColumnLines, x)
	l.Right = x
	return l
}
