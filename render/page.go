package render

import (
	"errors"
	"fmt"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

// PageRenderer draws planned pages of one table
type PageRenderer struct {
	Table   api.Table
	Report  api.Report
	Metrics layout.Metrics
}

// Render draws a single page. The page's surface is closed before Render returns,
// whether drawing succeeded or not.
func (r PageRenderer) Render(doc Document, plan layout.PagePlan) (err error) {
	surface, err := doc.AddPage(r.Table.Page, r.Table.Orientation.Rotation())
	if err != nil {
		return &api.DocumentError{Op: "add page", Err: err}
	}
	defer func() {
		if cerr := surface.Close(); cerr != nil {
			err = errors.Join(err, &api.DocumentError{Op: "close page", Err: cerr})
		}
	}()

	canvas, err := EnterFrame(surface, r.Metrics.Frame)
	if err != nil {
		return &api.DocumentError{Op: fmt.Sprintf("enter frame on %s", plan), Err: err}
	}
	if err := r.draw(canvas, plan); err != nil {
		return &api.DocumentError{Op: fmt.Sprintf("draw %s", plan), Err: err}
	}
	return nil
}

func (r PageRenderer) draw(c *Canvas, plan layout.PagePlan) error {
	t, m := r.Table, r.Metrics
	rows := t.Rows[plan.Start:plan.End]
	l := layout.Compute(m, t.Columns, len(rows))

	if err := drawGrid(c, l); err != nil {
		return err
	}

	if err := c.Font(t.Font, true, t.CaptionFontSize); err != nil {
		return err
	}
	if err := c.Text(l.Caption.X, l.Caption.Y, r.Report.Caption()); err != nil {
		return err
	}

	if err := c.Font(t.Font, true, t.HeaderFontSize); err != nil {
		return err
	}
	y, err := c.Row(t.ColumnNames(), l.TextX, l.FirstBaseline, m.RowHeight)
	if err != nil {
		return err
	}

	if err := c.Font(t.Font, false, t.FontSize); err != nil {
		return err
	}
	for _, row := range rows {
		if y, err = c.Row(api.RowText(row), l.TextX, y, m.RowHeight); err != nil {
			return err
		}
	}

	if err := c.Font(t.Font, true, t.CaptionFontSize); err != nil {
		return err
	}
	return c.Text(l.Left, layout.SummaryY(y), r.Report.SummaryLine())
}

func drawGrid(c *Canvas, l layout.PageLayout) error {
	for _, y := range l.RowLines {
		if err := c.HLine(y, l.Left, l.Right); err != nil {
			return err
		}
	}
	for _, x := range l.ColumnLines {
		if err := c.VLine(x, l.TopY, l.BottomY); err != nil {
			return err
		}
	}
	return nil
}
