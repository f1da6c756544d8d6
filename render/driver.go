package render

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

// Driver turns a table into a saved document. A Driver keeps no state between calls,
// so one value can serve concurrent requests as long as NewDocument returns a fresh document.
type Driver struct {
	NewDocument func() (Document, error)
	Fonts       layout.FontMetrics
	Log         logger.Logger
}

func (d Driver) log() logger.Logger {
	if d.Log == nil {
		return logger.GetLogger("tablepdf")
	}
	return d.Log
}

// NormalizePath appends ext unless path already ends with it (case-insensitively)
func NormalizePath(path, ext string) string {
	if ext == "" || strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}

// Plan validates the table and returns its metrics and page plan without touching a document.
func (d Driver) Plan(table api.Table) (layout.Metrics, []layout.PagePlan, error) {
	if err := table.Validate(); err != nil {
		return layout.Metrics{}, nil, err
	}
	metrics, err := layout.MetricsFor(table, d.Fonts)
	if err != nil {
		return layout.Metrics{}, nil, err
	}
	rowsPerPage, err := metrics.RowsPerPage()
	if err != nil {
		return metrics, nil, err
	}
	plans, err := layout.Plan(len(table.Rows), rowsPerPage)
	if err != nil {
		return metrics, nil, err
	}
	if width := table.Width(); width > metrics.UsableWidth {
		d.log().Warnf("table is %.1fpt wide but only %.1fpt fit between the margins", width, metrics.UsableWidth)
	}
	return metrics, plans, nil
}

// Generate renders every planned page in order and saves the document to path, adding
// the document's extension when missing. The document is closed on every path.
func (d Driver) Generate(table api.Table, report api.Report, path string) (err error) {
	metrics, plans, err := d.Plan(table)
	if err != nil {
		return err
	}
	rowsPerPage := 0
	if len(plans) > 0 {
		rowsPerPage = plans[0].Rows()
	}
	d.log().Debugf("%d rows, %d per page, %d pages (%s %s)", len(table.Rows), rowsPerPage, len(plans), table.Page, table.Orientation)

	doc, err := d.NewDocument()
	if err != nil {
		return &api.DocumentError{Op: "create", Err: err}
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			err = errors.Join(err, &api.DocumentError{Op: "close", Err: cerr})
		}
	}()

	renderer := PageRenderer{Table: table, Report: report, Metrics: metrics}
	for _, plan := range plans {
		d.log().Tracef("rendering %s", plan)
		if err := renderer.Render(doc, plan); err != nil {
			return err
		}
	}

	path = NormalizePath(path, doc.Extension())
	if err := doc.Save(path); err != nil {
		return &api.DocumentError{Op: "save", Path: path, Err: err}
	}
	d.log().Infof("saved %s (%d pages)", path, len(plans))
	return nil
}
