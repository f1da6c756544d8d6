// Package tablepdf renders tabular data into paginated PDF reports: a caption above a
// ruled grid, one column header row per page and a summary line below the last row.
package tablepdf

import (
	"fmt"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/formatters"
	"github.com/flanksource/tablepdf/formatters/pdf"
	"github.com/flanksource/tablepdf/formatters/svg"
	"github.com/flanksource/tablepdf/layout"
	"github.com/flanksource/tablepdf/render"
)

var Logger = logger.GetLogger("tablepdf")

// Backends maps an output format to the document it renders into
var Backends = map[string]func() (render.Document, error){
	"pdf": pdf.NewDocument,
	"svg": svg.NewDocument,
}

// Options selects the output format and logger of Generate
type Options struct {
	// Format is "pdf" (default) or "svg"
	Format string
	Fonts  layout.FontMetrics
	Log    logger.Logger
}

func (o Options) driver() (render.Driver, error) {
	format := strings.ToLower(o.Format)
	if format == "" {
		format = "pdf"
	}
	backend, ok := Backends[format]
	if !ok {
		return render.Driver{}, &api.ConfigError{Field: "format", Reason: fmt.Sprintf("unsupported output format %q", o.Format)}
	}
	d := render.Driver{NewDocument: backend, Fonts: o.Fonts, Log: o.Log}
	if d.Fonts == nil {
		d.Fonts = pdf.Fonts()
	}
	if d.Log == nil {
		d.Log = Logger
	}
	return d, nil
}

// GeneratePDF renders table as a PDF at outputPath, adding ".pdf" when missing.
func GeneratePDF(table api.Table, outputPath string, report api.Report) error {
	return Generate(table, report, outputPath, Options{})
}

// Generate renders table in the format selected by opts
func Generate(table api.Table, report api.Report, path string, opts Options) error {
	d, err := opts.driver()
	if err != nil {
		return err
	}
	return d.Generate(table, report, path)
}

// Plan lays the table out without rendering it
func Plan(table api.Table, opts Options) (formatters.PlanReport, error) {
	d, err := opts.driver()
	if err != nil {
		return formatters.PlanReport{}, err
	}
	metrics, plans, err := d.Plan(table)
	if err != nil {
		return formatters.PlanReport{}, err
	}
	return formatters.NewPlanReport(table, metrics, plans), nil
}
