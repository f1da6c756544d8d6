package formatters

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/flanksource/tablepdf/api"
)

// PrettyFormatter renders a plan as styled terminal output
type PrettyFormatter struct {
	Theme    api.Theme
	NoColor  bool
	renderer *lipgloss.Renderer
}

// NewPrettyFormatter creates a formatter for output written to w. Color is only used
// when w is a terminal.
func NewPrettyFormatter(w io.Writer, noColor bool) *PrettyFormatter {
	renderer := lipgloss.NewRenderer(w)
	theme := api.DefaultTheme()

	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	if noColor || !interactive {
		renderer.SetColorProfile(termenv.Ascii)
	} else if renderer.HasDarkBackground() {
		theme = api.DarkTheme()
	}
	return &PrettyFormatter{Theme: theme, NoColor: noColor, renderer: renderer}
}

func (f *PrettyFormatter) style() lipgloss.Style {
	if f.renderer == nil {
		f.renderer = lipgloss.NewRenderer(io.Discard)
		f.renderer.SetColorProfile(termenv.Ascii)
	}
	return f.renderer.NewStyle()
}

// Format renders a plan summary followed by one table row per page
func (f *PrettyFormatter) Format(data interface{}) (string, error) {
	var report PlanReport
	switch v := data.(type) {
	case PlanReport:
		report = v
	case *PlanReport:
		if v == nil {
			return "", nil
		}
		report = *v
	default:
		return "", fmt.Errorf("pretty output is not supported for %T", data)
	}

	label := f.style().Foreground(f.Theme.Muted).Width(8)
	value := f.style().Foreground(f.Theme.Primary)
	line := func(name, text string) string {
		return label.Render(name) + " " + value.Render(text)
	}

	lines := []string{
		line("page", fmt.Sprintf("%s %s (%.2f x %.2f pt)", report.Page, report.Orientation, report.FrameWidth, report.FrameHeight)),
		line("usable", fmt.Sprintf("%.2f x %.2f pt", report.UsableWidth, report.UsableHeight)),
		line("rows", fmt.Sprintf("%d, %d per page, %d pages", report.Rows, report.RowsPerPage, len(report.Pages))),
	}
	width := line("table", fmt.Sprintf("%.2f pt wide", report.TableWidth))
	if report.Overflows() {
		width += " " + f.style().Foreground(f.Theme.Warning).Bold(true).Render("overflows the right margin")
	}
	lines = append(lines, width)

	if len(report.Pages) == 0 {
		lines = append(lines, f.style().Foreground(f.Theme.Muted).Render("no rows, nothing to draw"))
		return strings.Join(lines, "\n"), nil
	}

	header := f.style().Bold(true).Foreground(f.Theme.Secondary).Padding(0, 1)
	cell := f.style().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.style().Foreground(f.Theme.Muted)).
		Headers("Page", "First row", "Last row", "Rows").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, p := range report.Pages {
		t.Row(
			strconv.Itoa(p.Index+1),
			strconv.Itoa(p.Start+1),
			strconv.Itoa(p.End),
			strconv.Itoa(p.Rows()),
		)
	}
	lines = append(lines, t.String())
	return strings.Join(lines, "\n"), nil
}
