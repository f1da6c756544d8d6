package api

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/samber/lo"
)

const (
	DefaultMargin          = 20.0
	DefaultCellMargin      = 2.0
	DefaultRowHeight       = 20.0
	DefaultFontSize        = 10.0
	DefaultHeaderFontSize  = 11.0
	DefaultCaptionFontSize = 12.0
)

// Column is a named table column with a fixed width in points
type Column struct {
	Name  string  `json:"name" yaml:"name"`
	Width float64 `json:"width" yaml:"width"`
}

// Font selects a standard PDF font family, optionally backed by TrueType files.
type Font struct {
	Family   string `json:"family,omitempty" yaml:"family,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	BoldFile string `json:"bold_file,omitempty" yaml:"bold_file,omitempty"`
}

var Helvetica = Font{Family: "helvetica"}

func (f Font) IsTrueType() bool {
	return f.File != ""
}

func (f Font) String() string {
	if f.IsTrueType() {
		return f.File
	}
	return f.Family
}

// Table is everything needed to lay a table out over pages.
type Table struct {
	Columns         []Column    `json:"columns" yaml:"columns"`
	Rows            [][]any     `json:"rows,omitempty" yaml:"rows,omitempty"`
	Page            PageSize    `json:"page" yaml:"page"`
	Orientation     Orientation `json:"orientation" yaml:"orientation"`
	Margin          float64     `json:"margin" yaml:"margin"`
	CellMargin      float64     `json:"cell_margin" yaml:"cell_margin"`
	RowHeight       float64     `json:"row_height" yaml:"row_height"`
	Font            Font        `json:"font" yaml:"font"`
	FontSize        float64     `json:"font_size" yaml:"font_size"`
	HeaderFontSize  float64     `json:"header_font_size,omitempty" yaml:"header_font_size,omitempty"`
	CaptionFontSize float64     `json:"caption_font_size,omitempty" yaml:"caption_font_size,omitempty"`
}

// NewTable returns an A4 portrait table with the default metrics
func NewTable(columns ...Column) Table {
	return Table{Columns: columns}.WithDefaults()
}

// WithDefaults fills every unset setting. Margin and cell margin may be legitimately zero,
// so they are only defaulted on a table that has no page size yet.
func (t Table) WithDefaults() Table {
	if t.Page.Width == 0 && t.Page.Height == 0 {
		t.Page = A4
		if t.Margin == 0 {
			t.Margin = DefaultMargin
		}
		if t.CellMargin == 0 {
			t.CellMargin = DefaultCellMargin
		}
	}
	if t.RowHeight == 0 {
		t.RowHeight = DefaultRowHeight
	}
	if t.Font.Family == "" && !t.Font.IsTrueType() {
		t.Font = Helvetica
	}
	if t.FontSize == 0 {
		t.FontSize = DefaultFontSize
	}
	if t.HeaderFontSize == 0 {
		t.HeaderFontSize = DefaultHeaderFontSize
	}
	if t.CaptionFontSize == 0 {
		t.CaptionFontSize = DefaultCaptionFontSize
	}
	return t
}

// AddRow appends a row of cells
func (t *Table) AddRow(cells ...any) {
	t.Rows = append(t.Rows, cells)
}

// Width is the sum of all column widths
func (t Table) Width() float64 {
	return lo.SumBy(t.Columns, func(c Column) float64 { return c.Width })
}

func (t Table) ColumnNames() []string {
	return lo.Map(t.Columns, func(c Column, _ int) string { return c.Name })
}

// Validate checks the whole table up front so nothing is drawn for a table that cannot render.
func (t Table) Validate() error {
	if len(t.Columns) == 0 {
		return &ConfigError{Field: "columns", Reason: "must not be empty"}
	}
	for i, c := range t.Columns {
		if !positive(c.Width) {
			return &ConfigError{Field: fmt.Sprintf("columns[%d].width", i), Reason: "must be a positive number"}
		}
	}
	// comparisons are written so that NaN fails them
	switch {
	case !positive(t.RowHeight):
		return &ConfigError{Field: "row_height", Reason: "must be a positive number"}
	case !finite(t.Margin) || !(t.Margin >= 0):
		return &ConfigError{Field: "margin", Reason: "must be a non-negative number"}
	case !finite(t.CellMargin) || !(t.CellMargin >= 0):
		return &ConfigError{Field: "cell_margin", Reason: "must be a non-negative number"}
	case !positive(t.FontSize):
		return &ConfigError{Field: "font_size", Reason: "must be a positive number"}
	case !positive(t.HeaderFontSize) && t.HeaderFontSize != 0:
		return &ConfigError{Field: "header_font_size", Reason: "must be a positive number"}
	case !positive(t.CaptionFontSize) && t.CaptionFontSize != 0:
		return &ConfigError{Field: "caption_font_size", Reason: "must be a positive number"}
	case !finite(t.Page.Width) || !finite(t.Page.Height):
		return &ConfigError{Field: "page", Reason: fmt.Sprintf("%s has no finite size", t.Page)}
	case !(t.Page.Width > 2*t.Margin) || !(t.Page.Height > 2*t.Margin):
		return &ConfigError{Field: "page", Reason: fmt.Sprintf("%s does not leave room inside a %.2f margin", t.Page, t.Margin)}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return &RowError{Row: i, Cells: len(row), Columns: len(t.Columns)}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func positive(f float64) bool {
	return finite(f) && f > 0
}

// CellText renders a cell value; nil renders as an empty string and dates at midnight
// UTC as YYYY-MM-DD.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		// unquoted YAML dates arrive as midnight UTC
		if val.Location() == time.UTC && val.Equal(val.Truncate(24*time.Hour)) {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

// RowText converts one row into its cell strings
func RowText(row []any) []string {
	return lo.Map(row, func(v any, _ int) string { return CellText(v) })
}
