package layout

import (
	"fmt"
	"math"

	"github.com/flanksource/tablepdf/api"
)

// PagePlan is the half-open row range [Start, End) drawn on page Index
type PagePlan struct {
	Index int `json:"page" yaml:"page"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (p PagePlan) Rows() int {
	return p.End - p.Start
}

func (p PagePlan) String() string {
	return fmt.Sprintf("page %d rows [%d,%d)", p.Index+1, p.Start, p.End)
}

// RowsPerPage is how many content rows fit below the column header row
func RowsPerPage(usableHeight, rowHeight float64) (int, error) {
	if !(rowHeight > 0) || math.IsInf(rowHeight, 0) {
		return 0, &api.ConfigError{Field: "row_height", Reason: "must be a positive number"}
	}
	fit := math.Floor(usableHeight / rowHeight)
	if math.IsNaN(fit) || math.IsInf(fit, 0) {
		return 0, &api.ConfigError{Field: "page", Reason: fmt.Sprintf("usable height %v is not a finite number", usableHeight)}
	}
	if fit > math.MaxInt32 {
		fit = math.MaxInt32
	}
	n := int(fit) - 1
	if n < 1 {
		return 0, fmt.Errorf("%w: %.2fpt usable height holds no %.2fpt rows below the header", api.ErrPageTooSmall, usableHeight, rowHeight)
	}
	return n, nil
}

// Plan splits totalRows into consecutive pages of rowsPerPage rows, the last one possibly partial.
// Zero rows plan zero pages.
func Plan(totalRows, rowsPerPage int) ([]PagePlan, error) {
	if rowsPerPage < 1 {
		return nil, fmt.Errorf("%w: %d rows per page", api.ErrPageTooSmall, rowsPerPage)
	}
	if totalRows < 0 {
		return nil, &api.ConfigError{Field: "rows", Reason: fmt.Sprintf("count %d is negative", totalRows)}
	}

	pages := int(math.Ceil(float64(totalRows) / float64(rowsPerPage)))
	plans := make([]PagePlan, 0, pages)
	for p := 0; p < pages; p++ {
		start := p * rowsPerPage
		plans = append(plans, PagePlan{
			Index: p,
			Start: start,
			End:   min(start+rowsPerPage, totalRows),
		})
	}
	return plans, nil
}
