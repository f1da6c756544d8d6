package formatters

import (
	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

// PlanReport describes how a table will be split over pages, without rendering it.
type PlanReport struct {
	Rows         int               `json:"rows" yaml:"rows"`
	RowsPerPage  int               `json:"rows_per_page" yaml:"rows_per_page"`
	Page         api.PageSize      `json:"page_size" yaml:"page_size"`
	Orientation  api.Orientation   `json:"orientation" yaml:"orientation"`
	FrameWidth   float64           `json:"frame_width" yaml:"frame_width"`
	FrameHeight  float64           `json:"frame_height" yaml:"frame_height"`
	UsableWidth  float64           `json:"usable_width" yaml:"usable_width"`
	UsableHeight float64           `json:"usable_height" yaml:"usable_height"`
	TableWidth   float64           `json:"table_width" yaml:"table_width"`
	Pages        []layout.PagePlan `json:"pages" yaml:"pages"`
}

func NewPlanReport(table api.Table, m layout.Metrics, plans []layout.PagePlan) PlanReport {
	// the capacity is known even when there are no rows to place
	rowsPerPage, _ := m.RowsPerPage()
	if plans == nil {
		plans = []layout.PagePlan{}
	}
	return PlanReport{
		Rows:         len(table.Rows),
		RowsPerPage:  rowsPerPage,
		Page:         table.Page,
		Orientation:  table.Orientation,
		FrameWidth:   m.Frame.Width,
		FrameHeight:  m.Frame.Height,
		UsableWidth:  m.UsableWidth,
		UsableHeight: m.UsableHeight,
		TableWidth:   table.Width(),
		Pages:        plans,
	}
}

// Overflows is true when the columns are wider than the space between the margins
func (r PlanReport) Overflows() bool {
	return r.TableWidth > r.UsableWidth
}
