package api

// PageOptions is the page section of an input file
type PageOptions struct {
	Size        string      `json:"size,omitempty" yaml:"size,omitempty"`
	Width       float64     `json:"width,omitempty" yaml:"width,omitempty"`
	Height      float64     `json:"height,omitempty" yaml:"height,omitempty"`
	Orientation Orientation `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Margin      *float64    `json:"margin,omitempty" yaml:"margin,omitempty"`
	CellMargin  *float64    `json:"cell_margin,omitempty" yaml:"cell_margin,omitempty"`
	RowHeight   float64     `json:"row_height,omitempty" yaml:"row_height,omitempty"`
}

// FontOptions is the font section of an input file
type FontOptions struct {
	Font        `json:",inline" yaml:",inline"`
	Size        float64 `json:"size,omitempty" yaml:"size,omitempty"`
	HeaderSize  float64 `json:"header_size,omitempty" yaml:"header_size,omitempty"`
	CaptionSize float64 `json:"caption_size,omitempty" yaml:"caption_size,omitempty"`
}

// Input is the on-disk description of a report: layout settings, columns, rows and the summary.
//
//	page:
//	  size: A4
//	  orientation: landscape
//	columns:
//	  - {name: Date, width: 100}
//	  - {name: Amount, width: 80}
//	rows:
//	  - ["2024-01-02", 12.5]
//	report:
//	  from: "2024-01-01"
//	  to: "2024-01-31"
//	  sum: 12.5
type Input struct {
	Page    PageOptions `json:"page,omitempty" yaml:"page,omitempty"`
	Font    FontOptions `json:"font,omitempty" yaml:"font,omitempty"`
	Columns []Column    `json:"columns" yaml:"columns"`
	Rows    [][]any     `json:"rows,omitempty" yaml:"rows,omitempty"`
	Report  Report      `json:"report" yaml:"report"`
}

// Table builds a Table from the input, applying defaults for anything left out
func (in Input) Table() (Table, error) {
	t := NewTable(in.Columns...)
	t.Rows = in.Rows

	switch {
	case in.Page.Size != "":
		size, err := LookupPageSize(in.Page.Size)
		if err != nil {
			return Table{}, err
		}
		t.Page = size
	case in.Page.Width > 0 || in.Page.Height > 0:
		t.Page = PageSize{Width: in.Page.Width, Height: in.Page.Height}
	}
	t.Orientation = in.Page.Orientation
	if in.Page.Margin != nil {
		t.Margin = *in.Page.Margin
	}
	if in.Page.CellMargin != nil {
		t.CellMargin = *in.Page.CellMargin
	}
	if in.Page.RowHeight > 0 {
		t.RowHeight = in.Page.RowHeight
	}

	if in.Font.Family != "" || in.Font.IsTrueType() {
		t.Font = in.Font.Font
	}
	if in.Font.Size > 0 {
		t.FontSize = in.Font.Size
	}
	if in.Font.HeaderSize > 0 {
		t.HeaderFontSize = in.Font.HeaderSize
	}
	if in.Font.CaptionSize > 0 {
		t.CaptionFontSize = in.Font.CaptionSize
	}
	return t, nil
}
