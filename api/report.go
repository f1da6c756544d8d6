package api

import (
	"fmt"
	"strconv"
)

const (
	DefaultReportTitle = "Expenses Report"
	DefaultCurrency    = "ILS"
)

// Report carries the period and total printed above and below the table.
type Report struct {
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	Sum      float64 `json:"sum" yaml:"sum"`
	Currency string  `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Caption is the bold line written above the grid
func (r Report) Caption() string {
	title := r.Title
	if title == "" {
		title = DefaultReportTitle
	}
	return fmt.Sprintf("%s [ %s - %s ]", title, r.From, r.To)
}

// SummaryLine is the bold line written below the last row
func (r Report) SummaryLine() string {
	currency := r.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("Summary is: %s %s", strconv.FormatFloat(r.Sum, 'f', 2, 64), currency)
}
