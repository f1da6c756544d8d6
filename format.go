package tablepdf

import (
	"io"

	"github.com/flanksource/tablepdf/formatters"
)

type FormatOptions = formatters.FormatOptions

var defaultOpts FormatOptions

// Format renders o with the default options merged with opts
func Format(o any, opts ...FormatOptions) (string, error) {
	merged := formatters.MergeOptions(append([]FormatOptions{defaultOpts}, opts...)...)
	if err := merged.ResolveFormat(); err != nil {
		return "", err
	}
	return formatters.NewFormatManager(io.Discard, true).Format(merged.Format, o)
}

// Print writes o to stdout, or to the configured output file
func Print(o any, opts ...FormatOptions) error {
	return formatters.Write(o, formatters.MergeOptions(append([]FormatOptions{defaultOpts}, opts...)...))
}

func UseFormatter(opts FormatOptions) {
	defaultOpts = opts
}
