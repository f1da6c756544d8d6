package formatters

import (
	"fmt"

	"github.com/spf13/pflag"
)

// FormatOptions contains options for printing a plan
type FormatOptions struct {
	Format  string
	NoColor bool
	Output  string

	// Format-specific boolean flags (mutually exclusive)
	JSON   bool
	YAML   bool
	Pretty bool
}

func MergeOptions(opts ...FormatOptions) FormatOptions {
	merged := FormatOptions{}
	for _, opt := range opts {
		if opt.Format != "" {
			merged.Format = opt.Format
		}
		if opt.NoColor {
			merged.NoColor = true
		}
		if opt.Output != "" {
			merged.Output = opt.Output
		}
		switch {
		case opt.JSON:
			merged.JSON, merged.YAML, merged.Pretty = true, false, false
		case opt.YAML:
			merged.JSON, merged.YAML, merged.Pretty = false, true, false
		case opt.Pretty:
			merged.JSON, merged.YAML, merged.Pretty = false, false, true
		}
	}
	return merged
}

// BindPFlags adds formatting flags to the provided pflag set (for cobra)
func BindPFlags(flags *pflag.FlagSet, options *FormatOptions) {
	flags.StringVar(&options.Format, "format", "pretty", "Output format: pretty, json, yaml")
	flags.StringVar(&options.Output, "output", "", "Output file (optional, uses stdout if not specified)")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")

	flags.BoolVar(&options.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&options.YAML, "yaml", false, "Output in YAML format")
	flags.BoolVar(&options.Pretty, "pretty", false, "Output in pretty format (default)")
}

// ResolveFormat resolves the output format from format-specific flags
func (options *FormatOptions) ResolveFormat() error {
	formatCount := 0
	selectedFormat := ""

	if options.JSON {
		formatCount++
		selectedFormat = "json"
	}
	if options.YAML {
		formatCount++
		selectedFormat = "yaml"
	}
	if options.Pretty {
		formatCount++
		selectedFormat = "pretty"
	}

	if formatCount > 1 {
		return fmt.Errorf("multiple format flags specified; please use only one format flag")
	}
	if formatCount == 1 {
		options.Format = selectedFormat
	}
	if options.Format == "" {
		options.Format = "pretty"
	}
	return nil
}
