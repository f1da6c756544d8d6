package tablepdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"

	"github.com/flanksource/tablepdf/api"
)

// RenderOptions override the layout settings of an input file
type RenderOptions struct {
	Input     string
	Output    string
	Format    string
	Landscape bool
	Portrait  bool
	PageSize  string
	Margin    float64
	RowHeight float64
	FontSize  float64
	Font      string
}

type AllFlags struct {
	RenderOptions
	FormatOptions
	logger.Flags
}

var Flags AllFlags = AllFlags{
	RenderOptions: RenderOptions{Format: "pdf"},
	FormatOptions: FormatOptions{},
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindLoggerFlags adds the logging flags shared by every command
func BindLoggerFlags(flags *pflag.FlagSet) {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")

	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")
}

// BindRenderFlags adds the input and layout flags used by render and plan
func BindRenderFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&Flags.RenderOptions.Input, "input", "i", "", "YAML or JSON file describing the report")
	flags.BoolVar(&Flags.RenderOptions.Landscape, "landscape", false, "Lay the table out on landscape pages")
	flags.BoolVar(&Flags.RenderOptions.Portrait, "portrait", false, "Lay the table out on portrait pages")
	flags.StringVar(&Flags.RenderOptions.PageSize, "page-size", "", "Page size: A3, A4, A5, Letter, Legal")
	flags.Float64Var(&Flags.RenderOptions.Margin, "margin", 0, "Page margin in points")
	flags.Float64Var(&Flags.RenderOptions.RowHeight, "row-height", 0, "Row height in points")
	flags.Float64Var(&Flags.RenderOptions.FontSize, "font-size", 0, "Cell font size in points")
	flags.StringVar(&Flags.RenderOptions.Font, "font", "", "Standard font family, or a TrueType file")
}

// BindAllFlags adds every flag of the render command. Logging flags are bound once,
// on the root command, with BindLoggerFlags.
func BindAllFlags(flags *pflag.FlagSet) AllFlags {
	BindRenderFlags(flags)
	flags.StringVarP(&Flags.RenderOptions.Output, "output", "o", "report", "Output file; the format's extension is added when missing")
	flags.StringVar(&Flags.RenderOptions.Format, "format", "pdf", "Output format: pdf, svg")
	return Flags
}

func (a AllFlags) String() string {
	s, _ := Format(a, FormatOptions{YAML: true})
	return s
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
	logger.Debugf("Using flags: %s", a)
	UseFormatter(a.FormatOptions)
}

// Apply overrides the input's layout with every flag that was set
func (o RenderOptions) Apply(in *api.Input) error {
	switch {
	case o.Landscape && o.Portrait:
		return &api.ConfigError{Field: "orientation", Reason: "--landscape and --portrait are mutually exclusive"}
	case o.Landscape:
		in.Page.Orientation = api.Landscape
	case o.Portrait:
		in.Page.Orientation = api.Portrait
	}
	if o.PageSize != "" {
		if _, err := api.LookupPageSize(o.PageSize); err != nil {
			return &api.ConfigError{Field: "page-size", Reason: err.Error()}
		}
		in.Page.Size = o.PageSize
	}
	if o.Margin < 0 {
		return &api.ConfigError{Field: "margin", Reason: fmt.Sprintf("%g is negative", o.Margin)}
	}
	if o.Margin > 0 {
		margin := o.Margin
		in.Page.Margin = &margin
	}
	if o.RowHeight > 0 {
		in.Page.RowHeight = o.RowHeight
	}
	if o.FontSize > 0 {
		in.Font.Size = o.FontSize
	}
	if o.Font != "" {
		in.Font.Font = fontFlag(o.Font)
	}
	return nil
}

func fontFlag(s string) api.Font {
	switch strings.ToLower(filepath.Ext(s)) {
	case ".ttf", ".otf":
		return api.Font{File: s}
	}
	return api.Font{Family: s}
}
