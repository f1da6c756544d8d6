package formatters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type FormatManager struct {
	jsonFormatter   *JSONFormatter
	yamlFormatter   *YAMLFormatter
	prettyFormatter *PrettyFormatter
}

// NewFormatManager creates a format manager whose pretty output targets w
func NewFormatManager(w io.Writer, noColor bool) *FormatManager {
	return &FormatManager{
		jsonFormatter:   NewJSONFormatter(),
		yamlFormatter:   NewYAMLFormatter(),
		prettyFormatter: NewPrettyFormatter(w, noColor),
	}
}

func (f *FormatManager) Pretty(data interface{}) (string, error) {
	if f.prettyFormatter == nil {
		f.prettyFormatter = NewPrettyFormatter(io.Discard, true)
	}
	return f.prettyFormatter.Format(data)
}

func (f *FormatManager) JSON(data interface{}) (string, error) {
	if f.jsonFormatter == nil {
		f.jsonFormatter = NewJSONFormatter()
	}
	return f.jsonFormatter.Format(data)
}

func (f *FormatManager) YAML(data interface{}) (string, error) {
	if f.yamlFormatter == nil {
		f.yamlFormatter = NewYAMLFormatter()
	}
	return f.yamlFormatter.Format(data)
}

// Format delegates to the formatter registered for format
func (f *FormatManager) Format(format string, data interface{}) (string, error) {
	switch format {
	case "json":
		return f.JSON(data)
	case "yaml", "yml":
		return f.YAML(data)
	case "pretty", "":
		return f.Pretty(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Write formats data per options and writes it to options.Output, or to stdout
func Write(data interface{}, options FormatOptions) error {
	if err := options.ResolveFormat(); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if options.Output != "" {
		// files never get color
		options.NoColor = true
		w = io.Discard
	}
	out, err := NewFormatManager(w, options.NoColor).Format(options.Format, data)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if options.Output == "" {
		_, err = fmt.Fprint(os.Stdout, out)
		return err
	}
	if dir := filepath.Dir(options.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(options.Output, []byte(out), 0o644)
}
