package formatters

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter handles YAML formatting
type YAMLFormatter struct {
	Indent int
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{Indent: 2}
}

// Format formats data as YAML
func (f *YAMLFormatter) Format(data interface{}) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(f.Indent)
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
