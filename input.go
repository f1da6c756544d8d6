package tablepdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flanksource/tablepdf/api"
)

// LoadInput reads a report description from a YAML or JSON file
func LoadInput(path string) (api.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.Input{}, err
	}
	in, err := ParseInput(data, filepath.Ext(path))
	if err != nil {
		return api.Input{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return in, nil
}

// ParseInput decodes an input document. ext picks the decoder; anything other than
// .json/.yaml/.yml tries JSON first, then YAML.
func ParseInput(data []byte, ext string) (api.Input, error) {
	var in api.Input
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = decodeJSON(data, &in)
	case ".yaml", ".yml":
		err = decodeYAML(data, &in)
	default:
		if err = decodeJSON(data, &in); err != nil {
			in = api.Input{}
			err = decodeYAML(data, &in)
		}
	}
	if err != nil {
		return api.Input{}, err
	}
	return in, nil
}

func decodeJSON(data []byte, in *api.Input) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(in)
}

func decodeYAML(data []byte, in *api.Input) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(in)
}
