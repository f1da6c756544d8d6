package pdf

import (
	"bytes"
	"fmt"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Rotate sets the display rotation of the selected pages (1-based page numbers).
func Rotate(data []byte, rotation int, pages []string) ([]byte, error) {
	var out bytes.Buffer
	if err := pdfapi.Rotate(bytes.NewReader(data), &out, rotation, pages, configuration()); err != nil {
		return nil, fmt.Errorf("rotate pages %v by %d: %w", pages, rotation, err)
	}
	return out.Bytes(), nil
}

// Info is basic information about a PDF
type Info struct {
	Pages int `json:"pages" yaml:"pages"`
	Size  int `json:"size" yaml:"size"`
}

// Inspect parses a PDF and returns its page count and size
func Inspect(data []byte) (Info, error) {
	ctx, err := pdfapi.ReadContext(bytes.NewReader(data), configuration())
	if err != nil {
		return Info{}, fmt.Errorf("failed to read PDF: %w", err)
	}
	// the page tree is only counted while validating
	if err := pdfapi.ValidateContext(ctx); err != nil {
		return Info{}, fmt.Errorf("invalid PDF: %w", err)
	}
	return Info{Pages: ctx.PageCount, Size: len(data)}, nil
}

// InspectFile is Inspect for a file on disk
func InspectFile(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	return Inspect(data)
}
