package api

import (
	"fmt"
	"strings"
)

// PageSize is a media box in PDF points (1/72 inch), always given in portrait.
type PageSize struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

var (
	A3     = PageSize{Name: "A3", Width: 841.8898, Height: 1190.5513}
	A4     = PageSize{Name: "A4", Width: 595.27563, Height: 841.8898}
	A5     = PageSize{Name: "A5", Width: 419.52756, Height: 595.27563}
	Letter = PageSize{Name: "Letter", Width: 612, Height: 792}
	Legal  = PageSize{Name: "Legal", Width: 612, Height: 1008}
)

var pageSizes = []PageSize{A3, A4, A5, Letter, Legal}

// LookupPageSize finds a preset by name, ignoring case
func LookupPageSize(name string) (PageSize, error) {
	for _, size := range pageSizes {
		if strings.EqualFold(size.Name, name) {
			return size, nil
		}
	}
	return PageSize{}, fmt.Errorf("unknown page size %q", name)
}

func (p PageSize) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%.2fx%.2f", p.Width, p.Height)
}

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// ParseOrientation accepts "portrait"/"p" and "landscape"/"l"
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "portrait", "p":
		return Portrait, nil
	case "landscape", "l":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Rotation is the page /Rotate value a viewer applies to display the orientation.
func (o Orientation) Rotation() int {
	if o == Landscape {
		return 90
	}
	return 0
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
