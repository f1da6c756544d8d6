package pdf

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/layout"
)

// standardBBox is the FontBBox (ury - lly) from the Adobe AFM files of the base 14 fonts
var standardBBox = map[string]float64{
	"helvetica":             1156, // -166 -225 1000 931
	"helvetica-bold":        1190, // -170 -228 1003 962
	"helvetica-oblique":     1156,
	"helvetica-boldoblique": 1190,
	"times":                 1116, // -168 -218 1000 898
	"times-roman":           1116,
	"times-bold":            1153, // -168 -218 1000 935
	"times-italic":          1100, // -169 -217 1010 883
	"times-bolditalic":      1139, // -200 -218 996 921
	"courier":               1055, // -23 -250 715 805
	"courier-bold":          1051, // -113 -250 749 801
	"courier-oblique":       1055,
	"courier-boldoblique":   1051,
}

// coreFamily maps the names people use for the base fonts onto the family fpdf knows
func coreFamily(family string) string {
	switch f := strings.ToLower(strings.TrimSpace(family)); f {
	case "", "arial", "helvetica":
		return "helvetica"
	case "times", "times-roman", "times new roman":
		return "times"
	case "courier", "courier new":
		return "courier"
	default:
		return f
	}
}

// StandardFonts reports metrics of the base 14 PDF fonts
type StandardFonts struct{}

func (StandardFonts) BoundingBoxHeight(f api.Font) (float64, error) {
	if h, ok := standardBBox[strings.ToLower(f.Family)]; ok {
		return h, nil
	}
	if h, ok := standardBBox[coreFamily(f.Family)]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("%q is not a standard PDF font", f.Family)
}

// TrueTypeMetrics reads the bounding box of a TrueType/OpenType file
type TrueTypeMetrics struct{}

func (TrueTypeMetrics) BoundingBoxHeight(f api.Font) (float64, error) {
	data, err := os.ReadFile(f.File)
	if err != nil {
		return 0, err
	}
	return BoundingBoxHeight(data)
}

// BoundingBoxHeight returns the union of all glyph bounds of a font, scaled to 1000 units per em.
func BoundingBoxHeight(data []byte) (float64, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse font: %w", err)
	}
	upem := parsed.UnitsPerEm()
	if upem == 0 {
		return 0, fmt.Errorf("font has no units per em")
	}
	var buf sfnt.Buffer
	// at ppem == units per em the bounds come back in font units
	bounds, err := parsed.Bounds(&buf, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("font bounds: %w", err)
	}
	height := float64(bounds.Max.Y-bounds.Min.Y) / 64
	return height * 1000 / float64(upem), nil
}

// Fonts resolves standard fonts from the AFM table and TrueType fonts from their files
func Fonts() layout.FontMetrics {
	return layout.FontMetricsFunc(func(f api.Font) (float64, error) {
		if f.IsTrueType() {
			return TrueTypeMetrics{}.BoundingBoxHeight(f)
		}
		return StandardFonts{}.BoundingBoxHeight(f)
	})
}
