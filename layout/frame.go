package layout

import (
	"fmt"

	"github.com/flanksource/tablepdf/api"
)

// Point is a coordinate in PDF user space: origin bottom-left, y growing upwards.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Matrix is a PDF affine transform [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Landscape maps content drawn in a rotated, landscape-shaped frame onto an
// unrotated portrait page of the given width.
func Landscape(pageWidth float64) Matrix {
	return Matrix{A: 0, B: 1, C: -1, D: 0, E: pageWidth, F: 0}
}

func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Multiply returns the transform that applies m first and then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// Frame is the content coordinate frame of one page. Width and Height are as the
// reader sees the page; Transform maps content coordinates onto the unrotated media box.
type Frame struct {
	Width     float64
	Height    float64
	Transform Matrix
}

// FrameFor returns the content frame for a portrait media box shown in the given orientation.
func FrameFor(page api.PageSize, orientation api.Orientation) Frame {
	if orientation == api.Landscape {
		return Frame{Width: page.Height, Height: page.Width, Transform: Landscape(page.Width)}
	}
	return Frame{Width: page.Width, Height: page.Height, Transform: Identity()}
}
