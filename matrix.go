package gg

import "math"

// Matrix represents a 2D affine transformation matrix:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// applied to a point as (x,y,1) -> (x*A + y*C + E, x*B + y*D + F). Identity
// is A=D=1, all others 0. The matrix decomposes into a linear part (A,B,C,D)
// and a translation (E,F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians). Uses -angle
// internally so that a positive angle rotates clockwise on screen, matching
// the y-down coordinate convention (§4.B).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: -sin, C: sin, D: cos}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: y, C: x, D: 1}
}

// Multiply composes m ∘ other: the result applies other first, then m — so
// Identity().Multiply(translate).Multiply(scale) applies scale, then
// translate, matching the order the caller made the calls.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies only the linear part of the transformation (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns A*D - C*B.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.C*m.B
}

// Invert returns the inverse matrix and true, or the identity matrix and
// false if the matrix is singular (determinant ~0). A non-invertible
// transform reaching the rasterizer is a caller error per §7; callers that
// need defined behavior on singular input check the bool themselves.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	inv := Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
	}
	inv.E = -(inv.A*m.E + inv.C*m.F)
	inv.F = -(inv.B*m.E + inv.D*m.F)
	return inv, true
}

// ExtractLinear returns the matrix with its translation zeroed.
func (m Matrix) ExtractLinear() Matrix {
	m.E, m.F = 0, 0
	return m
}

// ExtractScale returns (scaleX, scaleY): scaleX is the length of the
// transformed X basis vector, scaleY is chosen so that scaleX*scaleY equals
// the determinant (so a flipped axis shows up as a negative scaleY).
func (m Matrix) ExtractScale() (float64, float64) {
	sx := math.Hypot(m.A, m.B)
	if sx == 0 {
		return 0, 0
	}
	return sx, m.Determinant() / sx
}

// ScaleFactor returns a single representative uniform scale factor for the
// matrix's linear part: sqrt(|determinant|). Used to convert device-space
// hairline widths and dash lengths back to a caller-meaningful magnitude
// when the active transform is non-uniform.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 1 && m.E == 0 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}
