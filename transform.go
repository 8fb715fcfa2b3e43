package cue

import "math"

// Transform is a structured, renderer-agnostic 2D transform. Translation
// is expressed in percent of the element's own size (CSS convention, so
// descriptors stay independent of pixel dimensions), rotation and skew in
// degrees, scale as a unitless factor.
type Transform struct {
	TranslateX float64 // percent of element width
	TranslateY float64 // percent of element height
	ScaleX     float64
	ScaleY     float64
	Rotate     float64 // degrees, clockwise
	SkewX      float64 // degrees
	SkewY      float64 // degrees
}

// Identity is the no-op transform.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// IsIdentity reports whether the transform leaves elements untouched.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

const degToRad = math.Pi / 180

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// Affine resolves the transform into a 2D affine matrix [a, b, c, d, tx, ty]
// for an element of the given pixel size, with the pivot at the element
// center. Percent translation becomes pixels against the element's own
// width and height.
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Scale -> Skew -> Rotate -> Translate(center + translation)
func (t Transform) Affine(w, h float64) [6]float64 {
	px := w / 2
	py := h / 2
	x := px + t.TranslateX/100*w
	y := py + t.TranslateY/100*h

	sx := t.ScaleX
	sy := t.ScaleY

	sin, cos := math.Sincos(t.Rotate * degToRad)

	var tanSkewX, tanSkewY float64
	if t.SkewX != 0 {
		tanSkewX = math.Tan(t.SkewX * degToRad)
	}
	if t.SkewY != 0 {
		tanSkewY = math.Tan(t.SkewY * degToRad)
	}

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	//
	// After Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(x, y):
	return [6]float64{ra, rb, rc, rd, rtx + x, rty + y}
}

// MulAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func MulAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// InvertAffine computes the inverse of a 2D affine matrix. Returns the
// identity matrix if the matrix is singular (determinant ~ 0).
func InvertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// ApplyAffine applies an affine matrix to a point.
func ApplyAffine(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TranslationAffine returns a pure pixel translation matrix. Useful for
// positioning an element before composing its Affine with MulAffine.
func TranslationAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}
