package preview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/cue"
)

// GeoM converts a cue transform into an ebiten geometry matrix for an
// element of the given pixel size. The matrix maps element-local
// coordinates (origin at the top-left, pivot at the center) into the
// element's placed space; compose with a screen-position translation
// afterwards.
func GeoM(t cue.Transform, w, h float64) ebiten.GeoM {
	m := t.Affine(w, h)
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// DrawOptions builds draw options applying the state's transform and
// opacity for an element of the given pixel size. Returns ok == false for
// hidden states, which must not be drawn at any opacity.
func DrawOptions(st cue.State, w, h float64) (*ebiten.DrawImageOptions, bool) {
	if st.Visibility == cue.Hidden {
		return nil, false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(st.Transform, w, h)
	op.ColorScale.ScaleAlpha(float32(clamp01(st.Opacity)))
	return op, true
}

// RevealCount maps the state's typewriter reveal fraction onto a rune
// count, for text surfaces that reveal content character by character.
func RevealCount(st cue.State, total int) int {
	if total <= 0 {
		return 0
	}
	n := int(st.Reveal * float64(total))
	if n < 0 {
		return 0
	}
	if n > total {
		return total
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
