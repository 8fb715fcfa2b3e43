package cue

import (
	"math"
	"strconv"
	"strings"
)

// Style is a computed State projected into backend-agnostic style
// primitives, ready for application by a rendering surface. This is the
// only part of the engine aware of a serialization target; it performs no
// timing or easing logic.
type Style struct {
	Opacity float64

	// Transform is the CSS-syntax transform list, e.g.
	// "translateX(-50%) scale(0.5)". Identity components are omitted;
	// a fully-identity transform serializes as "none".
	Transform string

	// Visibility is "visible" or "hidden".
	Visibility string

	// Reveal is the character-reveal fraction, 1 when not typewriting.
	Reveal float64
}

// ToStyle projects a computed state into style primitives. Pure and total:
// it never fails.
func ToStyle(st State) Style {
	return Style{
		Opacity:    st.Opacity,
		Transform:  transformString(st.Transform),
		Visibility: st.Visibility.String(),
		Reveal:     st.Reveal,
	}
}

func transformString(t Transform) string {
	// Round every component up front so interpolation noise neither leaks
	// into the output nor stops identity components from being omitted.
	tx := roundStyle(t.TranslateX)
	ty := roundStyle(t.TranslateY)
	sx := roundStyle(t.ScaleX)
	sy := roundStyle(t.ScaleY)
	rot := roundStyle(t.Rotate)
	kx := roundStyle(t.SkewX)
	ky := roundStyle(t.SkewY)

	var b strings.Builder
	if tx != 0 {
		writeFunc(&b, "translateX", tx, "%")
	}
	if ty != 0 {
		writeFunc(&b, "translateY", ty, "%")
	}
	if sx != 1 || sy != 1 {
		if sx == sy {
			writeFunc(&b, "scale", sx, "")
		} else {
			if sx != 1 {
				writeFunc(&b, "scaleX", sx, "")
			}
			if sy != 1 {
				writeFunc(&b, "scaleY", sy, "")
			}
		}
	}
	if rot != 0 {
		writeFunc(&b, "rotate", rot, "deg")
	}
	if kx != 0 {
		writeFunc(&b, "skewX", kx, "deg")
	}
	if ky != 0 {
		writeFunc(&b, "skewY", ky, "deg")
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

func writeFunc(b *strings.Builder, name string, v float64, unit string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(formatNumber(v))
	b.WriteString(unit)
	b.WriteByte(')')
}

// roundStyle quantizes a style value to four decimal places, normalizing
// negative zero.
func roundStyle(v float64) float64 {
	v = math.Round(v*10000) / 10000
	if v == 0 {
		return 0
	}
	return v
}

// formatNumber renders a pre-rounded style value without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
