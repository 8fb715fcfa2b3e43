package cue

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

// Curve is a tagged easing curve from the closed catalog. The zero Curve
// is invalid and fails validation; use Linear for no easing. Curves built
// by the exported constructors and package variables are always valid.
//
// A curve maps normalized progress p in [0, 1] to eased progress. Back and
// Elastic families overshoot [0, 1].
type Curve struct {
	kind curveKind
	name string

	// gween-backed named families.
	fn ease.TweenFunc

	// cubic-bezier control points.
	x1, y1, x2, y2 float64

	// spring parameters.
	frequency, damping float64
}

type curveKind uint8

const (
	curveInvalid curveKind = iota
	curveLinear
	curveBezier
	curveSpring
	curveTween
)

// CSS-equivalent cubic-bezier curves.
var (
	// Linear applies no easing.
	Linear = Curve{kind: curveLinear, name: "linear"}

	// Ease is the CSS default general-purpose curve.
	Ease = namedBezier("ease", 0.25, 0.1, 0.25, 1.0)

	// EaseIn starts slowly and accelerates. Suits elements leaving the screen.
	EaseIn = namedBezier("ease-in", 0.42, 0.0, 1.0, 1.0)

	// EaseOut starts quickly and decelerates. Suits elements entering the screen.
	EaseOut = namedBezier("ease-out", 0.0, 0.0, 0.58, 1.0)

	// EaseInOut starts and ends slowly with acceleration in the middle.
	EaseInOut = namedBezier("ease-in-out", 0.42, 0.0, 0.58, 1.0)

	// Spring is a damped spring settling on 1. Slight overshoot. It is the
	// one spring in the catalog; SpringWith builds custom ones.
	Spring = Curve{kind: curveSpring, name: "spring", frequency: 4.0, damping: 0.8}
)

// Named curve families, evaluated through gween's easing catalog and
// following its In/Out/InOut naming. Back and Elastic overshoot; Bounce
// rebounds off the endpoints.
var (
	InQuad       = tweenCurve("in-quad", ease.InQuad)
	OutQuad      = tweenCurve("out-quad", ease.OutQuad)
	InOutQuad    = tweenCurve("in-out-quad", ease.InOutQuad)
	InCubic      = tweenCurve("in-cubic", ease.InCubic)
	OutCubic     = tweenCurve("out-cubic", ease.OutCubic)
	InOutCubic   = tweenCurve("in-out-cubic", ease.InOutCubic)
	InQuart      = tweenCurve("in-quart", ease.InQuart)
	OutQuart     = tweenCurve("out-quart", ease.OutQuart)
	InOutQuart   = tweenCurve("in-out-quart", ease.InOutQuart)
	InQuint      = tweenCurve("in-quint", ease.InQuint)
	OutQuint     = tweenCurve("out-quint", ease.OutQuint)
	InOutQuint   = tweenCurve("in-out-quint", ease.InOutQuint)
	InSine       = tweenCurve("in-sine", ease.InSine)
	OutSine      = tweenCurve("out-sine", ease.OutSine)
	InOutSine    = tweenCurve("in-out-sine", ease.InOutSine)
	InExpo       = tweenCurve("in-expo", ease.InExpo)
	OutExpo      = tweenCurve("out-expo", ease.OutExpo)
	InOutExpo    = tweenCurve("in-out-expo", ease.InOutExpo)
	InCirc       = tweenCurve("in-circ", ease.InCirc)
	OutCirc      = tweenCurve("out-circ", ease.OutCirc)
	InOutCirc    = tweenCurve("in-out-circ", ease.InOutCirc)
	InBack       = tweenCurve("in-back", ease.InBack)
	OutBack      = tweenCurve("out-back", ease.OutBack)
	InOutBack    = tweenCurve("in-out-back", ease.InOutBack)
	InElastic    = tweenCurve("in-elastic", ease.InElastic)
	OutElastic   = tweenCurve("out-elastic", ease.OutElastic)
	InOutElastic = tweenCurve("in-out-elastic", ease.InOutElastic)
	InBounce     = tweenCurve("in-bounce", ease.InBounce)
	OutBounce    = tweenCurve("out-bounce", ease.OutBounce)
	InOutBounce  = tweenCurve("in-out-bounce", ease.InOutBounce)
)

// CubicBezier returns a custom easing curve matching CSS cubic-bezier().
// The parameters are the two control points (x1,y1) and (x2,y2); the curve
// runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return namedBezier(fmt.Sprintf("cubic-bezier(%g,%g,%g,%g)", x1, y1, x2, y2), x1, y1, x2, y2)
}

// SpringWith returns a spring curve with the given angular frequency and
// damping ratio. Damping below 1 overshoots; 1 is critically damped.
func SpringWith(frequency, damping float64) Curve {
	return Curve{
		kind:      curveSpring,
		name:      fmt.Sprintf("spring(%g,%g)", frequency, damping),
		frequency: frequency,
		damping:   damping,
	}
}

func namedBezier(name string, x1, y1, x2, y2 float64) Curve {
	return Curve{kind: curveBezier, name: name, x1: x1, y1: y1, x2: x2, y2: y2}
}

func tweenCurve(name string, fn ease.TweenFunc) Curve {
	return Curve{kind: curveTween, name: name, fn: fn}
}

// String returns the curve's catalog name, or "unknown" for the zero Curve.
func (c Curve) String() string {
	if c.kind == curveInvalid {
		return "unknown"
	}
	return c.name
}

func (c Curve) valid() bool {
	return c.kind != curveInvalid && (c.kind != curveTween || c.fn != nil)
}

// Ease maps normalized progress p to eased progress. Out-of-range p is
// clamped to [0, 1] before evaluation, so boundary input never fails; the
// zero/unknown Curve fails with ErrUnknownCurve. Deterministic and
// side-effect free.
func (c Curve) Ease(p float64) (float64, error) {
	p = clamp01(p)
	switch c.kind {
	case curveLinear:
		return p, nil
	case curveTween:
		if c.fn == nil {
			break
		}
		return float64(c.fn(float32(p), 0, 1, 1)), nil
	case curveBezier:
		return bezierEase(c.x1, c.y1, c.x2, c.y2, p), nil
	case curveSpring:
		return springEase(c.frequency, c.damping, p), nil
	}
	return 0, fmt.Errorf("cue: ease: %w", ErrUnknownCurve)
}

// springSteps is the fixed internal sample count for the spring curve.
// The spring is integrated from rest over round(p*springSteps) steps, so
// the curve stays a pure function of p with no wall-clock involvement.
const springSteps = 120

func springEase(frequency, damping, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	spring := harmonica.NewSpring(harmonica.FPS(springSteps), frequency, damping)
	steps := int(math.Round(p * springSteps))
	var pos, vel float64
	for i := 0; i < steps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
	}
	return pos
}

// bezierEase solves the cubic bezier for the t where the x polynomial
// equals p, then evaluates the y polynomial there. Newton-Raphson with a
// bisection fallback for flat regions.
func bezierEase(x1, y1, x2, y2, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	u := p
	for i := 0; i < 8; i++ {
		x := bezierSample(x1, x2, u) - p
		if math.Abs(x) < 1e-7 {
			return bezierSample(y1, y2, clamp01(u))
		}
		dx := bezierDerivative(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for i := 0; i < 12; i++ {
		x := bezierSample(x1, x2, u) - p
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return bezierSample(y1, y2, u)
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
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

// curvesByName maps catalog names to curves for the authoring boundary.
var curvesByName = map[string]Curve{}

func init() {
	for _, c := range []Curve{
		Linear, Ease, EaseIn, EaseOut, EaseInOut, Spring,
		InQuad, OutQuad, InOutQuad,
		InCubic, OutCubic, InOutCubic,
		InQuart, OutQuart, InOutQuart,
		InQuint, OutQuint, InOutQuint,
		InSine, OutSine, InOutSine,
		InExpo, OutExpo, InOutExpo,
		InCirc, OutCirc, InOutCirc,
		InBack, OutBack, InOutBack,
		InElastic, OutElastic, InOutElastic,
		InBounce, OutBounce, InOutBounce,
	} {
		curvesByName[c.name] = c
	}
}

// ParseCurve resolves a catalog name (e.g. "ease-out", "spring",
// "out-elastic") to its Curve. Unknown names fail with ErrUnknownCurve.
func ParseCurve(name string) (Curve, error) {
	c, ok := curvesByName[name]
	if !ok {
		return Curve{}, fmt.Errorf("cue: curve %q: %w", name, ErrUnknownCurve)
	}
	return c, nil
}
