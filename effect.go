package cue

import "fmt"

// Effect selects an animation from the closed catalog. The zero value is
// invalid; descriptors referencing it (or any tag outside the catalog)
// fail validation with ErrUnknownEffect instead of silently falling
// through to a no-op.
type Effect uint8

const (
	effectInvalid Effect = iota

	// FadeIn ramps opacity from 0 to 1: opacity = p.
	FadeIn
	// FadeOut ramps opacity from 1 to 0: opacity = 1 - p.
	FadeOut

	// SlideInLeft enters from the left: translateX = lerp(-100%, 0%, p).
	SlideInLeft
	// SlideInRight enters from the right: translateX = lerp(100%, 0%, p).
	SlideInRight
	// SlideInUp enters from below, moving up: translateY = lerp(100%, 0%, p).
	SlideInUp
	// SlideInDown enters from above, moving down: translateY = lerp(-100%, 0%, p).
	SlideInDown
	// SlideOutLeft exits to the left: translateX = lerp(0%, -100%, p).
	SlideOutLeft
	// SlideOutRight exits to the right: translateX = lerp(0%, 100%, p).
	SlideOutRight
	// SlideOutUp exits upward: translateY = lerp(0%, -100%, p).
	SlideOutUp
	// SlideOutDown exits downward: translateY = lerp(0%, 100%, p).
	SlideOutDown

	// ScaleIn grows from nothing: scale = lerp(0, 1, p).
	ScaleIn
	// ScaleOut shrinks to nothing: scale = lerp(1, 0, p).
	ScaleOut

	// RotateIn spins in while fading: rotate = lerp(-180deg, 0, p), opacity = p.
	RotateIn
	// RotateOut spins out while fading: rotate = lerp(0, 180deg, p), opacity = 1 - p.
	RotateOut

	// BounceIn pops in with overshoot. Keyframed scale and opacity.
	BounceIn
	// BounceOut winds up then shrinks away. Keyframed scale and opacity.
	BounceOut

	// Pulse swells to 1.05x and back. Loop-friendly.
	Pulse
	// Shake jitters horizontally over five equal sub-intervals.
	Shake
	// Wobble sways with decaying translation and tilt.
	Wobble
	// Tada celebrates: shrink, swell, and waggle.
	Tada
	// Jello wobbles via decaying skew on both axes.
	Jello
	// RubberBand stretches wide, squashes tall, and settles.
	RubberBand

	// Typewriter reveals content character by character: reveal = p.
	// A distinct output shape; touches neither opacity nor transform.
	Typewriter

	effectCount // keep last
)

func (e Effect) valid() bool {
	return e > effectInvalid && e < effectCount
}

var effectNames = map[Effect]string{
	FadeIn:        "fade-in",
	FadeOut:       "fade-out",
	SlideInLeft:   "slide-in-left",
	SlideInRight:  "slide-in-right",
	SlideInUp:     "slide-in-up",
	SlideInDown:   "slide-in-down",
	SlideOutLeft:  "slide-out-left",
	SlideOutRight: "slide-out-right",
	SlideOutUp:    "slide-out-up",
	SlideOutDown:  "slide-out-down",
	ScaleIn:       "scale-in",
	ScaleOut:      "scale-out",
	RotateIn:      "rotate-in",
	RotateOut:     "rotate-out",
	BounceIn:      "bounce-in",
	BounceOut:     "bounce-out",
	Pulse:         "pulse",
	Shake:         "shake",
	Wobble:        "wobble",
	Tada:          "tada",
	Jello:         "jello",
	RubberBand:    "rubber-band",
	Typewriter:    "typewriter",
}

var effectsByName = map[string]Effect{}

func init() {
	for e, name := range effectNames {
		effectsByName[name] = e
	}
}

// String returns the effect's catalog name, or "unknown" for tags outside
// the catalog.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEffect resolves a catalog name (e.g. "slide-in-left") to its
// Effect. Unknown names fail with ErrUnknownEffect.
func ParseEffect(name string) (Effect, error) {
	e, ok := effectsByName[name]
	if !ok {
		return effectInvalid, fmt.Errorf("cue: effect %q: %w", name, ErrUnknownEffect)
	}
	return e, nil
}

// Partial is the contribution of one effect at one instant. Untouched
// channels keep their baseline values when merged; the Has flags
// distinguish "effect left this alone" from "effect set this to zero".
type Partial struct {
	Opacity    float64
	HasOpacity bool

	Transform    Transform
	HasTransform bool

	// Reveal is the character-reveal fraction for Typewriter.
	Reveal    float64
	HasReveal bool
}

// lerp is the one interpolation formula the catalog is built on:
// lerp(a, b, p) = a + (b-a)*p.
func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

// keyframe is one breakpoint of a piecewise-linear track. Offsets are
// fractions of eased progress.
type keyframe struct {
	at, v float64
}

// sampleTrack evaluates a keyframe track at p with linear interpolation
// between breakpoints. Tracks span [0, 1] with sorted offsets.
func sampleTrack(track []keyframe, p float64) float64 {
	if p <= track[0].at {
		return track[0].v
	}
	for i := 1; i < len(track); i++ {
		k := track[i]
		if p <= k.at {
			prev := track[i-1]
			span := k.at - prev.at
			if span <= 0 {
				return k.v
			}
			return lerp(prev.v, k.v, (p-prev.at)/span)
		}
	}
	return track[len(track)-1].v
}

// Composite effect keyframe tables. These breakpoints are the
// authoritative contract for the composite effects: any independent
// implementation interpolating linearly between them is visually
// identical.
var (
	// Shake: translateX (%) over 5 equal sub-intervals, alternating sign.
	shakeTranslateX = []keyframe{{0, 0}, {0.2, -10}, {0.4, 10}, {0.6, -10}, {0.8, 10}, {1, 0}}

	// Pulse: uniform scale swell.
	pulseScale = []keyframe{{0, 1}, {0.5, 1.05}, {1, 1}}

	// BounceIn: overshooting scale with the fade finishing at 60%.
	bounceInScale   = []keyframe{{0, 0.3}, {0.2, 1.1}, {0.4, 0.9}, {0.6, 1.03}, {0.8, 0.97}, {1, 1}}
	bounceInOpacity = []keyframe{{0, 0}, {0.6, 1}, {1, 1}}

	// BounceOut: brief wind-up swell, then shrink and fade.
	bounceOutScale   = []keyframe{{0, 1}, {0.2, 0.9}, {0.5, 1.11}, {0.55, 1.11}, {1, 0.3}}
	bounceOutOpacity = []keyframe{{0, 1}, {0.55, 1}, {1, 0}}

	// Wobble: decaying horizontal sway (%) with matching tilt (deg).
	wobbleTranslateX = []keyframe{{0, 0}, {0.15, -25}, {0.3, 20}, {0.45, -15}, {0.6, 10}, {0.75, -5}, {1, 0}}
	wobbleRotate     = []keyframe{{0, 0}, {0.15, -5}, {0.3, 3}, {0.45, -3}, {0.6, 2}, {0.75, -1}, {1, 0}}

	// Tada: shrink, swell, and alternate +-3deg waggle while swollen.
	tadaScale  = []keyframe{{0, 1}, {0.1, 0.9}, {0.2, 0.9}, {0.3, 1.1}, {0.9, 1.1}, {1, 1}}
	tadaRotate = []keyframe{
		{0, 0}, {0.1, -3}, {0.2, -3}, {0.3, 3}, {0.4, -3}, {0.5, 3},
		{0.6, -3}, {0.7, 3}, {0.8, -3}, {0.9, 3}, {1, 0},
	}

	// Jello: skew on both axes, halving in amplitude each step.
	jelloSkew = []keyframe{
		{0, 0}, {0.111, 0}, {0.222, -12.5}, {0.333, 6.25}, {0.444, -3.125},
		{0.555, 1.5625}, {0.666, -0.78125}, {0.777, 0.390625},
		{0.888, -0.1953125}, {1, 0},
	}

	// RubberBand: opposing stretch/squash on X and Y.
	rubberBandScaleX = []keyframe{{0, 1}, {0.3, 1.25}, {0.4, 0.75}, {0.5, 1.15}, {0.65, 0.95}, {0.75, 1.05}, {1, 1}}
	rubberBandScaleY = []keyframe{{0, 1}, {0.3, 0.75}, {0.4, 1.25}, {0.5, 0.85}, {0.65, 1.05}, {0.75, 0.95}, {1, 1}}
)

// ApplyEffect maps eased progress p to the effect's partial visual state.
// Closed-form for the simple effects, piecewise-linear keyframe tracks for
// the composites. Unknown tags fail with ErrUnknownEffect; nothing is ever
// "filled in" on failure.
func ApplyEffect(e Effect, p float64) (Partial, error) {
	switch e {
	case FadeIn:
		return opacityPartial(p), nil
	case FadeOut:
		return opacityPartial(1 - p), nil

	case SlideInLeft:
		return translatePartial(lerp(-100, 0, p), 0), nil
	case SlideInRight:
		return translatePartial(lerp(100, 0, p), 0), nil
	case SlideInUp:
		return translatePartial(0, lerp(100, 0, p)), nil
	case SlideInDown:
		return translatePartial(0, lerp(-100, 0, p)), nil
	case SlideOutLeft:
		return translatePartial(lerp(0, -100, p), 0), nil
	case SlideOutRight:
		return translatePartial(lerp(0, 100, p), 0), nil
	case SlideOutUp:
		return translatePartial(0, lerp(0, -100, p)), nil
	case SlideOutDown:
		return translatePartial(0, lerp(0, 100, p)), nil

	case ScaleIn:
		return scalePartial(lerp(0, 1, p), lerp(0, 1, p)), nil
	case ScaleOut:
		return scalePartial(lerp(1, 0, p), lerp(1, 0, p)), nil

	case RotateIn:
		pt := rotatePartial(lerp(-180, 0, p))
		pt.Opacity, pt.HasOpacity = p, true
		return pt, nil
	case RotateOut:
		pt := rotatePartial(lerp(0, 180, p))
		pt.Opacity, pt.HasOpacity = 1-p, true
		return pt, nil

	case BounceIn:
		s := sampleTrack(bounceInScale, p)
		pt := scalePartial(s, s)
		pt.Opacity, pt.HasOpacity = sampleTrack(bounceInOpacity, p), true
		return pt, nil
	case BounceOut:
		s := sampleTrack(bounceOutScale, p)
		pt := scalePartial(s, s)
		pt.Opacity, pt.HasOpacity = sampleTrack(bounceOutOpacity, p), true
		return pt, nil

	case Pulse:
		s := sampleTrack(pulseScale, p)
		return scalePartial(s, s), nil
	case Shake:
		return translatePartial(sampleTrack(shakeTranslateX, p), 0), nil
	case Wobble:
		pt := translatePartial(sampleTrack(wobbleTranslateX, p), 0)
		pt.Transform.Rotate = sampleTrack(wobbleRotate, p)
		return pt, nil
	case Tada:
		s := sampleTrack(tadaScale, p)
		pt := scalePartial(s, s)
		pt.Transform.Rotate = sampleTrack(tadaRotate, p)
		return pt, nil
	case Jello:
		skew := sampleTrack(jelloSkew, p)
		t := Identity
		t.SkewX = skew
		t.SkewY = skew
		return Partial{Transform: t, HasTransform: true}, nil
	case RubberBand:
		return scalePartial(sampleTrack(rubberBandScaleX, p), sampleTrack(rubberBandScaleY, p)), nil

	case Typewriter:
		return Partial{Reveal: p, HasReveal: true}, nil
	}
	return Partial{}, fmt.Errorf("cue: apply effect tag %d: %w", uint8(e), ErrUnknownEffect)
}

func opacityPartial(v float64) Partial {
	return Partial{Opacity: v, HasOpacity: true}
}

func translatePartial(x, y float64) Partial {
	t := Identity
	t.TranslateX = x
	t.TranslateY = y
	return Partial{Transform: t, HasTransform: true}
}

func scalePartial(sx, sy float64) Partial {
	t := Identity
	t.ScaleX = sx
	t.ScaleY = sy
	return Partial{Transform: t, HasTransform: true}
}

func rotatePartial(deg float64) Partial {
	t := Identity
	t.Rotate = deg
	return Partial{Transform: t, HasTransform: true}
}
