// Package cue is a deterministic animation timeline engine.
//
// Cue computes the exact visual state (opacity, 2D transform, visibility,
// character reveal) an element should have at any point in continuous time,
// independent of any rendering backend. The same inputs always produce the
// same [State], so one engine can drive both a live interactive preview
// (time advances via a clock) and a frame-exact offline render (time is
// sampled at fixed intervals).
//
// # Quick start
//
// Describe an element's animation phases with a [PhaseSet], validate it
// once, then sample it as often as you like:
//
//	set := cue.PhaseSet{
//		Enter: &cue.Descriptor{Effect: cue.SlideInLeft, Duration: 500 * time.Millisecond, Easing: cue.EaseOut},
//		Loop:  &cue.Descriptor{Effect: cue.Pulse, Duration: 1200 * time.Millisecond, Easing: cue.InOutSine},
//		Exit:  &cue.Descriptor{Effect: cue.FadeOut, Duration: 400 * time.Millisecond, Easing: cue.EaseIn},
//	}
//	if err := set.Validate(); err != nil {
//		// authoring-time error, not a runtime alert
//	}
//
//	win := cue.Window{Start: 0, Duration: 3 * time.Second}
//	st, _ := cue.ComputeState(1500*time.Millisecond, set, &win)
//	style := cue.ToStyle(st)
//
// # Phases
//
// A [PhaseSet] holds up to three independent [Descriptor] slots: Enter,
// Exit, and Loop. At most one is active at any instant. Loop only applies
// once Enter (if present) has completed; Exit is anchored to the end of the
// element's [Window] and always wins over Loop, which wins over Enter.
//
// # Purity
//
// Every entry point is a pure function of its arguments: no hidden state,
// no wall-clock reads, no I/O. [ComputeState] is O(1) per call and safe to
// invoke from any goroutine without synchronization. Callers wanting
// imperative play/pause semantics can use the thin [Player] wrapper, which
// stores only elapsed time.
//
// # Rendering
//
// The engine has no opinion about how states are applied. [ToStyle]
// projects a [State] into CSS-syntax style primitives; the cue/preview
// submodule adapts states to [Ebitengine] draw options for on-screen
// playback; anything that can consume an affine matrix (see
// [Transform.Affine]) can render cue output.
//
// [Ebitengine]: https://ebitengine.org
package cue
