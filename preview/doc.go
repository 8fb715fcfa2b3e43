// Package preview adapts cue visual states to [Ebitengine] draw options
// for live, clock-driven playback.
//
// The engine itself is backend-agnostic; this package is the bridge for
// callers rendering with ebiten. Each frame, compute a state and ask for
// its draw options:
//
//	st := player.State()
//	if op, ok := preview.DrawOptions(st, w, h); ok {
//		screen.DrawImage(img, op)
//	}
//
// Hidden states yield ok == false and must not be drawn at all; the
// typewriter reveal fraction is reported by [RevealCount] for text
// surfaces.
//
// A runnable demo lives in preview/demo.
//
// [Ebitengine]: https://ebitengine.org
package preview
