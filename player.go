package cue

import "time"

// Player is a thin stateful wrapper over the pure engine for callers that
// want imperative play/pause/seek semantics, such as an interactive
// preview. It stores only the elapsed time it has observed; all state
// computation still flows through ComputeState, so a Player and a direct
// sampler given the same timeline always agree.
//
// There is no global animation manager. A Player is advanced explicitly by
// its owner each frame and is not safe for concurrent use.
type Player struct {
	set     PhaseSet
	window  *Window
	elapsed time.Duration
	paused  bool
}

// NewPlayer validates the phase set eagerly and returns a player at time
// zero. The window is optional; copies are taken, so later mutation of the
// caller's values does not affect the player.
func NewPlayer(set PhaseSet, window *Window) (*Player, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	p := &Player{set: set}
	if window != nil {
		w := *window
		p.window = &w
	}
	return p, nil
}

// Advance moves the playhead forward by dt. Paused players ignore it.
func (p *Player) Advance(dt time.Duration) {
	if p.paused {
		return
	}
	p.elapsed += dt
}

// Seek moves the playhead to an absolute time. Negative times clamp to 0.
func (p *Player) Seek(t time.Duration) {
	if t < 0 {
		t = 0
	}
	p.elapsed = t
}

// Restart rewinds the playhead to zero and resumes playback.
func (p *Player) Restart() {
	p.elapsed = 0
	p.paused = false
}

// Pause stops Advance from moving the playhead.
func (p *Player) Pause() {
	p.paused = true
}

// Play resumes a paused player.
func (p *Player) Play() {
	p.paused = false
}

// Playing reports whether Advance currently moves the playhead.
func (p *Player) Playing() bool {
	return !p.paused
}

// Elapsed returns the current playhead position.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// State computes the visual state at the current playhead. The phase set
// was validated at construction, so this cannot fail.
func (p *Player) State() State {
	st, _ := ComputeState(p.elapsed, p.set, p.window)
	return st
}

// Finished reports whether the playhead has passed the end of the window.
// Players without a window never finish; their loops run indefinitely.
func (p *Player) Finished() bool {
	return p.window != nil && p.elapsed >= p.window.End()
}
