package cue

import "time"

// Phase identifies one of the three mutually-prioritized animation states
// of an element.
type Phase uint8

const (
	PhaseEnter Phase = iota
	PhaseExit
	PhaseLoop
)

// String returns "enter", "exit", or "loop".
func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseExit:
		return "exit"
	case PhaseLoop:
		return "loop"
	}
	return "unknown"
}

// PhaseProgress is the result of resolving one phase at one instant.
type PhaseProgress struct {
	// Active reports whether this phase governs the element right now.
	Active bool

	// Progress is the local [0, 1] fraction of the phase's duration
	// elapsed, before easing. Loop phases wrap modulo their duration and
	// never reach completion.
	Progress float64

	// Pending reports an active enter phase still inside its delay. The
	// element holds progress 0 and stays hidden until the delay elapses,
	// so nothing unstyled ever flashes on screen.
	Pending bool
}

var inactivePhase = PhaseProgress{}

// ResolvePhase computes whether the given phase is active at globalTime
// and, if so, its local progress.
//
// Window gating takes priority over all animation state: outside the
// window nothing is active, regardless of phase. Enter runs from its delay
// until delay+duration and then completes. Loop starts once enter (if
// configured) has finished, honors its own delay on the first cycle only,
// and thereafter wraps modulo its duration without ever completing. Exit
// is anchored to the end of the window so that it finishes exactly as the
// element's eligibility lapses; without a window there is no anchor and
// exit never activates.
//
// When several phases could apply at the same instant the caller resolves
// them in priority order exit, loop, enter: an element exiting mid-loop
// follows the exit trajectory, not the loop trajectory.
func ResolvePhase(globalTime time.Duration, window *Window, phase Phase, set PhaseSet) PhaseProgress {
	if window != nil && !window.Contains(globalTime) {
		return inactivePhase
	}

	local := globalTime
	if window != nil {
		local = globalTime - window.Start
	}

	d := set.phase(phase)
	if d == nil {
		return inactivePhase
	}

	switch phase {
	case PhaseEnter:
		return resolveEnter(local, d)
	case PhaseLoop:
		return resolveLoop(local, d, set.enterEnd())
	case PhaseExit:
		if window == nil {
			return inactivePhase
		}
		return resolveExit(local, d, window.Duration)
	}
	return inactivePhase
}

func resolveEnter(local time.Duration, d *Descriptor) PhaseProgress {
	if local < d.Delay {
		return PhaseProgress{Active: true, Progress: 0, Pending: true}
	}
	if local >= d.Delay+d.Duration {
		// Enter complete; loop (if any) takes over.
		return inactivePhase
	}
	return PhaseProgress{Active: true, Progress: fraction(local-d.Delay, d.Duration)}
}

func resolveLoop(local time.Duration, d *Descriptor, enterEnd time.Duration) PhaseProgress {
	if d.Duration <= 0 {
		// Rejected by Validate; keep the modulo below well-defined for
		// callers that skipped it.
		return inactivePhase
	}
	if local < enterEnd {
		return inactivePhase
	}
	start := enterEnd + d.Delay
	if local < start {
		// First cycle honors the delay; the element holds the cycle start.
		return PhaseProgress{Active: true, Progress: 0}
	}
	phaseT := (local - start) % d.Duration
	return PhaseProgress{Active: true, Progress: fraction(phaseT, d.Duration)}
}

func resolveExit(local time.Duration, d *Descriptor, windowDuration time.Duration) PhaseProgress {
	// Anchored to the window end: delay + duration fit exactly before it.
	anchor := windowDuration - d.Duration - d.Delay
	if local < anchor {
		return inactivePhase
	}
	exitLocal := local - anchor
	if exitLocal < d.Delay {
		return PhaseProgress{Active: true, Progress: 0}
	}
	return PhaseProgress{Active: true, Progress: fraction(exitLocal-d.Delay, d.Duration)}
}

// fraction returns elapsed/duration clamped to [0, 1].
func fraction(elapsed, duration time.Duration) float64 {
	return clamp01(float64(elapsed) / float64(duration))
}
