package cue

import (
	"fmt"
	"time"
)

// Visibility is the binary visibility flag of a computed state.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
)

// String returns "visible" or "hidden".
func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// State is the computed, renderer-agnostic visual state of an element at
// one instant.
type State struct {
	// Opacity in [0, 1]; briefly outside for overshoot effects.
	Opacity float64

	// Transform is the structured 2D transform to apply.
	Transform Transform

	// Visibility gates rendering entirely. Hidden elements should not be
	// drawn at any opacity.
	Visibility Visibility

	// Reveal is the character-reveal fraction in [0, 1]. Only the
	// Typewriter effect moves it below 1.
	Reveal float64
}

// baseline is the state of an unanimated, eligible element.
var baseline = State{Opacity: 1, Transform: Identity, Visibility: Visible, Reveal: 1}

// Baseline returns the state of an element with no active animation:
// fully visible, full opacity, identity transform, fully revealed.
func Baseline() State {
	return baseline
}

// phasePriority is the tie-break order when several phases could apply at
// the same instant: an element exiting mid-loop follows the exit
// trajectory, and a loop overrides a (completed) enter.
var phasePriority = [3]Phase{PhaseExit, PhaseLoop, PhaseEnter}

// ComputeState computes the element's visual state at globalTime. It is a
// pure function: no hidden state, no wall-clock reads, O(1) per call, and
// safe to call concurrently. Repeated calls with identical inputs return
// identical states.
//
// The first active phase in priority order (exit, loop, enter) wins; its
// local progress is eased, fed through the effect catalog, and merged onto
// the baseline. With no phase configured the baseline is returned
// unchanged. Outside the window the element is hidden regardless of
// animation state.
//
// ComputeState fails outright on a descriptor with an unknown effect or
// curve tag; it never returns a partially-filled state. Validate the
// PhaseSet once at the boundary and the error paths here become
// unreachable.
func ComputeState(globalTime time.Duration, set PhaseSet, window *Window) (State, error) {
	if window != nil && !window.Contains(globalTime) {
		st := baseline
		st.Visibility = Hidden
		return st, nil
	}

	for _, phase := range phasePriority {
		d := set.phase(phase)
		if d == nil {
			continue
		}
		pp := ResolvePhase(globalTime, window, phase, set)
		if !pp.Active {
			continue
		}

		eased, err := d.Easing.Ease(pp.Progress)
		if err != nil {
			return State{}, fmt.Errorf("%s phase: %w", phase, err)
		}
		part, err := ApplyEffect(d.Effect, eased)
		if err != nil {
			return State{}, fmt.Errorf("%s phase: %w", phase, err)
		}

		st := baseline
		if part.HasOpacity {
			st.Opacity = part.Opacity
		}
		if part.HasTransform {
			st.Transform = part.Transform
		}
		if part.HasReveal {
			st.Reveal = part.Reveal
		}

		switch phase {
		case PhaseEnter:
			// Hidden through the delay, visible from the first post-delay
			// instant.
			if pp.Pending {
				st.Visibility = Hidden
			}
		case PhaseExit:
			// Completion hides the element for good.
			if pp.Progress >= 1 {
				st.Visibility = Hidden
			}
		case PhaseLoop:
			// Loops oscillate indefinitely and never request hiding.
			st.Visibility = Visible
		}
		return st, nil
	}

	return baseline, nil
}
