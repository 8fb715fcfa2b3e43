package cue

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned (wrapped) by descriptor validation and the
// engine entry points. All of them are raised at the boundary where a
// descriptor enters the engine: validate a PhaseSet once, then call
// ComputeState as often as you like without re-checking.
var (
	// ErrInvalidDescriptor reports a descriptor with a non-positive
	// duration or a negative delay/stagger.
	ErrInvalidDescriptor = errors.New("invalid animation descriptor")

	// ErrUnknownEffect reports an effect tag outside the closed catalog,
	// which indicates a data or version mismatch between the authoring
	// layer and the engine rather than a runtime fluke.
	ErrUnknownEffect = errors.New("unknown animation effect")

	// ErrUnknownCurve reports an easing curve tag outside the closed
	// catalog.
	ErrUnknownCurve = errors.New("unknown easing curve")
)

// Descriptor is the immutable configuration for one animation phase.
// Descriptors are read-only inputs to the engine and are never mutated
// by it.
type Descriptor struct {
	// Effect selects the animation from the closed catalog.
	Effect Effect

	// Duration is the animation length. Must be positive; a zero duration
	// is rejected by Validate, never silently clamped.
	Duration time.Duration

	// Delay is the time from phase start before the effect begins.
	// Must be non-negative.
	Delay time.Duration

	// Easing shapes the progress curve. The zero Curve is rejected by
	// Validate; use Linear for no easing.
	Easing Curve

	// Stagger is the per-sibling delay offset applied by Staggered when
	// the same descriptor drives a list of elements. Zero disables
	// staggering. Must be non-negative.
	Stagger time.Duration
}

// Validate checks the descriptor against the closed effect and curve
// catalogs and the timing invariants. Errors wrap ErrInvalidDescriptor,
// ErrUnknownEffect, or ErrUnknownCurve.
func (d Descriptor) Validate() error {
	if d.Duration <= 0 {
		return fmt.Errorf("cue: duration %v is not positive: %w", d.Duration, ErrInvalidDescriptor)
	}
	if d.Delay < 0 {
		return fmt.Errorf("cue: delay %v is negative: %w", d.Delay, ErrInvalidDescriptor)
	}
	if d.Stagger < 0 {
		return fmt.Errorf("cue: stagger %v is negative: %w", d.Stagger, ErrInvalidDescriptor)
	}
	if !d.Effect.valid() {
		return fmt.Errorf("cue: effect tag %d: %w", uint8(d.Effect), ErrUnknownEffect)
	}
	if !d.Easing.valid() {
		return fmt.Errorf("cue: %w", ErrUnknownCurve)
	}
	return nil
}

// Staggered returns a copy of the descriptor with the delay increased by
// index times the stagger offset. Index 0 (and any negative index) returns
// the descriptor unchanged. Staggering is purely a caller-side transform:
// each sibling in a batch resolves to an independent ComputeState call
// with its staggered descriptor, and the engine itself has no notion of
// siblings.
func (d Descriptor) Staggered(index int) Descriptor {
	if index <= 0 || d.Stagger <= 0 {
		return d
	}
	d.Delay += time.Duration(index) * d.Stagger
	return d
}

// PhaseSet holds up to three independent optional animation phases for one
// element. At most one phase is active at any instant: Exit (if active)
// wins over Loop, which wins over Enter. Loop only applies once Enter (if
// present) has completed.
type PhaseSet struct {
	Enter *Descriptor
	Exit  *Descriptor
	Loop  *Descriptor
}

// Validate checks every configured phase eagerly so that a caller can
// validate a whole set once and then sample it many times per second.
func (s PhaseSet) Validate() error {
	if s.Enter != nil {
		if err := s.Enter.Validate(); err != nil {
			return fmt.Errorf("enter phase: %w", err)
		}
	}
	if s.Exit != nil {
		if err := s.Exit.Validate(); err != nil {
			return fmt.Errorf("exit phase: %w", err)
		}
	}
	if s.Loop != nil {
		if err := s.Loop.Validate(); err != nil {
			return fmt.Errorf("loop phase: %w", err)
		}
	}
	return nil
}

// phase returns the descriptor slot for p, or nil.
func (s PhaseSet) phase(p Phase) *Descriptor {
	switch p {
	case PhaseEnter:
		return s.Enter
	case PhaseExit:
		return s.Exit
	case PhaseLoop:
		return s.Loop
	}
	return nil
}

// enterEnd returns the element-local time at which the enter phase
// completes, or 0 when no enter phase is configured.
func (s PhaseSet) enterEnd() time.Duration {
	if s.Enter == nil {
		return 0
	}
	return s.Enter.Delay + s.Enter.Duration
}

// Window is the time interval during which an element is eligible to be
// visible at all, independent of its animation phases. Elements without a
// window are always eligible, which is the normal case for a live editor
// preview with no fixed timeline.
type Window struct {
	Start    time.Duration
	Duration time.Duration
}

// End returns the exclusive end of the window.
func (w Window) End() time.Duration {
	return w.Start + w.Duration
}

// Contains reports whether t falls inside the window. The start is
// inclusive, the end exclusive.
func (w Window) Contains(t time.Duration) bool {
	return t >= w.Start && t < w.End()
}
