// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/scalar.go
// Summary: Single interpolated value driven by an easing curve and a duration.
// Usage: Building block for animated rectangles, scroll offsets, and alpha fades.

package anim

import "time"

// Scalar is one animated float. It is advanced cooperatively by Tick calls
// from the host frame loop; there is no internal goroutine.
//
// Invariant: when running is false, value == start == goal.
type Scalar struct {
	value     float64
	start     float64
	goal      float64
	curve     *Curve
	duration  time.Duration
	running   bool
	startTime time.Time
}

// NewScalar returns a settled scalar holding the initial value.
func NewScalar(initial float64) Scalar {
	return Scalar{value: initial, start: initial, goal: initial}
}

// SetConfig assigns the easing curve and duration used by later animations.
func (s *Scalar) SetConfig(curve *Curve, duration time.Duration) {
	s.curve = curve
	s.duration = duration
}

// Warp jumps instantly to v and stops any running animation.
func (s *Scalar) Warp(v float64) {
	s.value = v
	s.start = v
	s.goal = v
	s.running = false
}

// AnimateTo starts an animation from the current value toward goal.
// A non-positive duration degenerates to a warp.
func (s *Scalar) AnimateTo(goal float64, now time.Time) {
	if s.duration <= 0 {
		s.Warp(goal)
		return
	}
	s.start = s.value
	s.goal = goal
	s.startTime = now
	s.running = true
}

// Tick advances the value to the given time and reports whether the
// animation is still running afterwards. On completion the value snaps to
// the goal exactly; downstream settledness checks rely on that.
func (s *Scalar) Tick(now time.Time) bool {
	if !s.running {
		return false
	}

	progress := clamp(float64(now.Sub(s.startTime))/float64(s.duration), 0, 1)
	eased := progress
	if s.curve != nil {
		eased = s.curve.Evaluate(progress)
	}
	s.value = s.start + (s.goal-s.start)*eased

	if progress >= 1 {
		s.value = s.goal
		s.start = s.goal
		s.running = false
		return false
	}
	return true
}

// Value returns the current interpolated value.
func (s *Scalar) Value() float64 { return s.value }

// Goal returns the animation target.
func (s *Scalar) Goal() float64 { return s.goal }

// Running reports whether an animation is in flight.
func (s *Scalar) Running() bool { return s.running }
