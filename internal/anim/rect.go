// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/rect.go
// Summary: Animated rectangle composed of four scalar animations.
// Usage: Window slots and the desktop preview animate through this type.

package anim

import "time"

// Rect animates x, y, width, and height independently under one shared
// curve and duration. Running is the logical OR of its components.
type Rect struct {
	X, Y, W, H Scalar
}

// NewRect returns a settled rect holding the given geometry.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: NewScalar(x),
		Y: NewScalar(y),
		W: NewScalar(w),
		H: NewScalar(h),
	}
}

// SetConfig assigns the easing curve and duration to all four components.
func (r *Rect) SetConfig(curve *Curve, duration time.Duration) {
	r.X.SetConfig(curve, duration)
	r.Y.SetConfig(curve, duration)
	r.W.SetConfig(curve, duration)
	r.H.SetConfig(curve, duration)
}

// Warp jumps instantly to the given geometry.
func (r *Rect) Warp(x, y, w, h float64) {
	r.X.Warp(x)
	r.Y.Warp(y)
	r.W.Warp(w)
	r.H.Warp(h)
}

// AnimateTo starts all four components toward the given geometry.
func (r *Rect) AnimateTo(x, y, w, h float64, now time.Time) {
	r.X.AnimateTo(x, now)
	r.Y.AnimateTo(y, now)
	r.W.AnimateTo(w, now)
	r.H.AnimateTo(h, now)
}

// Tick advances all components and reports whether any is still running.
func (r *Rect) Tick(now time.Time) bool {
	a := r.X.Tick(now)
	b := r.Y.Tick(now)
	c := r.W.Tick(now)
	d := r.H.Tick(now)
	return a || b || c || d
}

// Running reports whether any component animation is in flight.
func (r *Rect) Running() bool {
	return r.X.Running() || r.Y.Running() || r.W.Running() || r.H.Running()
}

// Current returns the live interpolated geometry.
func (r *Rect) Current() (x, y, w, h float64) {
	return r.X.Value(), r.Y.Value(), r.W.Value(), r.H.Value()
}

// Goal returns the geometry the rect is animating toward.
func (r *Rect) Goal() (x, y, w, h float64) {
	return r.X.Goal(), r.Y.Goal(), r.W.Goal(), r.H.Goal()
}
