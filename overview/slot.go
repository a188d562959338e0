// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/slot.go
// Summary: Per-window bookkeeping while an overview session is live.
// Usage: Created at activation or drag reassignment, destroyed on every
//        session exit path together with its visual transform.

package overview

import (
	"time"

	"panorama/internal/anim"
)

// Opacity applied to windows in the overview; hovering restores full.
const (
	slotRestingOpacity = 0.92
	slotHoverOpacity   = 1.0
)

// WindowSlot tracks one window during a session. Original is captured once
// at creation and never mutated while the slot exists; Target is
// recomputed whenever the workspace's slot set changes.
type WindowSlot struct {
	Handle   WindowHandle
	Title    string
	Original Geometry
	Target   Geometry
	Anim     anim.Rect
	Hovered  bool

	transform Transform
	hidden    bool
}

// newWindowSlot captures a window into a slot, clamping degenerate
// dimensions so later scale math never divides by zero.
func newWindowSlot(info WindowInfo, curve *anim.Curve, duration time.Duration) *WindowSlot {
	orig := info.Geometry
	if orig.W <= 0 {
		orig.W = minWindowSize
	}
	if orig.H <= 0 {
		orig.H = minWindowSize
	}

	s := &WindowSlot{
		Handle:   info.Handle,
		Title:    info.Title,
		Original: orig,
		Target:   orig,
		Anim:     anim.NewRect(orig.X, orig.Y, orig.W, orig.H),
	}
	s.Anim.SetConfig(curve, duration)
	return s
}

// IsHidden reports whether the window is withheld from the composited
// preview, as during a drag.
func (s *WindowSlot) IsHidden() bool { return s.hidden }

// startEnter warps to the original geometry and animates into the target.
func (s *WindowSlot) startEnter(now time.Time) {
	warpRect(&s.Anim, s.Original)
	animateRect(&s.Anim, s.Target, now)
}

// startExit animates from the live geometry back to the original. No warp:
// an interrupted entry reverses from wherever it currently is.
func (s *WindowSlot) startExit(now time.Time) {
	animateRect(&s.Anim, s.Original, now)
}

// Current returns the live animated geometry.
func (s *WindowSlot) Current() Geometry {
	return currentGeometry(&s.Anim)
}

// Running reports whether the slot is still animating.
func (s *WindowSlot) Running() bool {
	return s.Anim.Running()
}

// attachTransform obtains the visual transform for the slot's window.
// Calling it again on a slot that already holds one is a no-op.
func (s *WindowSlot) attachTransform(host TransformHost) {
	if s.transform != nil || host == nil {
		return
	}
	s.transform = host.AttachTransform(s.Handle)
}

// updateTransform pushes the live geometry into the window's visual
// transform as a centered scale plus translation.
func (s *WindowSlot) updateTransform() {
	if s.transform == nil || s.Original.Empty() {
		return
	}

	cur := s.Current()

	scaleX := clampScale(cur.W / s.Original.W)
	scaleY := clampScale(cur.H / s.Original.H)

	origCenter := s.Original.Center()
	curCenter := cur.Center()

	s.transform.SetTranslation(curCenter.X-origCenter.X, curCenter.Y-origCenter.Y)
	s.transform.SetScale(scaleX, scaleY)

	if s.hidden {
		s.transform.SetOpacity(0)
	} else if s.Hovered {
		s.transform.SetOpacity(slotHoverOpacity)
	} else {
		s.transform.SetOpacity(slotRestingOpacity)
	}
}

// resetTransform restores the identity transform before detaching.
func (s *WindowSlot) resetTransform() {
	if s.transform == nil {
		return
	}
	s.transform.SetTranslation(0, 0)
	s.transform.SetScale(1, 1)
	s.transform.SetOpacity(1)
}

// releaseTransform resets and detaches the visual transform. Safe to call
// on every exit path, including slots that never attached one.
func (s *WindowSlot) releaseTransform(host TransformHost) {
	if s.transform == nil {
		return
	}
	s.resetTransform()
	if host != nil {
		host.DetachTransform(s.Handle)
	}
	s.transform = nil
}

// setHidden suppresses the window in the composited preview, used while a
// floating drag thumbnail stands in for it.
func (s *WindowSlot) setHidden(hidden bool) {
	s.hidden = hidden
	s.updateTransform()
}

func clampScale(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 10 {
		return 10
	}
	return v
}
