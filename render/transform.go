// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/transform.go
// Summary: Transform, capture, and snapshot hosts for the terminal renderer.
// Notes: A terminal has no compositor, so transforms are plain value
//        holders the renderer and tests can read back, and captures are
//        lifetime bookkeeping only.

package render

import (
	"sync"

	"panorama/overview"
)

// BoxTransform holds the visual transform of one window box.
type BoxTransform struct {
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
	Opacity                float64
}

func (t *BoxTransform) SetTranslation(x, y float64) { t.TranslateX, t.TranslateY = x, y }
func (t *BoxTransform) SetScale(sx, sy float64)     { t.ScaleX, t.ScaleY = sx, sy }
func (t *BoxTransform) SetOpacity(alpha float64)    { t.Opacity = alpha }

// TransformSet implements the engine's transform, capture, and snapshot
// hosts for the terminal backends.
type TransformSet struct {
	mu         sync.Mutex
	transforms map[overview.WindowHandle]*BoxTransform
	captures   map[int]bool
	snapshots  []overview.WindowHandle
}

// NewTransformSet returns an empty transform registry.
func NewTransformSet() *TransformSet {
	return &TransformSet{
		transforms: make(map[overview.WindowHandle]*BoxTransform),
		captures:   make(map[int]bool),
	}
}

// AttachTransform returns the window's transform, creating one on first use.
func (s *TransformSet) AttachTransform(handle overview.WindowHandle) overview.Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.transforms[handle]; ok {
		return tr
	}
	tr := &BoxTransform{ScaleX: 1, ScaleY: 1, Opacity: 1}
	s.transforms[handle] = tr
	return tr
}

// DetachTransform drops the window's transform.
func (s *TransformSet) DetachTransform(handle overview.WindowHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transforms, handle)
}

// Transform returns the live transform of a window, if any.
func (s *TransformSet) Transform(handle overview.WindowHandle) (*BoxTransform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.transforms[handle]
	return tr, ok
}

// Attached returns the number of live transforms.
func (s *TransformSet) Attached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transforms)
}

// EnsureCapture marks a workspace as having a capture buffer.
func (s *TransformSet) EnsureCapture(workspace int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captures[workspace] = true
}

// ReleaseCaptures drops every capture buffer.
func (s *TransformSet) ReleaseCaptures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captures = make(map[int]bool)
}

// Captured reports whether a workspace currently holds a capture buffer.
func (s *TransformSet) Captured(workspace int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captures[workspace]
}

// RequestWindowSnapshot records a snapshot request for a dragged window.
func (s *TransformSet) RequestWindowSnapshot(handle overview.WindowHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, handle)
}
