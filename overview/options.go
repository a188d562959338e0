// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/options.go
// Summary: Tunable parameters for the overview engine.
// Usage: Built from the config store by callers; defaults match the
//        upstream desktop shell behaviour.

package overview

import "time"

// Options holds the geometry and timing knobs of one controller.
type Options struct {
	// PanelHeight reserves room at the top of the output.
	PanelHeight float64

	// CornerRadius is the base radius renderers use for rounded previews.
	CornerRadius float64

	// PreviewScale shrinks arranged windows inside their grid cells.
	PreviewScale float64

	// Spacing is the standard inset and inter-cell gap unit.
	Spacing float64

	// AnimationDuration applies to every animated quantity of a session.
	AnimationDuration time.Duration
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		PanelHeight:       16,
		CornerRadius:      12,
		PreviewScale:      0.95,
		Spacing:           20,
		AnimationDuration: 300 * time.Millisecond,
	}
}

// sanitized clamps nonsensical values back to the defaults so a broken
// config cannot produce unbounded or zero-length animations.
func (o Options) sanitized() Options {
	def := DefaultOptions()
	if o.AnimationDuration <= 0 || o.AnimationDuration > 10*time.Second {
		o.AnimationDuration = def.AnimationDuration
	}
	if o.PreviewScale <= 0 || o.PreviewScale > 1 {
		o.PreviewScale = def.PreviewScale
	}
	if o.Spacing < 0 {
		o.Spacing = def.Spacing
	}
	if o.PanelHeight < 0 {
		o.PanelHeight = def.PanelHeight
	}
	if o.CornerRadius < 0 {
		o.CornerRadius = def.CornerRadius
	}
	return o
}
