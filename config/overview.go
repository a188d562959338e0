// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/overview.go
// Summary: Typed accessors bridging the config store to engine options.

package config

import (
	"panorama/overview"
)

// OverviewOptions builds engine options from the overview config section.
func OverviewOptions() overview.Options {
	cfg := System()
	def := overview.DefaultOptions()
	return overview.Options{
		PanelHeight:       cfg.GetFloat(SectionOverview, "panel_height", def.PanelHeight),
		CornerRadius:      cfg.GetFloat(SectionOverview, "corner_radius", def.CornerRadius),
		PreviewScale:      cfg.GetFloat(SectionOverview, "preview_scale", def.PreviewScale),
		Spacing:           cfg.GetFloat(SectionOverview, "spacing", def.Spacing),
		AnimationDuration: cfg.GetDuration(SectionOverview, "duration_ms", def.AnimationDuration),
	}
}

// RenderBackend returns the configured render backend name.
func RenderBackend() string {
	return System().GetString(SectionRender, "backend", "demo")
}

// HistoryEnabled reports whether session history persistence is on.
func HistoryEnabled() bool {
	return System().GetBool(SectionHistory, "enabled", true)
}

// HistoryPath returns the configured history database path; empty means
// the default location under the user config dir.
func HistoryPath() string {
	return System().GetString(SectionHistory, "path", "")
}

// ToggleKey returns the configured overview toggle key name.
func ToggleKey() string {
	return System().GetString(SectionInput, "toggle_key", "F8")
}
