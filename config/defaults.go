// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(SectionOverview, Section{
		"panel_height":  16,
		"corner_radius": 12,
		"preview_scale": 0.95,
		"spacing":       20,
		"duration_ms":   300,
	})
	cfg.RegisterDefaults(SectionInput, Section{
		"toggle_key": "F8",
	})
	cfg.RegisterDefaults(SectionRender, Section{
		"backend": "demo",
	})
	cfg.RegisterDefaults(SectionHistory, Section{
		"enabled": true,
		"path":    "",
	})
}
