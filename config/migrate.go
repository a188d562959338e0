// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Legacy config migration helpers.

package config

// migrateFromLegacy pulls sections from the pre-rename config.json into a
// fresh system config. Only keys the new config does not already carry
// are copied.
func migrateFromLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	legacyPath, err := legacyConfigPath()
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(legacyPath)
	if err != nil {
		return false, err
	}
	if !exists || legacy == nil {
		return false, nil
	}

	migrated := false
	for _, name := range []string{SectionOverview, SectionInput, SectionRender, SectionHistory} {
		if copySection(cfg, legacy, name) {
			migrated = true
		}
	}

	// The flat backend key predates the render section.
	if _, ok := cfg[SectionRender]; !ok {
		if val, ok := legacy["backend"]; ok {
			cfg[SectionRender] = Section{"backend": val}
			migrated = true
		}
	}
	return migrated, nil
}

func copySection(dst Config, src Config, name string) bool {
	if dst == nil || src == nil || name == "" {
		return false
	}
	if _, ok := dst[name]; ok {
		return false
	}
	if section, ok := src[name]; ok {
		dst[name] = section
		return true
	}
	return false
}
