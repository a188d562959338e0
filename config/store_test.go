// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.Section("overview") == nil {
		t.Fatalf("expected overview section to be set")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section("overview") == nil {
		t.Fatalf("expected overview section on disk")
	}
	if disk.Section("render") == nil {
		t.Fatalf("expected render section on disk")
	}
}

func TestSaveWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	Set(Config{
		"render": map[string]interface{}{
			"backend": "x11",
		},
	})
	if err := Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString("render", "backend", ""); got != "x11" {
		t.Fatalf("expected backend to be x11, got %q", got)
	}
}

func TestMigrationFromLegacy(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	cfgRoot := filepath.Join(root, "panorama")
	if err := os.MkdirAll(cfgRoot, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := writeConfig(filepath.Join(cfgRoot, "config.json"), Config{
		"overview": map[string]interface{}{
			"spacing":     32,
			"duration_ms": 200,
		},
		"backend": "x11",
	}); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}

	cfg := System()
	if got := cfg.GetFloat("overview", "spacing", 0); got != 32 {
		t.Fatalf("expected spacing migration, got %f", got)
	}
	if got := cfg.GetString("render", "backend", ""); got != "x11" {
		t.Fatalf("expected flat backend key migration, got %q", got)
	}
	if got := cfg.GetDuration("overview", "duration_ms", 0); got != 200*time.Millisecond {
		t.Fatalf("expected duration 200ms, got %v", got)
	}
}

func TestOverviewOptionsFromConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	Set(Config{
		"overview": map[string]interface{}{
			"panel_height": 24,
			"spacing":      10,
			"duration_ms":  150,
		},
	})

	opts := OverviewOptions()
	if opts.PanelHeight != 24 || opts.Spacing != 10 {
		t.Fatalf("options did not pick up config values: %+v", opts)
	}
	if opts.AnimationDuration != 150*time.Millisecond {
		t.Fatalf("duration %v, want 150ms", opts.AnimationDuration)
	}
}
