// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"testing"

	"panorama/overview"
)

func TestMoveWindowAcrossThePlane(t *testing.T) {
	sys := NewWindowSystem(3, 1)
	h := sys.AddWindow(0, "term", overview.Geometry{X: 100, Y: 50, W: 600, H: 400})

	// A plane position two output strides to the right lands on the
	// third workspace at the same local spot.
	if err := sys.MoveWindow(h, 100+2*1600, 50); err != nil {
		t.Fatalf("MoveWindow: %v", err)
	}

	if wins := sys.Windows(0); len(wins) != 0 {
		t.Fatalf("window still on workspace 0: %v", wins)
	}
	wins := sys.Windows(2)
	if len(wins) != 1 {
		t.Fatalf("window not on workspace 2")
	}
	if wins[0].Geometry.X != 100 || wins[0].Geometry.Y != 50 {
		t.Fatalf("local geometry changed: %+v", wins[0].Geometry)
	}
}

func TestMoveWindowClampsToGrid(t *testing.T) {
	sys := NewWindowSystem(2, 1)
	h := sys.AddWindow(0, "term", overview.Geometry{X: 0, Y: 0, W: 100, H: 100})

	if err := sys.MoveWindow(h, -500, 50); err != nil {
		t.Fatalf("MoveWindow: %v", err)
	}
	if len(sys.Windows(0)) != 1 {
		t.Fatalf("negative plane position did not clamp to the first column")
	}
}

func TestRaiseWindowReordersStacking(t *testing.T) {
	sys := NewWindowSystem(1, 1)
	a := sys.AddWindow(0, "a", overview.Geometry{W: 100, H: 100})
	b := sys.AddWindow(0, "b", overview.Geometry{W: 100, H: 100})

	if err := sys.RaiseWindow(a); err != nil {
		t.Fatalf("RaiseWindow: %v", err)
	}
	wins := sys.Windows(0)
	if len(wins) != 2 || wins[1].Handle != a {
		t.Fatalf("raised window is not on top: %v", wins)
	}
	_ = b
}

func TestSetCurrentWorkspaceBounds(t *testing.T) {
	sys := NewWindowSystem(2, 2)
	if err := sys.SetCurrentWorkspace(3); err != nil {
		t.Fatalf("valid workspace rejected: %v", err)
	}
	if err := sys.SetCurrentWorkspace(4); err == nil {
		t.Fatalf("out of range workspace accepted")
	}
}

func TestPtyContentKeepsLastLine(t *testing.T) {
	c := &PtyContent{stop: make(chan struct{})}
	c.consume([]byte("first\nsec"))
	if got := c.LastLine(); got != "first" {
		t.Fatalf("last line %q, want first", got)
	}
	c.consume([]byte("ond\r\n"))
	if got := c.LastLine(); got != "second" {
		t.Fatalf("last line %q, want second", got)
	}
	c.consume([]byte("\x07\x08\n"))
	if got := c.LastLine(); got != "second" {
		t.Fatalf("control-only line replaced the last line: %q", got)
	}
}
