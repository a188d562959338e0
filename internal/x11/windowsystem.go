// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/x11/windowsystem.go
// Summary: EWMH-backed window system for the overview engine.
// Notes: Virtual desktops map to a single-row workspace grid. MoveWindow
//        accepts workspace-grid-plane coordinates and derives the target
//        desktop from them.

package x11

import (
	"fmt"
	"log"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"panorama/overview"
)

// WindowSystem adapts an X11 connection to the overview engine.
type WindowSystem struct {
	conn *Connection
}

// NewWindowSystem wraps an established connection.
func NewWindowSystem(conn *Connection) *WindowSystem {
	return &WindowSystem{conn: conn}
}

// OutputGeometry returns the root window extent.
func (s *WindowSystem) OutputGeometry() overview.Geometry {
	root := xwindow.New(s.conn.XUtil, s.conn.Root)
	geom, err := root.Geometry()
	if err != nil {
		log.Printf("X11: Failed to query root geometry: %v", err)
		return overview.Geometry{W: 1920, H: 1080}
	}
	return overview.Geometry{
		X: float64(geom.X()),
		Y: float64(geom.Y()),
		W: float64(geom.Width()),
		H: float64(geom.Height()),
	}
}

// WorkspaceGrid maps the desktop count to a single-row grid.
func (s *WindowSystem) WorkspaceGrid() (cols, rows int) {
	count, err := ewmh.NumberOfDesktopsGet(s.conn.XUtil)
	if err != nil || count == 0 {
		log.Printf("X11: Failed to query desktop count: %v", err)
		return 1, 1
	}
	return int(count), 1
}

// CurrentWorkspace returns the focused desktop index.
func (s *WindowSystem) CurrentWorkspace() int {
	desktop, err := ewmh.CurrentDesktopGet(s.conn.XUtil)
	if err != nil {
		log.Printf("X11: Failed to query current desktop: %v", err)
		return 0
	}
	return int(desktop)
}

// SetCurrentWorkspace switches the focused desktop.
func (s *WindowSystem) SetCurrentWorkspace(index int) error {
	if err := s.conn.SetCurrentDesktop(index); err != nil {
		return fmt.Errorf("failed to switch desktop: %w", err)
	}
	return nil
}

// Windows enumerates the normal windows of a desktop in stacking order.
// Sticky windows appear on every desktop.
func (s *WindowSystem) Windows(workspace int) []overview.WindowInfo {
	clients, err := ewmh.ClientListStackingGet(s.conn.XUtil)
	if err != nil {
		clients, err = ewmh.ClientListGet(s.conn.XUtil)
		if err != nil {
			log.Printf("X11: Failed to query client list: %v", err)
			return nil
		}
	}

	var infos []overview.WindowInfo
	for _, win := range clients {
		if !s.isNormalWindow(win) {
			continue
		}
		desktop, err := ewmh.WmDesktopGet(s.conn.XUtil, win)
		if err != nil {
			continue
		}
		sticky := desktop == 0xFFFFFFFF
		if !sticky && int(desktop) != workspace {
			continue
		}

		geom, err := xwindow.New(s.conn.XUtil, win).DecorGeometry()
		if err != nil {
			continue
		}

		title, _ := ewmh.WmNameGet(s.conn.XUtil, win)
		infos = append(infos, overview.WindowInfo{
			Handle: overview.WindowHandle(win),
			Geometry: overview.Geometry{
				X: float64(geom.X()),
				Y: float64(geom.Y()),
				W: float64(geom.Width()),
				H: float64(geom.Height()),
			},
			Minimized: s.isMinimized(win),
			Mapped:    true,
			Title:     title,
		})
	}
	return infos
}

// MoveWindow relocates a window inside the workspace-grid plane. The cell
// containing the point picks the desktop; the remainder places the window
// inside it.
func (s *WindowSystem) MoveWindow(handle overview.WindowHandle, x, y float64) error {
	output := s.OutputGeometry()
	if output.W <= 0 || output.H <= 0 {
		return fmt.Errorf("degenerate output geometry")
	}
	cols, _ := s.WorkspaceGrid()

	col := int(math.Floor(x / output.W))
	row := int(math.Floor(y / output.H))
	if col < 0 {
		col = 0
	}
	if col >= cols {
		col = cols - 1
	}
	if row < 0 {
		row = 0
	}
	desktop := row*cols + col
	localX := x - float64(col)*output.W
	localY := y - float64(row)*output.H

	win := xproto.Window(handle)
	if err := s.conn.SetWindowDesktop(win, desktop); err != nil {
		return fmt.Errorf("failed to set window desktop: %w", err)
	}

	geom, err := xwindow.New(s.conn.XUtil, win).DecorGeometry()
	if err != nil {
		return fmt.Errorf("failed to query window geometry: %w", err)
	}
	if err := ewmh.MoveresizeWindow(s.conn.XUtil, win,
		int(localX), int(localY), geom.Width(), geom.Height()); err != nil {
		// Fall back to direct window manipulation.
		xwindow.New(s.conn.XUtil, win).MoveResize(
			int(localX), int(localY), geom.Width(), geom.Height())
	}
	return nil
}

// RaiseWindow activates and raises a window.
func (s *WindowSystem) RaiseWindow(handle overview.WindowHandle) error {
	if err := s.conn.ActivateWindow(xproto.Window(handle)); err != nil {
		return fmt.Errorf("failed to activate window: %w", err)
	}
	return nil
}

func (s *WindowSystem) isNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(s.conn.XUtil, win)
	if err != nil {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return len(types) == 0
}

func (s *WindowSystem) isMinimized(win xproto.Window) bool {
	states, err := ewmh.WmStateGet(s.conn.XUtil, win)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}
