// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/demo/windowsystem.go
// Summary: In-memory window system backing the terminal demo.
// Notes: Coordinates live on the workspace-grid plane; a window's cell is
//        derived from its plane position, so MoveWindow works the same
//        way as on a real backend.

package demo

import (
	"fmt"
	"math"

	"panorama/overview"
)

// Window is one simulated window.
type Window struct {
	handle    overview.WindowHandle
	title     string
	workspace int
	local     overview.Geometry
	content   *PtyContent
}

// WindowSystem simulates a multi-workspace desktop on a virtual output.
type WindowSystem struct {
	output     overview.Geometry
	cols, rows int
	current    int
	windows    []*Window
	nextHandle overview.WindowHandle
}

// NewWindowSystem creates an empty desktop with the given workspace grid
// on a 1600x900 virtual output.
func NewWindowSystem(cols, rows int) *WindowSystem {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &WindowSystem{
		output:     overview.Geometry{W: 1600, H: 900},
		cols:       cols,
		rows:       rows,
		nextHandle: 1,
	}
}

// AddWindow places a new window on a workspace at the given local
// geometry and returns its handle.
func (s *WindowSystem) AddWindow(workspace int, title string, g overview.Geometry) overview.WindowHandle {
	if workspace < 0 || workspace >= s.cols*s.rows {
		workspace = 0
	}
	w := &Window{
		handle:    s.nextHandle,
		title:     title,
		workspace: workspace,
		local:     g,
	}
	s.nextHandle++
	s.windows = append(s.windows, w)
	return w.handle
}

// AttachContent streams a pty's output into the window's title.
func (s *WindowSystem) AttachContent(handle overview.WindowHandle, content *PtyContent) {
	if w := s.find(handle); w != nil {
		w.content = content
	}
}

// CloseContents stops every attached pty.
func (s *WindowSystem) CloseContents() {
	for _, w := range s.windows {
		if w.content != nil {
			w.content.Stop()
			w.content = nil
		}
	}
}

func (s *WindowSystem) OutputGeometry() overview.Geometry { return s.output }

func (s *WindowSystem) WorkspaceGrid() (cols, rows int) { return s.cols, s.rows }

func (s *WindowSystem) CurrentWorkspace() int { return s.current }

func (s *WindowSystem) SetCurrentWorkspace(index int) error {
	if index < 0 || index >= s.cols*s.rows {
		return fmt.Errorf("workspace %d out of range", index)
	}
	s.current = index
	return nil
}

func (s *WindowSystem) Windows(workspace int) []overview.WindowInfo {
	var infos []overview.WindowInfo
	for _, w := range s.windows {
		if w.workspace != workspace {
			continue
		}
		title := w.title
		if w.content != nil {
			if line := w.content.LastLine(); line != "" {
				title = w.title + ": " + line
			}
		}
		infos = append(infos, overview.WindowInfo{
			Handle:   w.handle,
			Geometry: w.local,
			Mapped:   true,
			Title:    title,
		})
	}
	return infos
}

// MoveWindow relocates a window on the workspace-grid plane: the cell
// containing the point picks the workspace, the remainder the local spot.
func (s *WindowSystem) MoveWindow(handle overview.WindowHandle, x, y float64) error {
	w := s.find(handle)
	if w == nil {
		return fmt.Errorf("unknown window %d", handle)
	}

	col := clampInt(int(math.Floor(x/s.output.W)), 0, s.cols-1)
	row := clampInt(int(math.Floor(y/s.output.H)), 0, s.rows-1)
	w.workspace = row*s.cols + col
	w.local.X = x - float64(col)*s.output.W
	w.local.Y = y - float64(row)*s.output.H
	return nil
}

// RaiseWindow moves a window to the top of the stacking order.
func (s *WindowSystem) RaiseWindow(handle overview.WindowHandle) error {
	for i, w := range s.windows {
		if w.handle == handle {
			s.windows = append(append(s.windows[:i], s.windows[i+1:]...), w)
			return nil
		}
	}
	return fmt.Errorf("unknown window %d", handle)
}

func (s *WindowSystem) find(handle overview.WindowHandle) *Window {
	for _, w := range s.windows {
		if w.handle == handle {
			return w
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
