// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/host.go
// Summary: Interfaces the overview engine consumes from its host environment.
// Usage: Implemented by rendering and window-system backends; the engine
//        never inspects the concrete types behind them.

package overview

// WindowHandle is an opaque, non-owning window identifier resolved through
// the host's window registry.
type WindowHandle uint64

// WindowInfo describes one window as enumerated by the host.
type WindowInfo struct {
	Handle    WindowHandle
	Geometry  Geometry
	Minimized bool
	Mapped    bool
	Title     string
}

// WindowSystem exposes window and workspace queries and mutations.
//
// Coordinate contract: Windows returns workspace-local geometry. MoveWindow
// accepts coordinates in the workspace-grid plane whose origin coincides
// with workspace (0,0); a position outside the output extent lands the
// window on the workspace whose cell contains it.
type WindowSystem interface {
	// OutputGeometry returns the output extent in layout units.
	OutputGeometry() Geometry

	// WorkspaceGrid returns the virtual desktop grid dimensions.
	WorkspaceGrid() (cols, rows int)

	// CurrentWorkspace returns the focused workspace index (row-major).
	CurrentWorkspace() int

	// SetCurrentWorkspace switches the focused workspace.
	SetCurrentWorkspace(index int) error

	// Windows enumerates the mapped windows of a workspace in stacking
	// order, bottom first.
	Windows(workspace int) []WindowInfo

	// MoveWindow relocates a window inside the workspace-grid plane.
	MoveWindow(handle WindowHandle, x, y float64) error

	// RaiseWindow brings a window to the front and focuses it.
	RaiseWindow(handle WindowHandle) error
}

// Transform is the per-window visual transform capability the renderer
// exposes. The engine only ever writes through it.
type Transform interface {
	SetTranslation(x, y float64)
	SetScale(sx, sy float64)
	SetOpacity(alpha float64)
}

// TransformHost attaches and detaches per-window transforms. Attach is
// idempotent for a handle that already carries a transform.
type TransformHost interface {
	AttachTransform(handle WindowHandle) Transform
	DetachTransform(handle WindowHandle)
}

// CaptureHost manages offscreen per-workspace capture buffers. The engine
// only governs their lifetime: captures are requested lazily during a
// session and must be gone once the session reaches the inactive state.
type CaptureHost interface {
	EnsureCapture(workspace int)
	ReleaseCaptures()
}

// SnapshotRequester is asked to capture a window's current appearance
// before the window is hidden from the composited preview, so a floating
// drag thumbnail can show the real content.
type SnapshotRequester interface {
	RequestWindowSnapshot(handle WindowHandle)
}

// Recorder receives session lifecycle events for persistence. All methods
// are optional niceties; failures must not affect the session.
type Recorder interface {
	SessionActivated(windowCount int)
	SessionDeactivated()
	WindowMoved(handle WindowHandle, fromWorkspace, toWorkspace int)
	WorkspaceSwitched(from, to int)
}

// Host bundles the collaborators a controller needs. Windows and
// Transforms are required; the rest may be nil.
type Host struct {
	Windows    WindowSystem
	Transforms TransformHost
	Captures   CaptureHost
	Snapshots  SnapshotRequester
	Recorder   Recorder
}
