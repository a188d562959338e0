// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/mapper.go
// Summary: Bidirectional mapping between screen and workspace coordinates.
// Notes: The mapping is derived from the live preview rectangle on every
//        call, so hit-testing stays correct mid-animation.

package overview

// ScreenToWorkspace maps a screen-space point into workspace space using
// the current preview rectangle. It reports false while the preview is
// degenerate, in which case no point maps anywhere.
func (c *Controller) ScreenToWorkspace(p Point) (Point, bool) {
	pr := currentGeometry(&c.preview)
	if pr.W <= 0 || pr.H <= 0 || c.output.W <= 0 || c.output.H <= 0 {
		return Point{}, false
	}
	return Point{
		X: (p.X - pr.X) * c.output.W / pr.W,
		Y: (p.Y - pr.Y) * c.output.H / pr.H,
	}, true
}

// WorkspaceToScreen maps a workspace-space point onto the screen through
// the current preview rectangle.
func (c *Controller) WorkspaceToScreen(p Point) Point {
	pr := currentGeometry(&c.preview)
	if c.output.W <= 0 || c.output.H <= 0 {
		return p
	}
	return Point{
		X: pr.X + p.X*pr.W/c.output.W,
		Y: pr.Y + p.Y*pr.H/c.output.H,
	}
}

// WorkspaceToScreenRect projects a workspace-space rectangle onto the
// screen. Renderers use this to place window boxes inside the preview.
func (c *Controller) WorkspaceToScreenRect(g Geometry) Geometry {
	pr := currentGeometry(&c.preview)
	if c.output.W <= 0 || c.output.H <= 0 {
		return g
	}
	sx := pr.W / c.output.W
	sy := pr.H / c.output.H
	return Geometry{
		X: pr.X + g.X*sx,
		Y: pr.Y + g.Y*sy,
		W: g.W * sx,
		H: g.H * sy,
	}
}

// windowAt returns the topmost slot of the focused workspace under a
// screen point, testing live animated geometry in reverse stacking order.
func (c *Controller) windowAt(p Point) *WindowSlot {
	wp, ok := c.ScreenToWorkspace(p)
	if !ok {
		return nil
	}
	slots := c.currentSlots()
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].hidden {
			continue
		}
		if slots[i].Current().Contains(wp) {
			return slots[i]
		}
	}
	return nil
}

// thumbnailAt returns the index of the workspace thumbnail under a screen
// point, or -1. Thumbnails never animate, so the raw point is tested.
func (c *Controller) thumbnailAt(p Point) int {
	for i, t := range c.thumbs {
		if t.Contains(p) {
			return i
		}
	}
	return -1
}

// workspacePreviewAt returns the workspace whose carousel-slid preview
// rectangle contains the screen point, or -1. Preview rectangles never
// overlap; one stride separates neighbours.
func (c *Controller) workspacePreviewAt(p Point) int {
	for i := range c.thumbs {
		if c.WorkspacePreviewRect(i).Contains(p) {
			return i
		}
	}
	return -1
}
