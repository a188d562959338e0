// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/drag.go
// Summary: Drag-and-drop of windows onto workspace thumbnails.
// Usage: Owned by Controller; pointer events reach it through
//        OnPointerMotion and OnPointerButton.
// Notes: A press is ambiguous until the pointer travels past the
//        threshold, so clicks and drags share the Pressed state.

package overview

import (
	"log"
	"math"
	"time"
)

// dragThreshold is the pointer travel, in output units, that turns a
// press into a drag.
const dragThreshold = 8

// DragState enumerates the drag lifecycle.
type DragState int

const (
	DragIdle DragState = iota
	DragPressed
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragPressed:
		return "pressed"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragController tracks one potential window drag inside a settled
// session. Only the primary button participates.
type DragController struct {
	c *Controller

	state DragState
	slot  *WindowSlot

	source       int
	pressPoint   Point
	currentPoint Point

	// grabScreen is the slot's on-screen rectangle at the moment the
	// drag started; the floating snapshot follows the pointer from here.
	grabScreen Geometry

	hoverTarget int
}

// State returns the current drag state.
func (d *DragController) State() DragState { return d.state }

// HoverTarget returns the workspace index the drag currently hovers, or
// -1 when dropping would snap the window back.
func (d *DragController) HoverTarget() int {
	if d.state != DragDragging {
		return -1
	}
	return d.hoverTarget
}

// FloatingRect returns the rectangle of the floating drag snapshot and
// whether one should be drawn.
func (d *DragController) FloatingRect() (Geometry, bool) {
	if d.state != DragDragging || d.slot == nil {
		return Geometry{}, false
	}
	dx := d.currentPoint.X - d.pressPoint.X
	dy := d.currentPoint.Y - d.pressPoint.Y
	return d.grabScreen.Translated(dx, dy), true
}

// Press records a primary-button press. The caller guarantees the session
// is active and settled; nothing else is mutated until the threshold.
func (d *DragController) Press(p Point) {
	d.state = DragPressed
	d.pressPoint = p
	d.currentPoint = p
}

// Motion updates the drag with pointer movement. In the pressed state it
// promotes to a drag once the threshold is crossed; while dragging it
// retargets the hovered workspace.
func (d *DragController) Motion(p Point, now time.Time) {
	d.currentPoint = p
	switch d.state {
	case DragPressed:
		if math.Hypot(p.X-d.pressPoint.X, p.Y-d.pressPoint.Y) <= dragThreshold {
			return
		}
		if !d.startDrag(d.pressPoint, now) {
			d.reset()
			return
		}
		d.updateTarget(p)
	case DragDragging:
		d.updateTarget(p)
	}
}

// startDrag grabs the window slot under the press point. It mutates no
// session state and reports failure when no slot is there.
func (d *DragController) startDrag(p Point, now time.Time) bool {
	slot := d.c.windowAt(p)
	if slot == nil {
		return false
	}

	d.slot = slot
	d.source = d.c.current
	d.grabScreen = d.c.WorkspaceToScreenRect(slot.Current())
	d.hoverTarget = -1

	if d.c.host.Snapshots != nil {
		d.c.host.Snapshots.RequestWindowSnapshot(slot.Handle)
	}
	slot.setHidden(true)
	d.state = DragDragging
	return true
}

// updateTarget resolves the hovered drop target: workspace thumbnails
// first, then the carousel preview rectangles. The source workspace is
// never a target; dropping there snaps the window back.
func (d *DragController) updateTarget(p Point) {
	target := d.c.thumbnailAt(p)
	if target < 0 {
		target = d.c.workspacePreviewAt(p)
	}
	if target == d.source {
		target = -1
	}
	d.hoverTarget = target
}

// Release either commits the move onto the hovered workspace or snaps the
// window back into its grid cell. Always ends in the idle state.
func (d *DragController) Release(p Point, now time.Time) {
	slot, target := d.slot, d.hoverTarget
	if d.state != DragDragging || slot == nil {
		d.reset()
		return
	}
	d.currentPoint = p
	d.updateTarget(p)
	target = d.hoverTarget
	d.reset()

	if target >= 0 && target != d.c.current {
		d.c.commitMove(slot, d.c.current, target, now)
		return
	}

	slot.setHidden(false)
	animateRect(&slot.Anim, slot.Target, now)
}

// Cancel aborts any drag in progress, restoring the grabbed slot to its
// grid cell. Safe to call in every state.
func (d *DragController) Cancel(now time.Time) {
	if d.state == DragDragging && d.slot != nil {
		d.slot.setHidden(false)
		animateRect(&d.slot.Anim, d.slot.Target, now)
	}
	d.reset()
}

func (d *DragController) reset() {
	d.state = DragIdle
	d.slot = nil
	d.hoverTarget = -1
}

// commitMove relocates a window to another workspace with a single host
// call and reconciles both slot lists. MoveWindow takes coordinates on
// the workspace-grid plane, so the destination offset is whole output
// strides between the two grid cells.
func (c *Controller) commitMove(slot *WindowSlot, from, to int, now time.Time) {
	if from < 0 || from >= len(c.workspaces) || to < 0 || to >= len(c.workspaces) {
		return
	}
	src, dst := c.workspaces[from], c.workspaces[to]

	dx := float64(dst.Col-src.Col) * c.output.W
	dy := float64(dst.Row-src.Row) * c.output.H
	if err := c.host.Windows.MoveWindow(slot.Handle, slot.Original.X+dx, slot.Original.Y+dy); err != nil {
		log.Printf("Overview: move window %d to workspace %d: %v", slot.Handle, to, err)
		slot.setHidden(false)
		animateRect(&slot.Anim, slot.Target, now)
		return
	}

	// The source slot is gone; the window re-enters as a fresh slot of
	// the destination at its unchanged workspace-local geometry.
	src.removeSlot(slot)
	slot.releaseTransform(c.host.Transforms)
	if c.hovered == slot {
		c.hovered = nil
	}
	c.layoutWorkspace(src, now, true)

	fresh := newWindowSlot(WindowInfo{
		Handle:   slot.Handle,
		Geometry: slot.Original,
		Mapped:   true,
		Title:    slot.Title,
	}, c.curve, c.opts.AnimationDuration)
	dst.Slots = append(dst.Slots, fresh)
	c.layoutWorkspace(dst, now, false)
	fresh.attachTransform(c.host.Transforms)
	fresh.startEnter(now)
	for i, s := range dst.Slots {
		if s != fresh {
			animateRect(&s.Anim, dst.Slots[i].Target, now)
		}
	}

	if c.host.Recorder != nil {
		c.host.Recorder.WindowMoved(slot.Handle, from, to)
	}
	if c.state == StateActive {
		c.state = StateActivating
	}
	log.Printf("Overview: moved window %d from workspace %d to %d", slot.Handle, from, to)
}
