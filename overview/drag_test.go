// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/drag_test.go
// Summary: Drag-and-drop tests.

package overview

import (
	"testing"
	"time"
)

func TestDragToThumbnailMovesOnce(t *testing.T) {
	rig := newTestRig(3, 1)
	rig.sys.addWindow(0, 5, Geometry{X: 100, Y: 100, W: 400, H: 300})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	drop := rig.c.Thumbnails()[2].Center()

	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 20, Y: grab.Y}, now)
	if rig.c.drag.State() != DragDragging {
		t.Fatalf("drag state %v after crossing the threshold, want dragging", rig.c.drag.State())
	}
	if len(rig.snapshots.requested) != 1 || rig.snapshots.requested[0] != 5 {
		t.Fatalf("snapshot requests %v, want [5]", rig.snapshots.requested)
	}
	if !slot.hidden {
		t.Fatalf("grabbed window is still visible in the preview")
	}

	rig.c.OnPointerMotion(drop, now)
	if rig.c.drag.HoverTarget() != 2 {
		t.Fatalf("hover target %d, want 2", rig.c.drag.HoverTarget())
	}
	if _, ok := rig.c.drag.FloatingRect(); !ok {
		t.Fatalf("no floating rectangle while dragging")
	}

	rig.c.OnPointerButton(ButtonPrimary, false, drop, now)
	if len(rig.sys.moves) != 1 {
		t.Fatalf("got %d move calls, want exactly 1", len(rig.sys.moves))
	}
	mv := rig.sys.moves[0]
	wantX := 100.0 + 2*rig.sys.output.W
	if mv.handle != 5 || mv.x != wantX || mv.y != 100 {
		t.Fatalf("move call %+v, want handle 5 at (%f, 100)", mv, wantX)
	}

	if len(rig.c.CurrentSlots()) != 0 {
		t.Fatalf("source workspace still holds %d slots", len(rig.c.CurrentSlots()))
	}
	if len(rig.c.workspaces[2].Slots) != 1 {
		t.Fatalf("destination workspace holds %d slots, want 1", len(rig.c.workspaces[2].Slots))
	}
	if len(rig.recorder.moved) != 1 || rig.recorder.moved[0].to != 2 {
		t.Fatalf("recorder saw moves %v, want one onto workspace 2", rig.recorder.moved)
	}

	runUntilSettled(t, rig.c, now)
	if rig.c.State() != StateActive {
		t.Fatalf("session state %v after the move settles, want active", rig.c.State())
	}
}

func TestDragToNeighbourPreviewMoves(t *testing.T) {
	rig := newTestRig(3, 1)
	rig.sys.addWindow(0, 8, Geometry{X: 120, Y: 90, W: 500, H: 350})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 20, Y: grab.Y}, now)

	wp := rig.c.WorkspacePreviewRect(1)
	drop := Point{X: wp.X + 40, Y: wp.Y + wp.H/2}
	rig.c.OnPointerMotion(drop, now)
	if rig.c.drag.HoverTarget() != 1 {
		t.Fatalf("hover target %d over the neighbour preview, want 1", rig.c.drag.HoverTarget())
	}

	rig.c.OnPointerButton(ButtonPrimary, false, drop, now)
	if len(rig.sys.moves) != 1 {
		t.Fatalf("got %d move calls, want exactly 1", len(rig.sys.moves))
	}
	if mv := rig.sys.moves[0]; mv.handle != 8 || mv.x != 120+rig.sys.output.W || mv.y != 90 {
		t.Fatalf("move call %+v, want handle 8 one stride right", mv)
	}
	if len(rig.c.workspaces[1].Slots) != 1 {
		t.Fatalf("destination workspace holds %d slots, want 1", len(rig.c.workspaces[1].Slots))
	}
}

func TestDragOverOwnPreviewSnapsBack(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 3, Geometry{X: 200, Y: 150, W: 500, H: 400})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 30, Y: grab.Y}, now)
	if rig.c.drag.HoverTarget() != -1 {
		t.Fatalf("source workspace preview counted as a drop target")
	}
	rig.c.OnPointerButton(ButtonPrimary, false, Point{X: grab.X + 30, Y: grab.Y}, now)
	if len(rig.sys.moves) != 0 {
		t.Fatalf("dropping on the source preview issued moves: %v", rig.sys.moves)
	}
}

func TestDragWithoutWindowAborts(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 1, Geometry{X: 100, Y: 100, W: 400, H: 300})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	press := Point{X: 4, Y: 4}
	rig.c.OnPointerButton(ButtonPrimary, true, press, now)
	rig.c.OnPointerMotion(Point{X: 60, Y: 60}, now)
	if rig.c.drag.State() != DragIdle {
		t.Fatalf("drag state %v after a backdrop drag attempt, want idle", rig.c.drag.State())
	}
	if len(rig.snapshots.requested) != 0 || len(rig.sys.moves) != 0 {
		t.Fatalf("aborted drag mutated the session")
	}
	if rig.c.CurrentSlots()[0].hidden {
		t.Fatalf("aborted drag hid an unrelated window")
	}
}

func TestDragReleaseOverNothingSnapsBack(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 9, Geometry{X: 200, Y: 150, W: 500, H: 400})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 30, Y: grab.Y + 30}, now)
	rig.c.OnPointerButton(ButtonPrimary, false, Point{X: 4, Y: 4}, now)

	if len(rig.sys.moves) != 0 {
		t.Fatalf("snap back still issued moves: %v", rig.sys.moves)
	}
	if slot.hidden {
		t.Fatalf("window stayed hidden after snap back")
	}
	if len(rig.c.CurrentSlots()) != 1 {
		t.Fatalf("snap back changed the slot list")
	}

	runUntilSettled(t, rig.c, now)
	if slot.Current() != slot.Target {
		t.Fatalf("slot settled at %+v, want its grid cell %+v", slot.Current(), slot.Target)
	}
}

func TestDropOnSourceThumbnailSnapsBack(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 3, Geometry{X: 200, Y: 150, W: 500, H: 400})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 30, Y: grab.Y}, now)

	drop := rig.c.Thumbnails()[0].Center()
	rig.c.OnPointerMotion(drop, now)
	if rig.c.drag.HoverTarget() != -1 {
		t.Fatalf("source thumbnail counted as a drop target")
	}
	rig.c.OnPointerButton(ButtonPrimary, false, drop, now)
	if len(rig.sys.moves) != 0 {
		t.Fatalf("dropping on the source workspace issued moves: %v", rig.sys.moves)
	}
}

func TestDeactivateCancelsDrag(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 4, Geometry{X: 200, Y: 150, W: 500, H: 400})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 30, Y: grab.Y}, now)

	rig.c.Deactivate(now)
	if rig.c.drag.State() != DragIdle {
		t.Fatalf("drag survived deactivation")
	}
	if slot.hidden {
		t.Fatalf("window stayed hidden after the drag was cancelled")
	}
}

func TestDestroyingDraggedWindowCancels(t *testing.T) {
	rig := newTestRig(2, 1)
	rig.sys.addWindow(0, 6, Geometry{X: 200, Y: 150, W: 500, H: 400})

	t0 := time.Unix(10, 0)
	rig.c.Activate(t0)
	now := runUntilSettled(t, rig.c, t0)

	slot := rig.c.CurrentSlots()[0]
	grab := rig.c.WorkspaceToScreen(slot.Target.Center())
	rig.c.OnPointerButton(ButtonPrimary, true, grab, now)
	rig.c.OnPointerMotion(Point{X: grab.X + 30, Y: grab.Y}, now)

	rig.c.WindowDestroyed(6, now)
	if rig.c.drag.State() != DragIdle {
		t.Fatalf("drag survived the window's destruction")
	}
	if len(rig.c.CurrentSlots()) != 0 {
		t.Fatalf("destroyed window still has a slot")
	}
	if len(rig.sys.moves) != 0 {
		t.Fatalf("destroyed window was relocated: %v", rig.sys.moves)
	}
}
