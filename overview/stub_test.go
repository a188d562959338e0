// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/stub_test.go
// Summary: Shared fakes for the overview package tests.

package overview

import (
	"testing"
	"time"
)

type fakeTransform struct {
	tx, ty float64
	sx, sy float64
	alpha  float64
	writes int
}

func (f *fakeTransform) SetTranslation(x, y float64) { f.tx, f.ty = x, y; f.writes++ }
func (f *fakeTransform) SetScale(sx, sy float64)     { f.sx, f.sy = sx, sy; f.writes++ }
func (f *fakeTransform) SetOpacity(alpha float64)    { f.alpha = alpha; f.writes++ }

type fakeTransformHost struct {
	attached    map[WindowHandle]*fakeTransform
	attachCalls int
	detachCalls int
}

func newFakeTransformHost() *fakeTransformHost {
	return &fakeTransformHost{attached: make(map[WindowHandle]*fakeTransform)}
}

func (h *fakeTransformHost) AttachTransform(handle WindowHandle) Transform {
	h.attachCalls++
	if tr, ok := h.attached[handle]; ok {
		return tr
	}
	tr := &fakeTransform{sx: 1, sy: 1, alpha: 1}
	h.attached[handle] = tr
	return tr
}

func (h *fakeTransformHost) DetachTransform(handle WindowHandle) {
	h.detachCalls++
	delete(h.attached, handle)
}

type moveCall struct {
	handle WindowHandle
	x, y   float64
}

type fakeWindowSystem struct {
	output     Geometry
	cols, rows int
	current    int
	windows    map[int][]WindowInfo

	moves    []moveCall
	raised   []WindowHandle
	switches []int
}

func newFakeWindowSystem(cols, rows int) *fakeWindowSystem {
	return &fakeWindowSystem{
		output:  Geometry{X: 0, Y: 0, W: 1600, H: 900},
		cols:    cols,
		rows:    rows,
		windows: make(map[int][]WindowInfo),
	}
}

func (s *fakeWindowSystem) addWindow(workspace int, handle WindowHandle, g Geometry) {
	s.windows[workspace] = append(s.windows[workspace], WindowInfo{
		Handle:   handle,
		Geometry: g,
		Mapped:   true,
		Title:    "win",
	})
}

func (s *fakeWindowSystem) OutputGeometry() Geometry      { return s.output }
func (s *fakeWindowSystem) WorkspaceGrid() (int, int)     { return s.cols, s.rows }
func (s *fakeWindowSystem) CurrentWorkspace() int         { return s.current }
func (s *fakeWindowSystem) Windows(ws int) []WindowInfo   { return s.windows[ws] }
func (s *fakeWindowSystem) RaiseWindow(h WindowHandle) error {
	s.raised = append(s.raised, h)
	return nil
}

func (s *fakeWindowSystem) SetCurrentWorkspace(index int) error {
	s.current = index
	s.switches = append(s.switches, index)
	return nil
}

func (s *fakeWindowSystem) MoveWindow(h WindowHandle, x, y float64) error {
	s.moves = append(s.moves, moveCall{handle: h, x: x, y: y})
	return nil
}

type fakeCaptureHost struct {
	ensured  []int
	released int
}

func (c *fakeCaptureHost) EnsureCapture(ws int) { c.ensured = append(c.ensured, ws) }
func (c *fakeCaptureHost) ReleaseCaptures()     { c.released++ }

type fakeSnapshots struct {
	requested []WindowHandle
}

func (f *fakeSnapshots) RequestWindowSnapshot(h WindowHandle) {
	f.requested = append(f.requested, h)
}

type fakeRecorder struct {
	activated   []int
	deactivated int
	moved       []moveRecord
	switched    [][2]int
}

type moveRecord struct {
	handle   WindowHandle
	from, to int
}

func (r *fakeRecorder) SessionActivated(n int) { r.activated = append(r.activated, n) }
func (r *fakeRecorder) SessionDeactivated()    { r.deactivated++ }
func (r *fakeRecorder) WindowMoved(h WindowHandle, from, to int) {
	r.moved = append(r.moved, moveRecord{handle: h, from: from, to: to})
}
func (r *fakeRecorder) WorkspaceSwitched(from, to int) {
	r.switched = append(r.switched, [2]int{from, to})
}

type testRig struct {
	c          *Controller
	sys        *fakeWindowSystem
	transforms *fakeTransformHost
	captures   *fakeCaptureHost
	snapshots  *fakeSnapshots
	recorder   *fakeRecorder
}

func newTestRig(cols, rows int) *testRig {
	rig := &testRig{
		sys:        newFakeWindowSystem(cols, rows),
		transforms: newFakeTransformHost(),
		captures:   &fakeCaptureHost{},
		snapshots:  &fakeSnapshots{},
		recorder:   &fakeRecorder{},
	}
	rig.c = NewController(Host{
		Windows:    rig.sys,
		Transforms: rig.transforms,
		Captures:   rig.captures,
		Snapshots:  rig.snapshots,
		Recorder:   rig.recorder,
	}, DefaultOptions())
	return rig
}

func runUntilSettled(t *testing.T, c *Controller, now time.Time) time.Time {
	t.Helper()
	for i := 0; i < 200; i++ {
		now = now.Add(16 * time.Millisecond)
		c.Tick(now)
		if c.Settled() {
			return now
		}
	}
	t.Fatalf("animations never settled, state %v", c.State())
	return now
}
