// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/controller.go
// Summary: Overview session state machine for one output.
// Usage: Host drives it with pointer events and one Tick per frame; the
//        controller owns all slots and animated rectangles of a session.

package overview

import (
	"log"
	"time"

	"panorama/internal/anim"
)

// State enumerates the session lifecycle. Active means fully settled; the
// three transition states mean at least one animation is running.
type State int

const (
	StateInactive State = iota
	StateActivating
	StateActive
	StateDeactivating
	StateSwitchingWorkspace
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActivating:
		return "activating"
	case StateActive:
		return "active"
	case StateDeactivating:
		return "deactivating"
	case StateSwitchingWorkspace:
		return "switching-workspace"
	default:
		return "unknown"
	}
}

// fullscreenTolerance is how close the preview must be to the output width
// before a closing session counts as returned to fullscreen.
const fullscreenTolerance = 10

// ButtonPrimary is the pointer button that interacts with the overview.
const ButtonPrimary = 1

// Workspace is one cell of the virtual desktop grid with the slots the
// controller owns for it during a session.
type Workspace struct {
	Index    int
	Row, Col int
	Slots    []*WindowSlot
}

func (w *Workspace) removeSlot(slot *WindowSlot) bool {
	for i, s := range w.Slots {
		if s == slot {
			w.Slots = append(w.Slots[:i], w.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// Controller owns one output's overview session: the per-workspace slot
// lists, the desktop preview rectangle, the carousel scroll, and the drag
// subsystem. It is single-threaded; the host serializes input and ticks.
type Controller struct {
	host  Host
	opts  Options
	curve *anim.Curve

	state  State
	output Geometry

	gridCols, gridRows int
	current            int
	workspaces         []*Workspace

	preview     anim.Rect
	previewGoal Geometry
	thumbs      []Geometry

	backdrop anim.Scalar
	carousel anim.Scalar

	carouselTarget int
	pendingSwitch  int

	hovered *WindowSlot
	drag    DragController
}

// NewController wires a controller against its host collaborators.
func NewController(host Host, opts Options) *Controller {
	opts = opts.sanitized()
	c := &Controller{
		host:           host,
		opts:           opts,
		curve:          anim.DefaultCurve(),
		preview:        anim.NewRect(0, 0, 0, 0),
		backdrop:       anim.NewScalar(0),
		carousel:       anim.NewScalar(0),
		carouselTarget: -1,
		pendingSwitch:  -1,
	}
	c.preview.SetConfig(c.curve, opts.AnimationDuration)
	c.backdrop.SetConfig(c.curve, opts.AnimationDuration)
	c.carousel.SetConfig(c.curve, opts.AnimationDuration)
	c.drag.c = c
	c.drag.hoverTarget = -1
	return c
}

// State returns the current session state.
func (c *Controller) State() State { return c.state }

// Active reports whether a session is live in any form.
func (c *Controller) Active() bool { return c.state != StateInactive }

// Settled reports whether no owned animation is currently running.
func (c *Controller) Settled() bool {
	if c.preview.Running() || c.carousel.Running() || c.backdrop.Running() {
		return false
	}
	for _, ws := range c.workspaces {
		for _, s := range ws.Slots {
			if s.Running() {
				return false
			}
		}
	}
	return true
}

// Toggle activates from the inactive state and deactivates from the
// active state. Transitions in flight are left alone.
func (c *Controller) Toggle(now time.Time) {
	switch c.state {
	case StateInactive:
		c.Activate(now)
	case StateActive:
		c.Deactivate(now)
	}
}

// Activate snapshots the workspace set into slots, computes the grid
// arrangement, and starts the entry animations.
func (c *Controller) Activate(now time.Time) {
	if c.state != StateInactive {
		return
	}

	sys := c.host.Windows
	c.output = sys.OutputGeometry()
	c.gridCols, c.gridRows = sys.WorkspaceGrid()
	if c.gridCols < 1 {
		c.gridCols = 1
	}
	if c.gridRows < 1 {
		c.gridRows = 1
	}
	c.current = sys.CurrentWorkspace()

	count := c.gridCols * c.gridRows
	if c.current < 0 || c.current >= count {
		c.current = 0
	}

	c.workspaces = make([]*Workspace, count)
	total := 0
	for i := 0; i < count; i++ {
		ws := &Workspace{Index: i, Row: i / c.gridCols, Col: i % c.gridCols}
		for _, info := range sys.Windows(i) {
			if !info.Mapped || info.Minimized {
				continue
			}
			ws.Slots = append(ws.Slots, newWindowSlot(info, c.curve, c.opts.AnimationDuration))
			total++
		}
		c.workspaces[i] = ws
	}

	c.thumbs = ThumbnailStrip(c.output, count, c.opts)
	c.previewGoal = PreviewGeometry(c.output, c.thumbs, c.opts)

	current := c.workspaces[c.current]
	c.layoutWorkspace(current, now, false)
	for _, s := range current.Slots {
		s.attachTransform(c.host.Transforms)
		s.startEnter(now)
	}

	warpRect(&c.preview, c.output)
	animateRect(&c.preview, c.previewGoal, now)
	c.backdrop.Warp(1)
	c.carousel.Warp(float64(c.current) * c.carouselStride())

	if c.host.Captures != nil {
		for i := 0; i < count; i++ {
			c.host.Captures.EnsureCapture(i)
		}
	}

	c.state = StateActivating
	if c.host.Recorder != nil {
		c.host.Recorder.SessionActivated(len(current.Slots))
	}
	log.Printf("Overview: activated with %d windows on workspace %d (%d total)",
		len(current.Slots), c.current, total)
}

// Deactivate reverses the session: slots animate back to their original
// geometry and the preview grows back to fullscreen. Works from the active
// state and as cancellation of an in-flight activation.
func (c *Controller) Deactivate(now time.Time) {
	if c.state != StateActive && c.state != StateActivating {
		return
	}
	c.drag.Cancel(now)

	for _, s := range c.currentSlots() {
		s.startExit(now)
	}
	animateRect(&c.preview, c.output, now)
	c.state = StateDeactivating
}

// switchToWorkspace plays the reverse zoom from a clicked thumbnail and
// schedules the underlying workspace switch for session teardown.
func (c *Controller) switchToWorkspace(idx int, now time.Time) {
	if c.state != StateActive || idx < 0 || idx >= len(c.thumbs) {
		return
	}
	c.drag.Cancel(now)
	c.pendingSwitch = idx

	// The destination will be captured fresh after the switch; current
	// slots and their transforms go away immediately.
	c.destroySlots()

	warpRect(&c.preview, c.thumbs[idx])
	animateRect(&c.preview, c.output, now)
	c.state = StateSwitchingWorkspace
	log.Printf("Overview: switching to workspace %d", idx)
}

// Navigate slides the carousel toward the given workspace without tearing
// down slots or zooming. The actual workspace switch is issued once the
// scroll settles. Ignored while the session is closing: a landing must
// never resurrect a transition that already has a switch scheduled.
func (c *Controller) Navigate(idx int, now time.Time) {
	if c.state != StateActive && c.state != StateActivating {
		return
	}
	if len(c.workspaces) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.workspaces) {
		idx = len(c.workspaces) - 1
	}
	c.carouselTarget = idx
	c.carousel.AnimateTo(float64(idx)*c.carouselStride(), now)
}

// Tick advances every animated quantity, refreshes window transforms, and
// runs the settlement checks. It reports whether a session is still live,
// which the host uses to keep scheduling redraws.
func (c *Controller) Tick(now time.Time) bool {
	if c.state == StateInactive {
		return false
	}

	c.backdrop.Tick(now)
	c.preview.Tick(now)
	c.carousel.Tick(now)

	for _, ws := range c.workspaces {
		for _, s := range ws.Slots {
			s.Anim.Tick(now)
			s.updateTransform()
		}
	}

	c.checkSettled(now)
	return c.state != StateInactive
}

// OnPointerMotion routes pointer movement into drag tracking or hover
// highlighting.
func (c *Controller) OnPointerMotion(p Point, now time.Time) {
	if c.drag.state != DragIdle {
		c.drag.Motion(p, now)
		return
	}
	if c.state == StateActive && c.Settled() {
		c.updateHover(p)
	}
}

// OnPointerButton handles presses and releases of the primary button.
// It returns true when the event was consumed by the overview.
func (c *Controller) OnPointerButton(button int, pressed bool, p Point, now time.Time) bool {
	if button != ButtonPrimary || c.state == StateInactive {
		return false
	}

	if pressed {
		if c.state == StateActive && c.Settled() {
			c.drag.Press(p)
			return true
		}
		return false
	}

	switch c.drag.state {
	case DragDragging:
		c.drag.Release(p, now)
		return true
	case DragPressed:
		c.drag.reset()
		c.handleClick(p, now)
		return true
	}
	return false
}

// CancelDrag aborts any drag in progress, restoring the grabbed window.
func (c *Controller) CancelDrag(now time.Time) {
	c.drag.Cancel(now)
}

// WindowDestroyed removes a window that disappeared mid-session. A drag
// holding it cancels with no relocation; the remaining slots re-layout.
func (c *Controller) WindowDestroyed(handle WindowHandle, now time.Time) {
	if c.state == StateInactive {
		return
	}
	if c.drag.slot != nil && c.drag.slot.Handle == handle {
		c.drag.Cancel(now)
	}
	for _, ws := range c.workspaces {
		for _, s := range ws.Slots {
			if s.Handle != handle {
				continue
			}
			s.releaseTransform(c.host.Transforms)
			if c.hovered == s {
				c.hovered = nil
			}
			ws.removeSlot(s)
			c.layoutWorkspace(ws, now, true)
			return
		}
	}
}

// Shutdown force-releases every session resource regardless of state.
// Used when the owning output disappears.
func (c *Controller) Shutdown(now time.Time) {
	if c.state == StateInactive {
		return
	}
	c.drag.Cancel(now)
	c.destroySlots()
	if c.host.Captures != nil {
		c.host.Captures.ReleaseCaptures()
	}
	c.backdrop.Warp(0)
	warpRect(&c.preview, c.output)
	c.carousel.Warp(float64(c.current) * c.carouselStride())
	c.pendingSwitch = -1
	c.carouselTarget = -1
	c.state = StateInactive
	log.Printf("Overview: shut down")
}

// handleClick resolves a settled-state click: window first, then the large
// preview, then thumbnails, then the backdrop. Everything deactivates one
// way or another.
func (c *Controller) handleClick(p Point, now time.Time) {
	if c.state != StateActive {
		return
	}

	if slot := c.windowAt(p); slot != nil {
		if err := c.host.Windows.RaiseWindow(slot.Handle); err != nil {
			log.Printf("Overview: raise window %d: %v", slot.Handle, err)
		}
		c.Deactivate(now)
		return
	}

	if idx := c.thumbnailAt(p); idx >= 0 {
		if idx != c.current {
			c.switchToWorkspace(idx, now)
		} else {
			c.Deactivate(now)
		}
		return
	}

	// Large preview and backdrop both close the overview.
	c.Deactivate(now)
}

func (c *Controller) updateHover(p Point) {
	target := c.windowAt(p)
	if target == c.hovered {
		return
	}
	for _, s := range c.currentSlots() {
		s.Hovered = s == target
	}
	c.hovered = target
}

// layoutWorkspace recomputes target geometries for a workspace's slots,
// optionally animating them there.
func (c *Controller) layoutWorkspace(ws *Workspace, now time.Time, animate bool) {
	if ws == nil || len(ws.Slots) == 0 {
		return
	}
	originals := make([]Geometry, len(ws.Slots))
	for i, s := range ws.Slots {
		originals[i] = s.Original
	}
	targets := ArrangeWindows(c.output, originals, c.opts.Spacing)
	for i, s := range ws.Slots {
		s.Target = targets[i]
		if animate {
			animateRect(&s.Anim, targets[i], now)
		}
	}
}

// checkSettled advances the state machine once all animations are done.
func (c *Controller) checkSettled(now time.Time) {
	if !c.Settled() {
		return
	}

	// A finished carousel slide lands on its target workspace.
	if c.carouselTarget >= 0 {
		target := c.carouselTarget
		c.carouselTarget = -1
		if target != c.current {
			c.focusWorkspace(target, now)
			return
		}
	}

	switch c.state {
	case StateActivating:
		c.state = StateActive
	case StateDeactivating, StateSwitchingWorkspace:
		cur := currentGeometry(&c.preview)
		if cur.W >= c.output.W-fullscreenTolerance {
			c.finishSession()
		}
	}
}

// focusWorkspace hands grid arrangement and transforms over to another
// workspace after a carousel slide, keeping the session alive.
func (c *Controller) focusWorkspace(idx int, now time.Time) {
	old := c.workspaces[c.current]
	for _, s := range old.Slots {
		s.releaseTransform(c.host.Transforms)
		warpRect(&s.Anim, s.Original)
		s.Hovered = false
	}
	c.hovered = nil

	from := c.current
	c.current = idx
	if err := c.host.Windows.SetCurrentWorkspace(idx); err != nil {
		log.Printf("Overview: set workspace %d: %v", idx, err)
	}
	if c.host.Recorder != nil {
		c.host.Recorder.WorkspaceSwitched(from, idx)
	}

	next := c.workspaces[idx]
	c.layoutWorkspace(next, now, false)
	for _, s := range next.Slots {
		s.attachTransform(c.host.Transforms)
		s.startEnter(now)
	}
	c.state = StateActivating
	log.Printf("Overview: carousel landed on workspace %d", idx)
}

// finishSession completes a closing transition: the deduplicated pending
// switch fires exactly once, then every per-session resource is released.
func (c *Controller) finishSession() {
	if c.pendingSwitch >= 0 {
		target := c.pendingSwitch
		c.pendingSwitch = -1
		if err := c.host.Windows.SetCurrentWorkspace(target); err != nil {
			log.Printf("Overview: set workspace %d: %v", target, err)
		}
		if c.host.Recorder != nil {
			c.host.Recorder.WorkspaceSwitched(c.current, target)
		}
	}

	c.destroySlots()
	if c.host.Captures != nil {
		c.host.Captures.ReleaseCaptures()
	}
	c.backdrop.Warp(0)
	c.state = StateInactive
	if c.host.Recorder != nil {
		c.host.Recorder.SessionDeactivated()
	}
	log.Printf("Overview: deactivated")
}

// destroySlots releases every transform and drops all slot lists. This is
// the single teardown path, so a transform can never outlive its slot.
func (c *Controller) destroySlots() {
	for _, ws := range c.workspaces {
		for _, s := range ws.Slots {
			s.releaseTransform(c.host.Transforms)
		}
		ws.Slots = nil
	}
	c.hovered = nil
}

func (c *Controller) currentSlots() []*WindowSlot {
	if c.current < 0 || c.current >= len(c.workspaces) {
		return nil
	}
	return c.workspaces[c.current].Slots
}

func (c *Controller) carouselStride() float64 {
	if c.previewGoal.W > 0 {
		return c.previewGoal.W + c.opts.Spacing
	}
	return c.output.W
}

// Accessors consumed by renderers.

// Output returns the output extent captured at activation.
func (c *Controller) Output() Geometry { return c.output }

// PreviewCurrent returns the live desktop preview rectangle.
func (c *Controller) PreviewCurrent() Geometry { return currentGeometry(&c.preview) }

// PreviewGoal returns the settled preview rectangle of this session.
func (c *Controller) PreviewGoal() Geometry { return c.previewGoal }

// Thumbnails returns the fixed workspace thumbnail rectangles.
func (c *Controller) Thumbnails() []Geometry { return c.thumbs }

// BackdropAlpha returns the current backdrop dim strength.
func (c *Controller) BackdropAlpha() float64 { return c.backdrop.Value() }

// CurrentWorkspace returns the focused workspace index.
func (c *Controller) CurrentWorkspace() int { return c.current }

// AnimatingWorkspace returns the workspace the preview currently shows:
// the pending switch target while zooming out, otherwise the focused one.
func (c *Controller) AnimatingWorkspace() int {
	if c.state == StateSwitchingWorkspace && c.pendingSwitch >= 0 {
		return c.pendingSwitch
	}
	return c.current
}

// CurrentSlots returns the focused workspace's slots in stacking order.
func (c *Controller) CurrentSlots() []*WindowSlot { return c.currentSlots() }

// Drag exposes the drag subsystem for renderers.
func (c *Controller) Drag() *DragController { return &c.drag }

// WorkspacePreviewRect returns the preview rectangle of a workspace under
// the live carousel offset; the focused workspace sits at the preview
// position, neighbours are shifted horizontally by whole strides.
func (c *Controller) WorkspacePreviewRect(idx int) Geometry {
	base := currentGeometry(&c.preview)
	shift := float64(idx)*c.carouselStride() - c.carousel.Value()
	return base.Translated(shift, 0)
}
