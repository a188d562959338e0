// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/renderer.go
// Summary: Draws an overview session onto a terminal screen.
// Usage: The frame loop calls Frame once per tick; layout units are
//        scaled to terminal cells on every draw.

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"panorama/overview"
)

var (
	styleBackdrop  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	stylePreview   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWindow    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleHovered   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleAnimating = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	styleThumb     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleThumbCur  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleThumbDrop = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFloating  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
)

// Renderer draws overview sessions onto a screen driver.
type Renderer struct {
	driver ScreenDriver
}

// NewRenderer wraps a screen driver.
func NewRenderer(driver ScreenDriver) *Renderer {
	return &Renderer{driver: driver}
}

// Frame draws the current session state and flushes it to the screen.
func (r *Renderer) Frame(c *overview.Controller) {
	r.driver.Clear()

	w, h := r.driver.Size()
	out := c.Output()
	if out.W <= 0 || out.H <= 0 || w <= 0 || h <= 0 {
		r.driver.Show()
		return
	}
	sx := float64(w) / out.W
	sy := float64(h) / out.H

	if c.BackdropAlpha() > 0 {
		r.fill(0, 0, w, h, '·', styleBackdrop)
	}

	// Every workspace preview rides the carousel; off-screen rectangles
	// are skipped rather than clipped.
	for i := range c.Thumbnails() {
		wp := c.WorkspacePreviewRect(i)
		if wp.X+wp.W <= out.X || wp.X >= out.X+out.W {
			continue
		}
		r.border(cellRect(wp, sx, sy), stylePreview)
	}

	shift := c.WorkspacePreviewRect(c.CurrentWorkspace()).X - c.PreviewCurrent().X
	for _, slot := range c.CurrentSlots() {
		if slot.IsHidden() {
			continue
		}
		screen := c.WorkspaceToScreenRect(slot.Current()).Translated(shift, 0)
		box := cellRect(screen, sx, sy)
		style := styleWindow
		switch {
		case slot.Hovered:
			style = styleHovered
		case slot.Running():
			style = styleAnimating
		}
		r.box(box, slot.Title, style)
	}

	drag := c.Drag()
	for i, thumb := range c.Thumbnails() {
		tr := cellRect(thumb, sx, sy)
		style := styleThumb
		switch {
		case i == drag.HoverTarget():
			style = styleThumbDrop
		case i == c.AnimatingWorkspace():
			style = styleThumbCur
		}
		r.border(tr, style)
	}

	if floating, ok := drag.FloatingRect(); ok {
		r.box(cellRect(floating, sx, sy), "", styleFloating)
	}

	r.driver.Show()
}

// Desktop draws the plain workspace while no session is live, with a
// hint line at the bottom of the screen.
func (r *Renderer) Desktop(sys overview.WindowSystem, hint string) {
	r.driver.Clear()

	w, h := r.driver.Size()
	out := sys.OutputGeometry()
	if out.W <= 0 || out.H <= 0 || w <= 0 || h <= 0 {
		r.driver.Show()
		return
	}
	sx := float64(w) / out.W
	sy := float64(h) / out.H

	for _, info := range sys.Windows(sys.CurrentWorkspace()) {
		if !info.Mapped || info.Minimized {
			continue
		}
		r.box(cellRect(info.Geometry, sx, sy), info.Title, styleWindow)
	}

	if hint != "" && h > 0 {
		label := runewidth.Truncate(hint, w, "…")
		col := 0
		for _, ch := range label {
			r.driver.SetContent(col, h-1, ch, nil, stylePreview)
			col += runewidth.RuneWidth(ch)
		}
	}
	r.driver.Show()
}

type rect struct {
	x, y, w, h int
}

func cellRect(g overview.Geometry, sx, sy float64) rect {
	x0 := int(g.X * sx)
	y0 := int(g.Y * sy)
	x1 := int((g.X + g.W) * sx)
	y1 := int((g.Y + g.H) * sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return rect{x: x0, y: y0, w: x1 - x0, h: y1 - y0}
}

func (r *Renderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.driver.SetContent(col, row, ch, nil, style)
		}
	}
}

// box draws a filled rectangle with the title on its top row, truncated
// to the box width.
func (r *Renderer) box(b rect, title string, style tcell.Style) {
	r.fill(b.x, b.y, b.w, b.h, ' ', style)
	if title == "" || b.w < 2 {
		return
	}
	label := runewidth.Truncate(title, b.w, "…")
	col := b.x
	for _, ch := range label {
		r.driver.SetContent(col, b.y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) border(b rect, style tcell.Style) {
	if b.w < 2 || b.h < 2 {
		r.fill(b.x, b.y, b.w, b.h, '░', style)
		return
	}
	for col := b.x + 1; col < b.x+b.w-1; col++ {
		r.driver.SetContent(col, b.y, '─', nil, style)
		r.driver.SetContent(col, b.y+b.h-1, '─', nil, style)
	}
	for row := b.y + 1; row < b.y+b.h-1; row++ {
		r.driver.SetContent(b.x, row, '│', nil, style)
		r.driver.SetContent(b.x+b.w-1, row, '│', nil, style)
	}
	r.driver.SetContent(b.x, b.y, '┌', nil, style)
	r.driver.SetContent(b.x+b.w-1, b.y, '┐', nil, style)
	r.driver.SetContent(b.x, b.y+b.h-1, '└', nil, style)
	r.driver.SetContent(b.x+b.w-1, b.y+b.h-1, '┘', nil, style)
}

// PointerToLayout maps a terminal cell coordinate into layout units.
func PointerToLayout(c *overview.Controller, cellX, cellY, cols, rows int) overview.Point {
	out := c.Output()
	if cols <= 0 || rows <= 0 {
		return overview.Point{}
	}
	return overview.Point{
		X: (float64(cellX) + 0.5) * out.W / float64(cols),
		Y: (float64(cellY) + 0.5) * out.H / float64(rows),
	}
}
