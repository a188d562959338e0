// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/layout.go
// Summary: Pure layout computations for the overview arrangement.
// Usage: Invoked by the controller whenever the window set or the
//        arrangement area changes. No state is kept here.

package overview

import "math"

// minWindowSize is the floor applied to degenerate window dimensions when
// a slot is created.
const minWindowSize = 100

// cellFillFactor shrinks a window inside its grid cell so neighbours never
// touch even at identical aspect ratios.
const cellFillFactor = 0.95

// thumbHeightFraction sizes workspace thumbnails relative to output height.
const thumbHeightFraction = 0.12

// GridDims picks the grid dimensions for n windows arranged in an area of
// the given aspect ratio. Small counts get a single row; larger counts
// search column candidates and score each by aspect mismatch plus a
// penalty for empty cells, which favours wide, nearly-full grids.
func GridDims(n int, aspect float64) (cols, rows int) {
	switch {
	case n <= 0:
		return 0, 0
	case n == 1:
		return 1, 1
	case n == 2:
		return 2, 1
	case n == 3:
		return 3, 1
	}

	if aspect <= 0 {
		aspect = 1
	}

	maxCols := n
	if maxCols > 6 {
		maxCols = 6
	}

	bestScore := math.Inf(1)
	for c := 2; c <= maxCols; c++ {
		r := (n + c - 1) / c
		cellAspect := float64(c) / float64(r)
		score := math.Abs(cellAspect-aspect)/aspect + 0.5*float64(c*r-n)/float64(n)
		if score < bestScore {
			bestScore = score
			cols, rows = c, r
		}
	}
	return cols, rows
}

// ArrangeWindows computes a target geometry for every original window
// geometry inside the given area. Cells are uniform; the last, possibly
// partial, row is re-centered; each window is fitted into its cell
// preserving aspect ratio and centered.
func ArrangeWindows(area Geometry, originals []Geometry, spacing float64) []Geometry {
	n := len(originals)
	if n == 0 {
		return nil
	}

	availW := area.W - spacing*4
	availH := area.H - spacing*4
	if availW <= 0 || availH <= 0 {
		availW = math.Max(area.W, 1)
		availH = math.Max(area.H, 1)
	}

	cols, rows := GridDims(n, availW/availH)

	cellW := (availW - spacing*float64(cols-1)) / float64(cols)
	cellH := (availH - spacing*float64(rows-1)) / float64(rows)

	gridW := float64(cols)*cellW + float64(cols-1)*spacing
	gridH := float64(rows)*cellH + float64(rows-1)*spacing
	gridX := area.X + (area.W-gridW)/2
	gridY := area.Y + (area.H-gridH)/2

	targets := make([]Geometry, n)
	for i, orig := range originals {
		col := i % cols
		row := i / cols

		cellX := gridX + float64(col)*(cellW+spacing)
		cellY := gridY + float64(row)*(cellH+spacing)

		// Re-center a trailing partial row instead of left-aligning it.
		if row == rows-1 {
			lastRowCount := n - row*cols
			if lastRowCount < cols {
				rowW := float64(lastRowCount)*cellW + float64(lastRowCount-1)*spacing
				cellX = gridX + (gridW-rowW)/2 + float64(col)*(cellW+spacing)
			}
		}

		ow := math.Max(orig.W, 1)
		oh := math.Max(orig.H, 1)
		scale := math.Min(cellW/ow, cellH/oh) * cellFillFactor

		scaledW := ow * scale
		scaledH := oh * scale

		targets[i] = Geometry{
			X: cellX + (cellW-scaledW)/2,
			Y: cellY + (cellH-scaledH)/2,
			W: scaledW,
			H: scaledH,
		}
	}
	return targets
}

// ThumbnailStrip computes one small rectangle per workspace, laid out in a
// centered row along the bottom of the output, spaced by half the standard
// spacing unit.
func ThumbnailStrip(output Geometry, workspaceCount int, opts Options) []Geometry {
	if workspaceCount <= 0 {
		return nil
	}

	thumbH := output.H * thumbHeightFraction
	thumbW := thumbH * (output.W / output.H)
	gap := opts.Spacing / 2

	totalW := float64(workspaceCount)*thumbW + float64(workspaceCount-1)*gap
	startX := output.X + (output.W-totalW)/2
	y := output.Y + output.H - opts.Spacing*2 - thumbH

	thumbs := make([]Geometry, workspaceCount)
	for i := range thumbs {
		thumbs[i] = Geometry{
			X: startX + float64(i)*(thumbW+gap),
			Y: y,
			W: thumbW,
			H: thumbH,
		}
	}
	return thumbs
}

// PreviewGeometry computes the large desktop preview rectangle: centered
// between the panel and the thumbnail strip, preserving the output's
// aspect ratio and scaled down slightly for breathing room.
func PreviewGeometry(output Geometry, thumbs []Geometry, opts Options) Geometry {
	topMargin := opts.PanelHeight + opts.Spacing*2
	bottom := output.Y + output.H - opts.Spacing*2
	if len(thumbs) > 0 {
		bottom = thumbs[0].Y - opts.Spacing*2
	}
	sideMargin := opts.Spacing * 4

	availH := bottom - (output.Y + topMargin)
	availW := output.W - sideMargin*2
	if availH <= 0 || availW <= 0 {
		return Geometry{X: output.X, Y: output.Y, W: output.W, H: output.H}
	}

	aspect := output.W / output.H
	mainW := availW
	mainH := mainW / aspect
	if mainH > availH {
		mainH = availH
		mainW = mainH * aspect
	}

	mainW *= opts.PreviewScale
	mainH *= opts.PreviewScale

	return Geometry{
		X: output.X + (output.W-mainW)/2,
		Y: output.Y + topMargin + (availH-mainH)/2,
		W: mainW,
		H: mainH,
	}
}

// PreviewCornerRadius scales the rounded-corner radius with the preview
// animation: fullscreen renders square, the shrunk preview fully rounded.
func PreviewCornerRadius(base, previewW, outputW float64) float64 {
	if outputW <= 0 {
		return 0
	}
	large := base * 2
	r := large * (1 - previewW/outputW)
	return math.Max(0, math.Min(r, large))
}
