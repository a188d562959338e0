// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/geometry.go
// Summary: Screen and workspace space geometry types.
// Usage: Shared by the layout engine, controller, and coordinate mapping.
// Notes: One convention everywhere: origin top-left, y grows downward.

package overview

import (
	"time"

	"panorama/internal/anim"
)

// Point is a position in either screen or workspace space; which one is
// determined by context.
type Point struct {
	X, Y float64
}

// Geometry is an axis-aligned rectangle.
type Geometry struct {
	X, Y, W, H float64
}

// Contains reports whether p falls inside the rectangle. The right and
// bottom edges are exclusive, matching pointer hit-testing semantics.
func (g Geometry) Contains(p Point) bool {
	return p.X >= g.X && p.X < g.X+g.W && p.Y >= g.Y && p.Y < g.Y+g.H
}

// Empty reports whether the rectangle has no usable area.
func (g Geometry) Empty() bool {
	return g.W <= 0 || g.H <= 0
}

// Center returns the rectangle's midpoint.
func (g Geometry) Center() Point {
	return Point{X: g.X + g.W/2, Y: g.Y + g.H/2}
}

// Translated returns a copy shifted by (dx, dy).
func (g Geometry) Translated(dx, dy float64) Geometry {
	return Geometry{X: g.X + dx, Y: g.Y + dy, W: g.W, H: g.H}
}

// currentGeometry reads the live interpolated geometry of an animated rect.
func currentGeometry(r *anim.Rect) Geometry {
	x, y, w, h := r.Current()
	return Geometry{X: x, Y: y, W: w, H: h}
}

// warpRect snaps an animated rect to the given geometry.
func warpRect(r *anim.Rect, g Geometry) {
	r.Warp(g.X, g.Y, g.W, g.H)
}

// animateRect starts an animated rect toward the given geometry.
func animateRect(r *anim.Rect, g Geometry, now time.Time) {
	r.AnimateTo(g.X, g.Y, g.W, g.H, now)
}
