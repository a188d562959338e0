// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/curve.go
// Summary: Cubic bezier easing curve evaluation.
// Usage: Shared by all animated values of one overview controller.

package anim

import "math"

// Curve is a cubic bezier easing curve from (0,0) to (1,1) defined by two
// control points. It is stateless and safe to share between animations.
type Curve struct {
	p1x, p1y float64
	p2x, p2y float64
}

// Newton-Raphson parameters for solving x(t) = progress.
const (
	curveIterations = 8
	curveTolerance  = 1e-4
)

// NewCurve returns a curve with the given control points.
func NewCurve(p1x, p1y, p2x, p2y float64) *Curve {
	return &Curve{p1x: p1x, p1y: p1y, p2x: p2x, p2y: p2y}
}

// DefaultCurve is the standard ease curve used by the overview animations.
func DefaultCurve() *Curve {
	return NewCurve(0.25, 0.1, 0.25, 1.0)
}

// Evaluate maps normalized progress on the x axis to the eased value on the
// y axis. Inputs at or beyond the endpoints short-circuit to 0 and 1.
func (c *Curve) Evaluate(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return c.computeY(c.findTForX(x))
}

func (c *Curve) computeX(t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*c.p1x + 3*mt*t*t*c.p2x + t*t*t
}

func (c *Curve) computeY(t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*c.p1y + 3*mt*t*t*c.p2y + t*t*t
}

// findTForX inverts x(t) by Newton-Raphson iteration seeded at t = x.
// If the residual stays within tolerance or the derivative collapses, the
// best t found so far is returned rather than failing.
func (c *Curve) findTForX(x float64) float64 {
	t := x
	for i := 0; i < curveIterations; i++ {
		dx := c.computeX(t) - x
		if math.Abs(dx) < curveTolerance {
			break
		}

		mt := 1 - t
		derivative := 3*mt*mt*c.p1x + 6*mt*t*(c.p2x-c.p1x) + 3*t*t*(1-c.p2x)
		if math.Abs(derivative) < curveTolerance {
			break
		}

		t -= dx / derivative
		t = clamp(t, 0, 1)
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
