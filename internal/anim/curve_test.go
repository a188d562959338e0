// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/anim/curve_test.go
// Summary: Exercises bezier easing evaluation to guard against regressions.
// Usage: Executed during `go test`.

package anim

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	c := NewCurve(0.25, 0.1, 0.25, 1.0)

	if got := c.Evaluate(0); got != 0 {
		t.Errorf("Evaluate(0) = %v, want 0", got)
	}
	if got := c.Evaluate(1); got != 1 {
		t.Errorf("Evaluate(1) = %v, want 1", got)
	}
	if got := c.Evaluate(-0.5); got != 0 {
		t.Errorf("Evaluate(-0.5) = %v, want 0", got)
	}
	if got := c.Evaluate(1.5); got != 1 {
		t.Errorf("Evaluate(1.5) = %v, want 1", got)
	}
}

func TestCurveMonotonic(t *testing.T) {
	c := NewCurve(0.25, 0.1, 0.25, 1.0)

	prev := c.Evaluate(0)
	for i := 1; i <= 10; i++ {
		x := float64(i) / 10
		got := c.Evaluate(x)
		if got < prev {
			t.Errorf("Evaluate(%v) = %v, decreased from %v", x, got, prev)
		}
		prev = got
	}
}

func TestCurveLinearControlPoints(t *testing.T) {
	// Control points on the diagonal make the curve the identity.
	c := NewCurve(1.0/3, 1.0/3, 2.0/3, 2.0/3)

	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		got := c.Evaluate(x)
		if math.Abs(got-x) > 1e-3 {
			t.Errorf("Evaluate(%v) = %v, want ~%v", x, got, x)
		}
	}
}

func TestCurveNeverEscapesUnitRange(t *testing.T) {
	// Aggressive control points still must not produce NaN or wild values.
	c := NewCurve(0.0, 1.0, 1.0, 0.0)

	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		got := c.Evaluate(x)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Evaluate(%v) produced %v", x, got)
		}
	}
}
