package ease

import "math"

// This file holds the complete easing function set: Linear plus the quad,
// cubic, quart, quint, sine, expo, and circ families, each as In (zero
// velocity at start, accelerating), Out (decelerating to zero velocity at
// end), and InOut (accelerate, then decelerate, symmetric about the
// midpoint).
//
// Shared contract (see doc.go for the full statement):
//
//	t — current time, b — start value, c — change in value, d — duration
//
//  1. Every Out curve is the point-reflection of its In curve about
//     (d, b+c): substituting t/d−1 makes velocity maximal at t=0 and zero
//     at t=d.
//  2. Every InOut curve normalizes against the half duration d/2, runs the
//     In shape at half amplitude while t/(d/2) < 1 (strictly), and the
//     reflected Out shape from the midpoint on. The strict comparison is
//     part of the contract: t/(d/2) == 1 takes the Out branch.
//  3. No validation, clamping, or endpoint special-casing anywhere. d == 0
//     divides by zero; circ curves produce NaN once normalized time leaves
//     [-1, 1]. Both propagate per IEEE-754.

// Linear eases with constant velocity: v = c·(t/d) + b.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// InQuad accelerates from rest: v = c·(t/d)² + b.
func InQuad(t, b, c, d float64) float64 {
	t /= d

	return c*t*t + b
}

// OutQuad decelerates to rest: v = −c·(t/d)·(t/d−2) + b.
func OutQuad(t, b, c, d float64) float64 {
	t /= d

	return -c*t*(t-2) + b
}

// InOutQuad accelerates along InQuad until the midpoint, then decelerates
// along OutQuad.
func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--

	return -c/2*(t*(t-2)-1) + b
}

// InCubic accelerates from rest: v = c·(t/d)³ + b.
func InCubic(t, b, c, d float64) float64 {
	t /= d

	return c*t*t*t + b
}

// OutCubic decelerates to rest: v = c·((t/d−1)³ + 1) + b.
func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1

	return c*(t*t*t+1) + b
}

// InOutCubic accelerates along InCubic until the midpoint, then
// decelerates along OutCubic.
func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2

	return c/2*(t*t*t+2) + b
}

// InQuart accelerates from rest: v = c·(t/d)⁴ + b.
func InQuart(t, b, c, d float64) float64 {
	t /= d

	return c*t*t*t*t + b
}

// OutQuart decelerates to rest: v = −c·((t/d−1)⁴ − 1) + b.
func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1

	return -c*(t*t*t*t-1) + b
}

// InOutQuart accelerates along InQuart until the midpoint, then
// decelerates along OutQuart.
func InOutQuart(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2

	return -c/2*(t*t*t*t-2) + b
}

// InQuint accelerates from rest: v = c·(t/d)⁵ + b.
func InQuint(t, b, c, d float64) float64 {
	t /= d

	return c*t*t*t*t*t + b
}

// OutQuint decelerates to rest: v = c·((t/d−1)⁵ + 1) + b.
func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1

	return c*(t*t*t*t*t+1) + b
}

// InOutQuint accelerates along InQuint until the midpoint, then
// decelerates along OutQuint.
func InOutQuint(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2

	return c/2*(t*t*t*t*t+2) + b
}

// InSine accelerates from rest along a quarter sine wave:
// v = −c·cos(t/d·π/2) + c + b.
func InSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

// OutSine decelerates to rest along a quarter sine wave:
// v = c·sin(t/d·π/2) + b.
func OutSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

// InOutSine accelerates, then decelerates, along a half sine wave:
// v = −c/2·(cos(π·t/d) − 1) + b. The single closed form already passes
// through the midpoint, so no branch is needed.
func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

// InExpo accelerates from near-rest: v = c·2^(10·(t/d−1)) + b.
// Note the reference formula has no special case at t = 0, so the curve
// starts at b + c/1024, not exactly b.
func InExpo(t, b, c, d float64) float64 {
	return c*math.Pow(2, 10*(t/d-1)) + b
}

// OutExpo decelerates to near-rest: v = c·(1 − 2^(−10·t/d)) + b.
// Note the reference formula has no special case at t = d, so the curve
// ends at b + c − c/1024, not exactly b + c.
func OutExpo(t, b, c, d float64) float64 {
	return c*(1-math.Pow(2, -10*t/d)) + b
}

// InOutExpo accelerates along InExpo until the midpoint, then decelerates
// along OutExpo. Like the rest of the expo family it keeps the reference
// endpoint offsets (c/2048 at both ends).
func InOutExpo(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--

	return c/2*(2-math.Pow(2, -10*t)) + b
}

// InCirc accelerates from rest along a quarter circle arc:
// v = −c·(√(1−(t/d)²) − 1) + b.
func InCirc(t, b, c, d float64) float64 {
	t /= d

	return -c*(math.Sqrt(1-t*t)-1) + b
}

// OutCirc decelerates to rest along a quarter circle arc:
// v = c·√(1−(t/d−1)²) + b.
func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1

	return c*math.Sqrt(1-t*t) + b
}

// InOutCirc accelerates along InCirc until the midpoint, then decelerates
// along OutCirc.
func InOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2

	return c/2*(math.Sqrt(1-t*t)+1) + b
}
