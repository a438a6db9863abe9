// Package ease defines the closed curve enumeration, sentinel errors,
// and dispatch helpers shared by every easing routine in this module.
package ease

import (
	"errors"
	"fmt"
)

// Sentinel errors for curve resolution.
var (
	// ErrUnknownCurve indicates a Curve value or name outside the supported
	// enumeration. Callers branch on it with errors.Is.
	ErrUnknownCurve = errors.New("ease: unknown easing curve")
)

// Func is the shared shape of every easing function in this package:
//
//	t — current time, the elapsed position on the timeline
//	b — start value, the output at t = 0
//	c — change in value, the total signed delta applied by t = d
//	d — duration, the total span of the timeline
//
// All four parameters are unrestricted real numbers; see the package
// documentation for the numeric contract (extrapolation, ±Inf/NaN).
type Func func(t, b, c, d float64) float64

// Curve identifies one of the supported easing shapes. The set is closed:
// every valid Curve is one of the constants below, and every dispatch
// helper rejects values outside it with ErrUnknownCurve instead of
// defaulting to another curve.
type Curve int

// Enum values (stable ordering: Linear first, then each power/trig family
// as In, Out, InOut).
const (
	// CurveLinear is constant velocity: no easing at all.
	CurveLinear Curve = iota

	// CurveInQuad accelerates from rest along t².
	CurveInQuad
	// CurveOutQuad decelerates to rest along t².
	CurveOutQuad
	// CurveInOutQuad accelerates until halfway, then decelerates.
	CurveInOutQuad

	// CurveInCubic accelerates from rest along t³.
	CurveInCubic
	// CurveOutCubic decelerates to rest along t³.
	CurveOutCubic
	// CurveInOutCubic accelerates until halfway, then decelerates.
	CurveInOutCubic

	// CurveInQuart accelerates from rest along t⁴.
	CurveInQuart
	// CurveOutQuart decelerates to rest along t⁴.
	CurveOutQuart
	// CurveInOutQuart accelerates until halfway, then decelerates.
	CurveInOutQuart

	// CurveInQuint accelerates from rest along t⁵.
	CurveInQuint
	// CurveOutQuint decelerates to rest along t⁵.
	CurveOutQuint
	// CurveInOutQuint accelerates until halfway, then decelerates.
	CurveInOutQuint

	// CurveInSine accelerates from rest along a quarter sine wave.
	CurveInSine
	// CurveOutSine decelerates to rest along a quarter sine wave.
	CurveOutSine
	// CurveInOutSine accelerates until halfway, then decelerates.
	CurveInOutSine

	// CurveInExpo accelerates from near-rest along 2^(10·x).
	CurveInExpo
	// CurveOutExpo decelerates to near-rest along 2^(−10·x).
	CurveOutExpo
	// CurveInOutExpo accelerates until halfway, then decelerates.
	CurveInOutExpo

	// CurveInCirc accelerates from rest along a quarter circle arc.
	CurveInCirc
	// CurveOutCirc decelerates to rest along a quarter circle arc.
	CurveOutCirc
	// CurveInOutCirc accelerates until halfway, then decelerates.
	CurveInOutCirc

	// curveCount is the number of members in the enumeration; it must stay
	// last so the dispatch and name tables cover exactly the closed set.
	curveCount
)

// curveNames maps each Curve to its canonical identifier. Indexed by the
// enum value itself, so declaration order is the single source of truth.
var curveNames = [curveCount]string{
	CurveLinear:     "Linear",
	CurveInQuad:     "InQuad",
	CurveOutQuad:    "OutQuad",
	CurveInOutQuad:  "InOutQuad",
	CurveInCubic:    "InCubic",
	CurveOutCubic:   "OutCubic",
	CurveInOutCubic: "InOutCubic",
	CurveInQuart:    "InQuart",
	CurveOutQuart:   "OutQuart",
	CurveInOutQuart: "InOutQuart",
	CurveInQuint:    "InQuint",
	CurveOutQuint:   "OutQuint",
	CurveInOutQuint: "InOutQuint",
	CurveInSine:     "InSine",
	CurveOutSine:    "OutSine",
	CurveInOutSine:  "InOutSine",
	CurveInExpo:     "InExpo",
	CurveOutExpo:    "OutExpo",
	CurveInOutExpo:  "InOutExpo",
	CurveInCirc:     "InCirc",
	CurveOutCirc:    "OutCirc",
	CurveInOutCirc:  "InOutCirc",
}

// curveFuncs is the single dispatch table from identifier to formula,
// indexed by the enum value. Adding a curve means adding exactly one
// constant, one name, and one entry here.
var curveFuncs = [curveCount]Func{
	CurveLinear:     Linear,
	CurveInQuad:     InQuad,
	CurveOutQuad:    OutQuad,
	CurveInOutQuad:  InOutQuad,
	CurveInCubic:    InCubic,
	CurveOutCubic:   OutCubic,
	CurveInOutCubic: InOutCubic,
	CurveInQuart:    InQuart,
	CurveOutQuart:   OutQuart,
	CurveInOutQuart: InOutQuart,
	CurveInQuint:    InQuint,
	CurveOutQuint:   OutQuint,
	CurveInOutQuint: InOutQuint,
	CurveInSine:     InSine,
	CurveOutSine:    OutSine,
	CurveInOutSine:  InOutSine,
	CurveInExpo:     InExpo,
	CurveOutExpo:    OutExpo,
	CurveInOutExpo:  InOutExpo,
	CurveInCirc:     InCirc,
	CurveOutCirc:    OutCirc,
	CurveInOutCirc:  InOutCirc,
}

// String provides the canonical identifier for logs, errors, and
// ParseCurve round-trips (deterministic).
func (c Curve) String() string {
	if c < 0 || c >= curveCount {
		return fmt.Sprintf("Curve(%d)", int(c))
	}

	return curveNames[c]
}

// FuncOf resolves a Curve to its easing function through the dispatch
// table. Values outside the enumeration return ErrUnknownCurve wrapped
// with the offending value — never a fallback curve.
//
// Example:
//
//	fn, err := ease.FuncOf(ease.CurveInOutSine)
//	if err != nil { ... }
//	v := fn(t, b, c, d)
func FuncOf(c Curve) (Func, error) {
	if c < 0 || c >= curveCount {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, c)
	}

	return curveFuncs[c], nil
}

// ParseCurve maps a canonical name (as produced by Curve.String, e.g.
// "InOutExpo") back to its Curve. Unknown names return ErrUnknownCurve
// wrapped with the rejected input.
func ParseCurve(s string) (Curve, error) {
	for c, name := range curveNames {
		if s == name {
			return Curve(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, s)
}

// Curves returns a fresh slice of every supported identifier in
// declaration order, for callers that iterate the closed set.
func Curves() []Curve {
	all := make([]Curve, curveCount)
	for c := range all {
		all[c] = Curve(c)
	}

	return all
}
