// Package ease provides the classic Penner easing functions: pure,
// closed-form mappings from elapsed time to an interpolated value, used
// to drive non-linear motion in animation, UI transitions, and
// trajectory planning.
//
// 🚀 What is easing?
//
//	An easing function shapes motion between two values. Instead of moving
//	at constant velocity (linear interpolation), the value accelerates,
//	decelerates, or both. Easing is the backbone of:
//	  • UI transitions & micro-interactions
//	  • Sprite and camera animation
//	  • LED / lighting fades
//	  • Servo & robot trajectory smoothing
//
// ✨ Key features:
//   - 22 curves: Linear plus quad / cubic / quart / quint / sine / expo /
//     circ, each as In, Out, and InOut
//   - closed [Curve] enumeration with String / ParseCurve round-trip and a
//     single dispatch table ([FuncOf]) — unknown identifiers fail fast,
//     never silently fall back to another curve
//   - [Transform]: apply a curve across a sampled sequence in one call
//   - faithful to the reference formulas: no clamping, no validation, no
//     endpoint special-casing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ease"
//
//	// direct call: halfway through a 2s fade from 0 to 255
//	v := ease.InOutQuad(1.0, 0, 255, 2.0)
//
//	// dynamic dispatch through the closed enumeration
//	fn, err := ease.FuncOf(ease.CurveOutCirc)
//	if err != nil {
//	  // ErrUnknownCurve: identifier outside the supported set
//	}
//	v = fn(1.0, 0, 255, 2.0)
//
//	// ease a whole sampled sequence
//	out, err := ease.Transform([]float64{1, 2, 3, 4, 5}, ease.CurveInCubic)
//
// Every function takes the four canonical Penner parameters
// (t, b, c, d) = (current time, start value, change in value, duration)
// and returns the eased value. All parameters are unrestricted real
// numbers: inputs outside [0, d] extrapolate smoothly, d = 0 divides by
// zero, and the circular family takes the square root of a negative
// number once the normalized time leaves [-1, 1]. Such cases propagate as
// IEEE-754 ±Inf/NaN exactly as the arithmetic produces them — never
// intercepted, clamped, or corrected. Bit-for-bit compatibility with the
// reference formulas is the package's contract.
//
// Concurrency: every function is pure and touches no shared state, so any
// number of goroutines may call any of them without coordination.
//
// Performance:
//
//   - Time:   O(1) per call, O(N) for [Transform]
//   - Memory: zero allocations per call, one output slice for [Transform]
//
// See examples in example_test.go and runnable demos under examples/.
package ease
