package ease

// Transform — ease a sampled sequence
//
// Description:
//
//	Transform re-shapes a finite, non-empty, ordered sequence of sample
//	points by evaluating one easing curve across it. Element i of the
//	result is
//
//	  fn(seq[i]−seq[0], seq[0], seq[last]−seq[0], seq[last]−seq[0])
//
//	i.e. the first sample is the start value, offsets from it are the
//	current time, and the total rise seq[last]−seq[0] serves as BOTH the
//	change in value and the duration.
//
// Compatibility note:
//
//	Defining duration as equal to change-in-value conflates two unrelated
//	units and makes this helper a demonstration, not a general timeline
//	mapper. It reproduces the reference behavior exactly and must not be
//	"fixed"; callers that need an independent duration should call the
//	easing functions directly.
//
// Validation:
//
//	Only the curve identifier is validated: an unknown Curve fails fast
//	with ErrUnknownCurve before any arithmetic. Sequence contents are not
//	inspected, matching the underlying formulas: an empty sequence panics
//	on the first index, and a constant or single-element sequence divides
//	by zero and yields NaN/Inf per IEEE-754.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N) for the eagerly built output slice
//
// Errors:
//   - ErrUnknownCurve — c is not a member of the enumeration.
func Transform(seq []float64, c Curve) ([]float64, error) {
	fn, err := FuncOf(c)
	if err != nil {
		return nil, err
	}

	return TransformFunc(seq, fn), nil
}

// TransformFunc is the non-erroring core of Transform for callers that
// already hold a resolved easing function. Same parameter derivation,
// same absence of sequence validation; output length always equals input
// length.
func TransformFunc(seq []float64, fn Func) []float64 {
	start := seq[0]
	change := seq[len(seq)-1] - start

	out := make([]float64, len(seq))
	for i, s := range seq {
		out[i] = fn(s-start, start, change, change)
	}

	return out
}
