package decomp

import "math"

// computeErr normalizes the discrepancy between a tear stream's freshly
// computed source value s and the guess d that was fixed on the
// destination member to produce it. Absolute tolerance returns s-d
// directly; relative tolerance divides by s, except: 0/0 (both sides
// already equal at zero) reports zero error, and x/0 (s is zero but the
// numerator isn't) reports the numerator itself rather than an infinite or
// NaN ratio, so a single degenerate stream can never poison the rest of
// the convergence check.
func computeErr(s, d float64, tolType ToleranceType) float64 {
	x := s - d
	if tolType == TolAbs {
		return x
	}
	if s == 0 {
		return x
	}

	return x / s
}

// almostEqual reports whether a and b differ by no more than tol.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// wegsteinStep computes the next guess for a tear stream given its last
// two (guess, computed-value) pairs, clamping the acceleration factor q to
// [accelMin, accelMax]. When the two prior guesses coincide (denom == 0)
// no slope can be estimated and the step degenerates to direct
// substitution.
func wegsteinStep(prevGuess, prevValue, guess, value, accelMin, accelMax float64) float64 {
	denom := guess - prevGuess
	if denom == 0 {
		return value
	}

	slope := (value - prevValue) / denom
	if slope == 1 {
		return value
	}

	q := slope / (slope - 1)
	if q < accelMin {
		q = accelMin
	}
	if q > accelMax {
		q = accelMax
	}

	return q*guess + (1-q)*value
}
