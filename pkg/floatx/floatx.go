// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package floatx examines IEEE 754 binary64 and binary32 behavior:
// machine epsilon, unit-in-the-last-place measurements, and bit-level
// anatomy. These are the reference computations behind the
// floating-point articles in the corpus.
package floatx

import "math"

// MachineEpsilon computes the binary64 machine epsilon by repeated
// halving: the last power of two whose sum with 1.0 still differs
// from 1.0. The result equals 2^-52.
func MachineEpsilon() float64 {
	eps := 1.0
	for 1.0+eps/2 != 1.0 {
		eps /= 2
	}
	return eps
}

// MachineEpsilon32 is MachineEpsilon for binary32; the result equals
// 2^-23.
func MachineEpsilon32() float32 {
	eps := float32(1)
	for float32(1)+eps/2 != 1 {
		eps /= 2
	}
	return eps
}

// EpsilonStep records one iteration of the halving loop.
type EpsilonStep struct {
	// Iteration counts halvings performed so far.
	Iteration int

	// Candidate is the epsilon candidate after Iteration halvings.
	Candidate float64

	// OnePlus is 1 + Candidate as actually computed.
	OnePlus float64
}

// EpsilonSteps returns the full halving sequence ending at the machine
// epsilon, for demonstration tables.
func EpsilonSteps() []EpsilonStep {
	var steps []EpsilonStep
	eps := 1.0
	i := 0
	for {
		steps = append(steps, EpsilonStep{Iteration: i, Candidate: eps, OnePlus: 1.0 + eps})
		if 1.0+eps/2 == 1.0 {
			return steps
		}
		eps /= 2
		i++
	}
}

// ULP returns the gap between |x| and the next representable float64
// above it. Infinite or NaN input returns NaN.
func ULP(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	ax := math.Abs(x)
	return math.Nextafter(ax, math.Inf(1)) - ax
}

// NextUp returns the smallest float64 greater than x.
func NextUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

// NextDown returns the largest float64 smaller than x.
func NextDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// Parts is the bit-level decomposition of a float64.
type Parts struct {
	// Sign is 0 for positive, 1 for negative.
	Sign int

	// RawExponent is the biased 11-bit exponent field.
	RawExponent int

	// Exponent is the unbiased exponent (RawExponent - 1023).
	Exponent int

	// Fraction is the 52-bit fraction field.
	Fraction uint64

	// Subnormal reports a zero exponent field with a nonzero fraction.
	Subnormal bool
}

// Decompose splits a float64 into its IEEE 754 fields.
func Decompose(x float64) Parts {
	bits := math.Float64bits(x)
	raw := int(bits >> 52 & 0x7ff)
	frac := bits & (1<<52 - 1)
	return Parts{
		Sign:        int(bits >> 63),
		RawExponent: raw,
		Exponent:    raw - 1023,
		Fraction:    frac,
		Subnormal:   raw == 0 && frac != 0,
	}
}

// ULPDistance returns the number of representable float64 values
// between a and b. Any NaN argument returns MaxUint64.
func ULPDistance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	ai, bi := orderedBits(a), orderedBits(b)
	if ai > bi {
		ai, bi = bi, ai
	}
	return uint64(bi) - uint64(ai)
}

// AlmostEqual reports whether a and b are within maxULPs representable
// values of each other. Values of opposite sign are only equal when
// they compare equal exactly (covering +0 and -0).
func AlmostEqual(a, b float64, maxULPs uint64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	return ULPDistance(a, b) <= maxULPs
}

// RelativeError returns |approx-exact| / |exact|, falling back to the
// absolute error when exact is zero.
func RelativeError(approx, exact float64) float64 {
	if exact == 0 {
		return math.Abs(approx)
	}
	return math.Abs(approx-exact) / math.Abs(exact)
}

// orderedBits maps a float64 onto an int64 whose ordering matches the
// numeric ordering, negative values below positive ones.
func orderedBits(x float64) int64 {
	b := int64(math.Float64bits(x))
	if b < 0 {
		b = math.MinInt64 - b
	}
	return b
}
