// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package mapping

import (
	"math"
)

const (
	exponentBias    = 1023
	exponentMask    = uint64(0x7FF0000000000000)
	exponentShift   = 52
	significandMask = uint64(0x000FFFFFFFFFFFFF)
	oneMask         = uint64(0x3FF0000000000000)
)

// getExponent returns the unbiased binary exponent of the float64 whose bit
// pattern is bits.
func getExponent(bits uint64) float64 {
	return float64(int((bits&exponentMask)>>exponentShift) - exponentBias)
}

// getSignificandPlusOne returns the significand of the float64 whose bit
// pattern is bits, with the implicit leading bit included, i.e. a value in
// [1, 2) for normal inputs.
func getSignificandPlusOne(bits uint64) float64 {
	return math.Float64frombits((bits & significandMask) | oneMask)
}

// buildFloat64 is the inverse of getExponent and getSignificandPlusOne. The
// biased exponent is clamped to the range of normal float64 values, so that
// the result is neither subnormal nor infinite; exponents outside that range
// do not round-trip.
func buildFloat64(exponent int, significandPlusOne float64) float64 {
	biasedExponent := exponent + exponentBias
	if biasedExponent < 1 {
		biasedExponent = 1
	} else if biasedExponent > 2*exponentBias {
		biasedExponent = 2 * exponentBias
	}
	return math.Float64frombits(
		(uint64(biasedExponent)<<exponentShift)&exponentMask |
			(math.Float64bits(significandPlusOne) & significandMask),
	)
}
