// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package mapping

import (
	"errors"
	"fmt"
	"math"
)

// LinearlyInterpolatedMapping is a fast IndexMapping that approximates
// LogarithmicMapping by extracting the binary exponent from the bit pattern of
// the value and linearly interpolating the logarithm in-between powers of 2.
type LinearlyInterpolatedMapping struct {
	relativeAccuracy float64
	multiplier       float64
}

func NewLinearlyInterpolatedMapping(relativeAccuracy float64) (*LinearlyInterpolatedMapping, error) {
	if relativeAccuracy <= 0 || relativeAccuracy >= 1 {
		return nil, errors.New("The relative accuracy must be between 0 and 1.")
	}
	return &LinearlyInterpolatedMapping{
		relativeAccuracy: relativeAccuracy,
		multiplier:       1 / math.Log((1+relativeAccuracy)/(1-relativeAccuracy)),
	}, nil
}

func (m *LinearlyInterpolatedMapping) Equals(other IndexMapping) bool {
	o, ok := other.(*LinearlyInterpolatedMapping)
	if !ok {
		return false
	}
	return m.relativeAccuracy == o.relativeAccuracy
}

func (m *LinearlyInterpolatedMapping) Index(value float64) int {
	index := m.approximateLog(value) * m.multiplier
	if index >= 0 {
		return int(index)
	} else {
		return int(index) - 1
	}
}

func (m *LinearlyInterpolatedMapping) Value(index int) float64 {
	return m.approximateInverseLog(float64(index)/m.multiplier) * (1 + m.relativeAccuracy)
}

// approximateLog returns e + s, where value = 2^e * s and s is in [1, 2); it
// exceeds log2 by s - log2(s), a value in about [0.91, 1], which the bucket
// bounds account for.
func (m *LinearlyInterpolatedMapping) approximateLog(value float64) float64 {
	bits := math.Float64bits(value)
	return getExponent(bits) + getSignificandPlusOne(bits)
}

func (m *LinearlyInterpolatedMapping) approximateInverseLog(x float64) float64 {
	exponent := math.Floor(x - 1)
	significandPlusOne := x - exponent
	return buildFloat64(int(exponent), significandPlusOne)
}

func (m *LinearlyInterpolatedMapping) MinIndexableValue() float64 {
	return math.Max(
		math.Exp2((math.MinInt32+1)/m.multiplier), // so that index >= MinInt32
		minNormalFloat64*(1+m.relativeAccuracy)/(1-m.relativeAccuracy),
	)
}

func (m *LinearlyInterpolatedMapping) MaxIndexableValue() float64 {
	return math.Min(
		math.Exp2(math.MaxInt32/m.multiplier-1), // so that index <= MaxInt32
		math.MaxFloat64/(1+m.relativeAccuracy),
	)
}

func (m *LinearlyInterpolatedMapping) RelativeAccuracy() float64 {
	return m.relativeAccuracy
}

func (m *LinearlyInterpolatedMapping) String() string {
	return fmt.Sprintf("LinearlyInterpolatedMapping{relativeAccuracy: %v, multiplier: %v}", m.relativeAccuracy, m.multiplier)
}
