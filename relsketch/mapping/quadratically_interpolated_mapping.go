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

// QuadraticallyInterpolatedMapping is an IndexMapping that approximates
// LogarithmicMapping by extracting the binary exponent from the bit pattern of
// the value and quadratically interpolating the logarithm in-between powers
// of 2. It trades a few more bins than the memory-optimal mapping for much
// faster ingestion.
type QuadraticallyInterpolatedMapping struct {
	relativeAccuracy float64
	multiplier       float64
}

func NewQuadraticallyInterpolatedMapping(relativeAccuracy float64) (*QuadraticallyInterpolatedMapping, error) {
	if relativeAccuracy <= 0 || relativeAccuracy >= 1 {
		return nil, errors.New("The relative accuracy must be between 0 and 1.")
	}
	return &QuadraticallyInterpolatedMapping{
		relativeAccuracy: relativeAccuracy,
		multiplier:       1 / (4 * math.Log((1+relativeAccuracy)/(1-relativeAccuracy))),
	}, nil
}

func (m *QuadraticallyInterpolatedMapping) Equals(other IndexMapping) bool {
	o, ok := other.(*QuadraticallyInterpolatedMapping)
	if !ok {
		return false
	}
	return m.relativeAccuracy == o.relativeAccuracy
}

func (m *QuadraticallyInterpolatedMapping) Index(value float64) int {
	bits := math.Float64bits(value)
	significandPlusOne := getSignificandPlusOne(bits)
	index := m.multiplier * (3*getExponent(bits) - (significandPlusOne-5)*(significandPlusOne-1))
	if index >= 0 {
		return int(index)
	} else {
		return int(index) - 1
	}
}

func (m *QuadraticallyInterpolatedMapping) Value(index int) float64 {
	normalizedIndex := float64(index) / (3 * m.multiplier)
	exponent := math.Floor(normalizedIndex)
	significandPlusOne := 3 - math.Sqrt(4-3*(normalizedIndex-exponent))
	return buildFloat64(int(exponent), significandPlusOne) * (1 + m.relativeAccuracy)
}

func (m *QuadraticallyInterpolatedMapping) MinIndexableValue() float64 {
	return math.Max(
		math.Exp2((math.MinInt32+1)/(3*m.multiplier)+1), // so that index >= MinInt32
		minNormalFloat64*(1+m.relativeAccuracy)/(1-m.relativeAccuracy),
	)
}

func (m *QuadraticallyInterpolatedMapping) MaxIndexableValue() float64 {
	return math.Min(
		math.Exp2(math.MaxInt32/(3*m.multiplier)-1), // so that index <= MaxInt32
		math.MaxFloat64/(1+m.relativeAccuracy),
	)
}

func (m *QuadraticallyInterpolatedMapping) RelativeAccuracy() float64 {
	return m.relativeAccuracy
}

func (m *QuadraticallyInterpolatedMapping) String() string {
	return fmt.Sprintf("QuadraticallyInterpolatedMapping{relativeAccuracy: %v, multiplier: %v}", m.relativeAccuracy, m.multiplier)
}
