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

// LogarithmicMapping is the memory-optimal IndexMapping: it buckets values by
// the floor of their logarithm to the base gamma, where
// gamma = (1+relativeAccuracy)/(1-relativeAccuracy).
type LogarithmicMapping struct {
	relativeAccuracy float64
	multiplier       float64
}

func NewLogarithmicMapping(relativeAccuracy float64) (*LogarithmicMapping, error) {
	if relativeAccuracy <= 0 || relativeAccuracy >= 1 {
		return nil, errors.New("The relative accuracy must be between 0 and 1.")
	}
	return &LogarithmicMapping{
		relativeAccuracy: relativeAccuracy,
		multiplier:       1 / math.Log((1+relativeAccuracy)/(1-relativeAccuracy)),
	}, nil
}

func (m *LogarithmicMapping) Equals(other IndexMapping) bool {
	o, ok := other.(*LogarithmicMapping)
	if !ok {
		return false
	}
	return m.relativeAccuracy == o.relativeAccuracy
}

func (m *LogarithmicMapping) Index(value float64) int {
	index := math.Log(value) * m.multiplier
	if index >= 0 {
		return int(index)
	} else {
		return int(index) - 1 // faster than math.Floor
	}
}

// Value returns a representative of the bucket, shifted by (1+relativeAccuracy)
// so that it sits at the midpoint of the multiplicative bucket.
func (m *LogarithmicMapping) Value(index int) float64 {
	return math.Exp(float64(index)/m.multiplier) * (1 + m.relativeAccuracy)
}

func (m *LogarithmicMapping) MinIndexableValue() float64 {
	return math.Max(
		math.Exp((math.MinInt32+1)/m.multiplier), // so that index >= MinInt32
		minNormalFloat64*(1+m.relativeAccuracy)/(1-m.relativeAccuracy),
	)
}

func (m *LogarithmicMapping) MaxIndexableValue() float64 {
	return math.Min(
		math.Exp(math.MaxInt32/m.multiplier-1),       // so that index <= MaxInt32
		math.Exp(expOverflow)/(1+m.relativeAccuracy), // so that math.Exp does not overflow
	)
}

func (m *LogarithmicMapping) RelativeAccuracy() float64 {
	return m.relativeAccuracy
}

func (m *LogarithmicMapping) String() string {
	return fmt.Sprintf("LogarithmicMapping{relativeAccuracy: %v, multiplier: %v}", m.relativeAccuracy, m.multiplier)
}
