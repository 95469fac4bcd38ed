// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package mapping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testMaxRelativeAccuracy      = 1 - 1e-3
	testMinRelativeAccuracy      = 1e-7
	floatingPointAcceptableError = 1e-12
)

// Steps between tested values, covering the whole indexable range in a few
// hundred iterations.
var testValueMultiplier = 1 + math.Sqrt(2)*1e2

func testMappings(t *testing.T, relativeAccuracy float64) []IndexMapping {
	logarithmic, err := NewLogarithmicMapping(relativeAccuracy)
	assert.NoError(t, err)
	linear, err := NewLinearlyInterpolatedMapping(relativeAccuracy)
	assert.NoError(t, err)
	quadratic, err := NewQuadraticallyInterpolatedMapping(relativeAccuracy)
	assert.NoError(t, err)
	return []IndexMapping{logarithmic, linear, quadratic}
}

func EvaluateRelativeAccuracy(t *testing.T, expected, actual, relativeAccuracy float64) {
	assert.True(t, expected >= 0)
	assert.True(t, actual >= 0)
	if expected == 0 {
		assert.InDelta(t, actual, 0, floatingPointAcceptableError)
	} else {
		assert.True(t, math.Abs(expected-actual)/expected <= relativeAccuracy+floatingPointAcceptableError)
	}
}

func EvaluateMappingAccuracy(t *testing.T, m IndexMapping, relativeAccuracy float64) {
	for value := m.MinIndexableValue(); value < m.MaxIndexableValue(); value *= testValueMultiplier {
		mappedValue := m.Value(m.Index(value))
		EvaluateRelativeAccuracy(t, value, mappedValue, relativeAccuracy)
	}
	value := m.MaxIndexableValue()
	mappedValue := m.Value(m.Index(value))
	EvaluateRelativeAccuracy(t, value, mappedValue, relativeAccuracy)
}

func TestMappingAccuracy(t *testing.T) {
	for relativeAccuracy := testMaxRelativeAccuracy; relativeAccuracy >= testMinRelativeAccuracy; relativeAccuracy *= testMaxRelativeAccuracy * testMaxRelativeAccuracy {
		for _, m := range testMappings(t, relativeAccuracy) {
			EvaluateMappingAccuracy(t, m, relativeAccuracy)
		}
	}
}

func TestMappingMonotonicity(t *testing.T) {
	for _, relativeAccuracy := range []float64{1e-1, 1e-2, 1e-3} {
		for _, m := range testMappings(t, relativeAccuracy) {
			// Fine-grained sweep, sampling every bucket a few times.
			fineFrom := math.Max(m.MinIndexableValue(), 1e-6)
			fineTo := math.Min(m.MaxIndexableValue(), 1e6)
			previousIndex := m.Index(fineFrom)
			for value := fineFrom; value < fineTo; value *= 1 + relativeAccuracy/2 {
				index := m.Index(value)
				assert.GreaterOrEqual(t, index, previousIndex)
				previousIndex = index
			}
			// Coarse sweep over the whole indexable range.
			previousIndex = m.Index(m.MinIndexableValue())
			for value := m.MinIndexableValue(); value < m.MaxIndexableValue(); value *= testValueMultiplier {
				index := m.Index(value)
				assert.GreaterOrEqual(t, index, previousIndex)
				previousIndex = index
			}
		}
	}
}

func TestMappingIndexableBounds(t *testing.T) {
	for _, relativeAccuracy := range []float64{1e-1, 1e-2, 1e-3} {
		for _, m := range testMappings(t, relativeAccuracy) {
			assert.GreaterOrEqual(t, m.Index(m.MinIndexableValue()), math.MinInt32)
			assert.LessOrEqual(t, m.Index(m.MaxIndexableValue()), math.MaxInt32)
			assert.Less(t, m.MinIndexableValue(), m.MaxIndexableValue())
		}
	}
}

func TestMappingEquality(t *testing.T) {
	for _, relativeAccuracy := range []float64{1e-1, 1e-2} {
		same := testMappings(t, relativeAccuracy)
		other := testMappings(t, relativeAccuracy/2)
		for i, m := range testMappings(t, relativeAccuracy) {
			for j := range same {
				assert.Equal(t, i == j, m.Equals(same[j]))
			}
			// A different accuracy never compares equal, whatever the variant.
			for j := range other {
				assert.False(t, m.Equals(other[j]))
			}
		}
	}
}

func TestMappingValidation(t *testing.T) {
	for _, relativeAccuracy := range []float64{-1e-2, 0, 1, 1.5} {
		_, err := NewLogarithmicMapping(relativeAccuracy)
		assert.Error(t, err)
		_, err = NewLinearlyInterpolatedMapping(relativeAccuracy)
		assert.Error(t, err)
		_, err = NewQuadraticallyInterpolatedMapping(relativeAccuracy)
		assert.Error(t, err)
	}
}
