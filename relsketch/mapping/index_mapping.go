// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package mapping

const (
	expOverflow      = 7.094361393031e+02      // ln(2^1023.5), safely below ln(MaxFloat64) ~ 709.78 where math.Exp overflows
	minNormalFloat64 = 2.2250738585072014e-308 // 2^(-1022)
)

// IndexMapping is a bijection between positive floating-point values and
// integer bucket indices. For every value within the indexable range,
// Value(Index(v)) is within a relative distance of RelativeAccuracy() of v,
// and Index is non-decreasing.
type IndexMapping interface {
	Equals(other IndexMapping) bool
	Index(value float64) int
	Value(index int) float64
	RelativeAccuracy() float64
	MinIndexableValue() float64
	MaxIndexableValue() float64
}
