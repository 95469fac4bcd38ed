// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package relsketch

import (
	"github.com/quantilelab/sketches-go/relsketch/mapping"
	"github.com/quantilelab/sketches-go/relsketch/store"
)

// Balanced constructs a sketch with high ingestion speed and a low memory
// footprint, backed by a quadratically interpolated mapping and an unbounded
// dense store.
func Balanced(relativeAccuracy float64) (*RelSketch, error) {
	indexMapping, err := mapping.NewQuadraticallyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.DenseStoreConstructor), nil
}

// BalancedCollapsingLowest is Balanced with a bounded number of bins: when
// maxNumBins is reached, the bins of lowest indices are collapsed, which
// causes the relative accuracy to be lost on the lowest quantiles.
func BalancedCollapsingLowest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewQuadraticallyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingLowestDenseStoreConstructor(maxNumBins)), nil
}

// BalancedCollapsingHighest is Balanced with a bounded number of bins: when
// maxNumBins is reached, the bins of highest indices are collapsed, which
// causes the relative accuracy to be lost on the highest quantiles.
func BalancedCollapsingHighest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewQuadraticallyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingHighestDenseStoreConstructor(maxNumBins)), nil
}

// Fast constructs a sketch with optimized ingestion speed, at the cost of
// higher memory usage, backed by a linearly interpolated mapping and an
// unbounded dense store.
func Fast(relativeAccuracy float64) (*RelSketch, error) {
	indexMapping, err := mapping.NewLinearlyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.DenseStoreConstructor), nil
}

// FastCollapsingLowest is Fast with a bounded number of bins, collapsing the
// bins of lowest indices.
func FastCollapsingLowest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewLinearlyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingLowestDenseStoreConstructor(maxNumBins)), nil
}

// FastCollapsingHighest is Fast with a bounded number of bins, collapsing the
// bins of highest indices.
func FastCollapsingHighest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewLinearlyInterpolatedMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingHighestDenseStoreConstructor(maxNumBins)), nil
}

// MemoryOptimal constructs a sketch with optimized memory usage, at the cost
// of lower ingestion speed, backed by a logarithmic mapping and an unbounded
// dense store.
func MemoryOptimal(relativeAccuracy float64) (*RelSketch, error) {
	indexMapping, err := mapping.NewLogarithmicMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.DenseStoreConstructor), nil
}

// MemoryOptimalCollapsingLowest is MemoryOptimal with a bounded number of
// bins, collapsing the bins of lowest indices.
func MemoryOptimalCollapsingLowest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewLogarithmicMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingLowestDenseStoreConstructor(maxNumBins)), nil
}

// MemoryOptimalCollapsingHighest is MemoryOptimal with a bounded number of
// bins, collapsing the bins of highest indices.
func MemoryOptimalCollapsingHighest(relativeAccuracy float64, maxNumBins int) (*RelSketch, error) {
	indexMapping, err := mapping.NewLogarithmicMapping(relativeAccuracy)
	if err != nil {
		return nil, err
	}
	return NewRelSketch(indexMapping, store.CollapsingHighestDenseStoreConstructor(maxNumBins)), nil
}
