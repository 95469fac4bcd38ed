// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package relsketch

import (
	"errors"
	"math"

	"github.com/quantilelab/sketches-go/relsketch/mapping"
	"github.com/quantilelab/sketches-go/relsketch/store"
)

var (
	// ErrUntrackableValue is returned when accepting a value that is negative,
	// not a number, or beyond the maximum indexable value.
	ErrUntrackableValue = errors.New("The input value is outside the range that is tracked by the sketch.")
	// ErrNegativeCount is returned when accepting a negative count.
	ErrNegativeCount = errors.New("The count cannot be negative.")
	// ErrInvalidQuantile is returned when querying a quantile outside [0, 1].
	ErrInvalidQuantile = errors.New("The quantile must be between 0 and 1.")
	// ErrEmptySketch is returned when querying a sketch that holds no value.
	ErrEmptySketch = errors.New("No such element exists.")
	// ErrMismatchedMappings is returned when merging sketches whose index
	// mappings differ.
	ErrMismatchedMappings = errors.New("Cannot merge sketches with different index mappings.")
)

// RelSketch is a quantile sketch with relative-error guarantees: for a sketch
// built with relative accuracy alpha, the value returned for a quantile is
// within a relative distance of alpha of an actual value at that quantile.
// It works on non-negative input values; values between 0 and minIndexedValue
// are counted together in a dedicated zero bucket. Two sketches built over
// disjoint streams can be merged without additional error, provided they use
// equal index mappings.
//
// RelSketch is not thread-safe.
type RelSketch struct {
	mapping.IndexMapping
	store           store.Store
	zeroCount       int64
	minIndexedValue float64
	maxIndexedValue float64
}

// NewRelSketch constructs an initially empty sketch using the given index
// mapping and store provider.
func NewRelSketch(indexMapping mapping.IndexMapping, storeProvider store.Provider) *RelSketch {
	return NewRelSketchWithMinIndexedValue(indexMapping, storeProvider, 0)
}

// NewRelSketchWithMinIndexedValue constructs an initially empty sketch;
// minIndexedValue is the least value that should be distinguished from zero.
// It is raised to the least value the mapping can index if needed.
func NewRelSketchWithMinIndexedValue(indexMapping mapping.IndexMapping, storeProvider store.Provider, minIndexedValue float64) *RelSketch {
	return &RelSketch{
		IndexMapping:    indexMapping,
		store:           storeProvider(),
		minIndexedValue: math.Max(minIndexedValue, indexMapping.MinIndexableValue()),
		maxIndexedValue: indexMapping.MaxIndexableValue(),
	}
}

// Accept adds a value to the sketch.
func (s *RelSketch) Accept(value float64) error {
	return s.AcceptWithCount(value, 1)
}

// AcceptWithCount adds count occurrences of a value to the sketch.
func (s *RelSketch) AcceptWithCount(value float64, count int64) error {
	// The negated form of the upper-bound check also rejects NaN.
	if value < 0 || !(value <= s.maxIndexedValue) {
		return ErrUntrackableValue
	}
	if count < 0 {
		return ErrNegativeCount
	}
	if value < s.minIndexedValue {
		s.zeroCount += count
	} else {
		s.store.AddWithCount(s.Index(value), count)
	}
	return nil
}

// MergeWith adds the content of the other sketch, which is left unchanged.
// Both sketches must use equal index mappings.
func (s *RelSketch) MergeWith(other *RelSketch) error {
	if !s.IndexMapping.Equals(other.IndexMapping) {
		return ErrMismatchedMappings
	}
	s.store.MergeWith(other.store)
	s.zeroCount += other.zeroCount
	return nil
}

// Copy returns a deep copy of the sketch. The index mapping is shared, as it
// is immutable.
func (s *RelSketch) Copy() *RelSketch {
	return &RelSketch{
		IndexMapping:    s.IndexMapping,
		store:           s.store.Copy(),
		zeroCount:       s.zeroCount,
		minIndexedValue: s.minIndexedValue,
		maxIndexedValue: s.maxIndexedValue,
	}
}

func (s *RelSketch) IsEmpty() bool {
	return s.zeroCount == 0 && s.store.IsEmpty()
}

// TotalCount returns the number of values in the sketch, including the zero
// bucket.
func (s *RelSketch) TotalCount() int64 {
	return s.zeroCount + s.store.TotalCount()
}

// MinValue returns the minimum value that has been added to the sketch, up to
// the relative accuracy. It fails on an empty sketch.
func (s *RelSketch) MinValue() (float64, error) {
	if s.zeroCount > 0 {
		return 0, nil
	}
	minIndex, err := s.store.MinIndex()
	if err != nil {
		return math.NaN(), ErrEmptySketch
	}
	return s.Value(minIndex), nil
}

// MaxValue returns the maximum value that has been added to the sketch, up to
// the relative accuracy. It fails on an empty sketch.
func (s *RelSketch) MaxValue() (float64, error) {
	if s.zeroCount > 0 && s.store.IsEmpty() {
		return 0, nil
	}
	maxIndex, err := s.store.MaxIndex()
	if err != nil {
		return math.NaN(), ErrEmptySketch
	}
	return s.Value(maxIndex), nil
}

// ValueAtQuantile returns a value at the given quantile, up to the relative
// accuracy. It fails on an empty sketch and on quantiles outside [0, 1].
func (s *RelSketch) ValueAtQuantile(quantile float64) (float64, error) {
	return s.valueAtQuantile(quantile, s.TotalCount())
}

// ValuesAtQuantiles returns values at the given quantiles, computing the total
// count only once.
func (s *RelSketch) ValuesAtQuantiles(quantiles []float64) ([]float64, error) {
	count := s.TotalCount()
	values := make([]float64, len(quantiles))
	for i, q := range quantiles {
		value, err := s.valueAtQuantile(q, count)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func (s *RelSketch) valueAtQuantile(quantile float64, count int64) (float64, error) {
	// The negated form also rejects NaN quantiles.
	if !(quantile >= 0 && quantile <= 1) {
		return math.NaN(), ErrInvalidQuantile
	}
	if count == 0 {
		return math.NaN(), ErrEmptySketch
	}

	rank := int64(quantile * float64(count-1))
	if rank < s.zeroCount {
		return 0, nil
	}

	var bin store.Bin
	if quantile <= 0.5 {
		it := s.store.AscendingIterator()
		b, ok := it.Next()
		if !ok {
			return math.NaN(), ErrEmptySketch
		}
		bin = b
		// Walk up from the zero bucket until the cumulative count exceeds the
		// rank. The rank cannot reach past the last bin; if the iterator runs
		// out anyway, the last bin is kept rather than running past the
		// window.
		for n := s.zeroCount + bin.Count(); n <= rank; n += bin.Count() {
			b, ok := it.Next()
			if !ok {
				break
			}
			bin = b
		}
	} else {
		it := s.store.DescendingIterator()
		b, ok := it.Next()
		if !ok {
			return math.NaN(), ErrEmptySketch
		}
		bin = b
		for n := count - bin.Count(); n > rank; n -= bin.Count() {
			b, ok := it.Next()
			if !ok {
				break
			}
			bin = b
		}
	}
	return s.Value(bin.Index()), nil
}
