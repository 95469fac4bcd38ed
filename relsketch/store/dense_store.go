// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package store

import (
	"errors"
	"math"
)

const (
	// The backing slice grows in chunks of this many bins to amortize
	// reallocations and shifts.
	arrayLengthGrowthIncrement = 64
)

// DenseStore is a dynamically growing contiguous (non-sparse) store. The
// backing slice holds the count of index i at slot i-offset; the logical
// window [minIndex, maxIndex] slides and re-centers within the slice as
// indices outside of it are added. The number of bins is bound only by the
// size of the slice that can be allocated.
type DenseStore struct {
	bins     []int64
	count    int64
	offset   int
	minIndex int
	maxIndex int
}

func NewDenseStore() *DenseStore {
	return &DenseStore{minIndex: math.MaxInt32, maxIndex: math.MinInt32}
}

func (s *DenseStore) Add(index int) {
	s.AddWithCount(index, 1)
}

func (s *DenseStore) AddBin(bin Bin) {
	s.AddWithCount(bin.index, bin.count)
}

func (s *DenseStore) AddWithCount(index int, count int64) {
	if count <= 0 {
		return
	}
	arrayIndex := s.normalize(index)
	s.bins[arrayIndex] += count
	s.count += count
}

// normalize returns the position of index in the backing slice, extending the
// logical window first if needed.
func (s *DenseStore) normalize(index int) int {
	if index < s.minIndex || index > s.maxIndex {
		s.extendRange(index, index)
	}
	return index - s.offset
}

func (s *DenseStore) extendRange(newMinIndex, newMaxIndex int) {
	newMinIndex = min(newMinIndex, s.minIndex)
	newMaxIndex = max(newMaxIndex, s.maxIndex)
	if s.IsEmpty() {
		initialLength := s.getNewLength(newMaxIndex - newMinIndex + 1)
		s.bins = make([]int64, initialLength)
		s.offset = newMinIndex
		s.minIndex = newMinIndex
		s.maxIndex = newMaxIndex
		s.centerCounts(newMinIndex, newMaxIndex)
	} else if newMinIndex >= s.offset && newMaxIndex < s.offset+len(s.bins) {
		s.minIndex = newMinIndex
		s.maxIndex = newMaxIndex
	} else {
		// Grow ahead of the strictly required length so that shifting does
		// not happen on every add.
		desiredLength := newMaxIndex - newMinIndex + 1
		if newLength := s.getNewLength(desiredLength); newLength > len(s.bins) {
			tmpBins := make([]int64, newLength)
			copy(tmpBins, s.bins)
			s.bins = tmpBins
		}
		s.centerCounts(newMinIndex, newMaxIndex)
	}
}

func (s *DenseStore) getNewLength(desiredLength int) int {
	return ((desiredLength-1)/arrayLengthGrowthIncrement + 1) * arrayLengthGrowthIncrement
}

// centerCounts slides the current window so that the new one sits in the
// middle of the backing slice.
func (s *DenseStore) centerCounts(newMinIndex, newMaxIndex int) {
	middleIndex := newMinIndex + (newMaxIndex-newMinIndex+1)/2
	s.shiftCounts(s.offset + len(s.bins)/2 - middleIndex)
	s.minIndex = newMinIndex
	s.maxIndex = newMaxIndex
}

// shiftCounts translates the counts of the current window within the backing
// slice, zeroing the vacated slots.
func (s *DenseStore) shiftCounts(shift int) {
	minArrayIndex := s.minIndex - s.offset
	maxArrayIndex := s.maxIndex - s.offset
	copy(s.bins[minArrayIndex+shift:], s.bins[minArrayIndex:maxArrayIndex+1])
	if shift > 0 {
		for i := minArrayIndex; i < minArrayIndex+shift; i++ {
			s.bins[i] = 0
		}
	} else {
		for i := maxArrayIndex + 1 + shift; i <= maxArrayIndex; i++ {
			s.bins[i] = 0
		}
	}
	s.offset -= shift
}

// resetBins zeroes the slots of the given index range.
func (s *DenseStore) resetBins(fromIndex, toIndex int) {
	for i := fromIndex; i <= toIndex; i++ {
		s.bins[i-s.offset] = 0
	}
}

func (s *DenseStore) sumBins(fromIndex, toIndex int) int64 {
	var n int64
	for i := fromIndex; i <= toIndex; i++ {
		n += s.bins[i-s.offset]
	}
	return n
}

func (s *DenseStore) IsEmpty() bool {
	return s.count == 0
}

func (s *DenseStore) TotalCount() int64 {
	return s.count
}

func (s *DenseStore) MinIndex() (int, error) {
	if s.count == 0 {
		return 0, errors.New("MinIndex of empty store is undefined.")
	}
	return s.minIndex, nil
}

func (s *DenseStore) MaxIndex() (int, error) {
	if s.count == 0 {
		return 0, errors.New("MaxIndex of empty store is undefined.")
	}
	return s.maxIndex, nil
}

func (s *DenseStore) AscendingIterator() BinIterator {
	if s.count == 0 {
		return &denseBinIterator{cur: 1, end: 0, step: 1}
	}
	return &denseBinIterator{bins: s.bins, offset: s.offset, cur: s.minIndex, end: s.maxIndex, step: 1}
}

func (s *DenseStore) DescendingIterator() BinIterator {
	if s.count == 0 {
		return &denseBinIterator{cur: 0, end: 1, step: -1}
	}
	return &denseBinIterator{bins: s.bins, offset: s.offset, cur: s.maxIndex, end: s.minIndex, step: -1}
}

func (s *DenseStore) MergeWith(other Store) {
	if other.IsEmpty() {
		return
	}
	o, ok := other.(*DenseStore)
	if !ok {
		it := other.AscendingIterator()
		for bin, hasNext := it.Next(); hasNext; bin, hasNext = it.Next() {
			s.AddBin(bin)
		}
		return
	}
	if o.minIndex < s.minIndex || o.maxIndex > s.maxIndex {
		s.extendRange(o.minIndex, o.maxIndex)
	}
	for index := o.minIndex; index <= o.maxIndex; index++ {
		s.bins[index-s.offset] += o.bins[index-o.offset]
	}
	s.count += o.count
}

func (s *DenseStore) Copy() Store {
	bins := make([]int64, len(s.bins))
	copy(bins, s.bins)
	return &DenseStore{
		bins:     bins,
		count:    s.count,
		offset:   s.offset,
		minIndex: s.minIndex,
		maxIndex: s.maxIndex,
	}
}
