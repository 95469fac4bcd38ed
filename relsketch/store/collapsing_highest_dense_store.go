// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package store

import (
	"math"
)

// CollapsingHighestDenseStore is a dense store whose number of bins is bounded
// by maxNumBins. When the bin budget is exceeded, the bins of highest indices
// are folded into the bin at maxIndex, which from then on acts as a sentinel:
// every count added above maxIndex accumulates there.
type CollapsingHighestDenseStore struct {
	DenseStore
	maxNumBins  int
	isCollapsed bool
}

func NewCollapsingHighestDenseStore(maxNumBins int) *CollapsingHighestDenseStore {
	return &CollapsingHighestDenseStore{
		DenseStore: DenseStore{minIndex: math.MaxInt32, maxIndex: math.MinInt32},
		maxNumBins: maxNumBins,
	}
}

func (s *CollapsingHighestDenseStore) Add(index int) {
	s.AddWithCount(index, 1)
}

func (s *CollapsingHighestDenseStore) AddBin(bin Bin) {
	s.AddWithCount(bin.index, bin.count)
}

func (s *CollapsingHighestDenseStore) AddWithCount(index int, count int64) {
	if count <= 0 {
		return
	}
	arrayIndex := s.normalize(index)
	s.bins[arrayIndex] += count
	s.count += count
}

func (s *CollapsingHighestDenseStore) normalize(index int) int {
	if index > s.maxIndex {
		if s.isCollapsed {
			return s.maxIndex - s.offset
		}
		s.extendRange(index, index)
		if s.isCollapsed && index > s.maxIndex {
			return s.maxIndex - s.offset
		}
	} else if index < s.minIndex {
		s.extendRange(index, index)
	}
	return index - s.offset
}

func (s *CollapsingHighestDenseStore) getNewLength(desiredLength int) int {
	return min(s.DenseStore.getNewLength(desiredLength), s.maxNumBins)
}

func (s *CollapsingHighestDenseStore) extendRange(newMinIndex, newMaxIndex int) {
	newMinIndex = min(newMinIndex, s.minIndex)
	newMaxIndex = max(newMaxIndex, s.maxIndex)
	if s.IsEmpty() {
		initialLength := s.getNewLength(newMaxIndex - newMinIndex + 1)
		s.bins = make([]int64, initialLength)
		s.offset = newMinIndex
		s.minIndex = newMinIndex
		s.maxIndex = newMaxIndex
		s.adjust(newMinIndex, newMaxIndex)
	} else if newMinIndex >= s.offset && newMaxIndex < s.offset+len(s.bins) {
		s.minIndex = newMinIndex
		s.maxIndex = newMaxIndex
	} else {
		// Grow ahead of the strictly required length, within the bin budget,
		// so that shifting does not happen on every add.
		desiredLength := newMaxIndex - newMinIndex + 1
		if newLength := s.getNewLength(desiredLength); newLength > len(s.bins) {
			tmpBins := make([]int64, newLength)
			copy(tmpBins, s.bins)
			s.bins = tmpBins
		}
		s.adjust(newMinIndex, newMaxIndex)
	}
}

// adjust collapses the bins of highest indices whenever the requested window
// does not fit within the bin budget.
func (s *CollapsingHighestDenseStore) adjust(newMinIndex, newMaxIndex int) {
	if newMaxIndex-newMinIndex+1 > len(s.bins) {
		// The range of indices is too wide, buckets of highest indices need
		// to be collapsed.
		newMaxIndex = newMinIndex + len(s.bins) - 1
		if newMaxIndex <= s.minIndex {
			// There will be only one non-empty bucket.
			totalCount := s.count
			for i := range s.bins {
				s.bins[i] = 0
			}
			s.offset = newMinIndex
			s.maxIndex = newMaxIndex
			s.bins[len(s.bins)-1] = totalCount
		} else {
			shift := s.offset - newMinIndex
			if shift > 0 {
				collapsedCount := s.sumBins(newMaxIndex+1, s.maxIndex)
				s.resetBins(newMaxIndex+1, s.maxIndex)
				s.bins[newMaxIndex-s.offset] += collapsedCount
				s.maxIndex = newMaxIndex
				// Shift the buckets to make room for newMinIndex.
				s.shiftCounts(shift)
			} else {
				// Shift the buckets to make room for newMaxIndex.
				s.shiftCounts(shift)
				s.maxIndex = newMaxIndex
			}
		}
		s.minIndex = newMinIndex
		s.isCollapsed = true
	} else {
		s.centerCounts(newMinIndex, newMaxIndex)
	}
}

func (s *CollapsingHighestDenseStore) MergeWith(other Store) {
	if other.IsEmpty() {
		return
	}
	o, ok := other.(*CollapsingHighestDenseStore)
	if !ok || s.IsEmpty() {
		// Bin by bin keeps the collapse deterministic, also when this store is
		// still empty and the other one is wider than the bin budget.
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
		count := o.bins[index-o.offset]
		if count == 0 {
			continue
		}
		arrayIndex := s.normalize(index)
		s.bins[arrayIndex] += count
	}
	s.count += o.count
}

func (s *CollapsingHighestDenseStore) Copy() Store {
	bins := make([]int64, len(s.bins))
	copy(bins, s.bins)
	return &CollapsingHighestDenseStore{
		DenseStore: DenseStore{
			bins:     bins,
			count:    s.count,
			offset:   s.offset,
			minIndex: s.minIndex,
			maxIndex: s.maxIndex,
		},
		maxNumBins:  s.maxNumBins,
		isCollapsed: s.isCollapsed,
	}
}
