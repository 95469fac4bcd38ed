// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package store

import (
	"math"
)

// CollapsingLowestDenseStore is a dense store whose number of bins is bounded
// by maxNumBins. When the bin budget is exceeded, the bins of lowest indices
// are folded into the bin at minIndex, which from then on acts as a sentinel:
// every count added below minIndex accumulates there.
type CollapsingLowestDenseStore struct {
	DenseStore
	maxNumBins  int
	isCollapsed bool
}

func NewCollapsingLowestDenseStore(maxNumBins int) *CollapsingLowestDenseStore {
	// Bins are not allocated until values are added. The backing slice then
	// grows as needed up to maxNumBins.
	return &CollapsingLowestDenseStore{
		DenseStore: DenseStore{minIndex: math.MaxInt32, maxIndex: math.MinInt32},
		maxNumBins: maxNumBins,
	}
}

func (s *CollapsingLowestDenseStore) Add(index int) {
	s.AddWithCount(index, 1)
}

func (s *CollapsingLowestDenseStore) AddBin(bin Bin) {
	s.AddWithCount(bin.index, bin.count)
}

func (s *CollapsingLowestDenseStore) AddWithCount(index int, count int64) {
	if count <= 0 {
		return
	}
	arrayIndex := s.normalize(index)
	s.bins[arrayIndex] += count
	s.count += count
}

func (s *CollapsingLowestDenseStore) normalize(index int) int {
	if index < s.minIndex {
		if s.isCollapsed {
			return s.minIndex - s.offset
		}
		s.extendRange(index, index)
		if s.isCollapsed && index < s.minIndex {
			return s.minIndex - s.offset
		}
	} else if index > s.maxIndex {
		s.extendRange(index, index)
	}
	return index - s.offset
}

func (s *CollapsingLowestDenseStore) getNewLength(desiredLength int) int {
	return min(s.DenseStore.getNewLength(desiredLength), s.maxNumBins)
}

func (s *CollapsingLowestDenseStore) extendRange(newMinIndex, newMaxIndex int) {
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

// adjust collapses the bins of lowest indices whenever the requested window
// does not fit within the bin budget.
func (s *CollapsingLowestDenseStore) adjust(newMinIndex, newMaxIndex int) {
	if newMaxIndex-newMinIndex+1 > len(s.bins) {
		// The range of indices is too wide, buckets of lowest indices need to
		// be collapsed.
		newMinIndex = newMaxIndex - len(s.bins) + 1
		if newMinIndex >= s.maxIndex {
			// There will be only one non-empty bucket.
			totalCount := s.count
			for i := range s.bins {
				s.bins[i] = 0
			}
			s.offset = newMinIndex
			s.minIndex = newMinIndex
			s.bins[0] = totalCount
		} else {
			shift := s.offset - newMinIndex
			if shift < 0 {
				collapsedCount := s.sumBins(s.minIndex, newMinIndex-1)
				s.resetBins(s.minIndex, newMinIndex-1)
				s.bins[newMinIndex-s.offset] += collapsedCount
				s.minIndex = newMinIndex
				// Shift the buckets to make room for newMaxIndex.
				s.shiftCounts(shift)
			} else {
				// Shift the buckets to make room for newMinIndex.
				s.shiftCounts(shift)
				s.minIndex = newMinIndex
			}
		}
		s.maxIndex = newMaxIndex
		s.isCollapsed = true
	} else {
		s.centerCounts(newMinIndex, newMaxIndex)
	}
}

func (s *CollapsingLowestDenseStore) MergeWith(other Store) {
	if other.IsEmpty() {
		return
	}
	o, ok := other.(*CollapsingLowestDenseStore)
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

func (s *CollapsingLowestDenseStore) Copy() Store {
	bins := make([]int64, len(s.bins))
	copy(bins, s.bins)
	return &CollapsingLowestDenseStore{
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
