// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package store

import (
	"errors"
	"sort"
)

// SparseStore is a map-backed store. It is suited to index sets that are too
// scattered for a contiguous slice to be affordable; adds are slower than with
// DenseStore and iteration sorts the indices.
type SparseStore struct {
	counts map[int]int64
	count  int64
}

func NewSparseStore() *SparseStore {
	return &SparseStore{counts: make(map[int]int64)}
}

func (s *SparseStore) Add(index int) {
	s.AddWithCount(index, 1)
}

func (s *SparseStore) AddBin(bin Bin) {
	s.AddWithCount(bin.index, bin.count)
}

func (s *SparseStore) AddWithCount(index int, count int64) {
	if count <= 0 {
		return
	}
	s.counts[index] += count
	s.count += count
}

func (s *SparseStore) IsEmpty() bool {
	return s.count == 0
}

func (s *SparseStore) TotalCount() int64 {
	return s.count
}

func (s *SparseStore) MinIndex() (int, error) {
	if s.count == 0 {
		return 0, errors.New("MinIndex of empty store is undefined.")
	}
	first := true
	minIndex := 0
	for index := range s.counts {
		if first || index < minIndex {
			minIndex = index
			first = false
		}
	}
	return minIndex, nil
}

func (s *SparseStore) MaxIndex() (int, error) {
	if s.count == 0 {
		return 0, errors.New("MaxIndex of empty store is undefined.")
	}
	first := true
	maxIndex := 0
	for index := range s.counts {
		if first || index > maxIndex {
			maxIndex = index
			first = false
		}
	}
	return maxIndex, nil
}

func (s *SparseStore) orderedIndexes() []int {
	indexes := make([]int, 0, len(s.counts))
	for index := range s.counts {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	return indexes
}

func (s *SparseStore) AscendingIterator() BinIterator {
	return &sparseBinIterator{store: s, indexes: s.orderedIndexes()}
}

func (s *SparseStore) DescendingIterator() BinIterator {
	indexes := s.orderedIndexes()
	for i, j := 0, len(indexes)-1; i < j; i, j = i+1, j-1 {
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	return &sparseBinIterator{store: s, indexes: indexes}
}

func (s *SparseStore) MergeWith(other Store) {
	if other.IsEmpty() {
		return
	}
	if o, ok := other.(*SparseStore); ok {
		for index, count := range o.counts {
			s.counts[index] += count
		}
		s.count += o.count
		return
	}
	it := other.AscendingIterator()
	for bin, hasNext := it.Next(); hasNext; bin, hasNext = it.Next() {
		s.AddBin(bin)
	}
}

func (s *SparseStore) Copy() Store {
	counts := make(map[int]int64, len(s.counts))
	for index, count := range s.counts {
		counts[index] = count
	}
	return &SparseStore{counts: counts, count: s.count}
}

type sparseBinIterator struct {
	store   *SparseStore
	indexes []int
	pos     int
}

func (it *sparseBinIterator) Next() (Bin, bool) {
	if it.pos >= len(it.indexes) {
		return Bin{}, false
	}
	index := it.indexes[it.pos]
	it.pos++
	return Bin{index: index, count: it.store.counts[index]}, true
}
