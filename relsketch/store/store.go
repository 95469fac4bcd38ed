// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package store

// Store maps integer bucket indices to non-negative counts. Stores are
// single-writer: no method may be called while another one is running, and
// iterators must not outlive a mutating call.
type Store interface {
	Add(index int)
	AddBin(bin Bin)
	// AddWithCount adds count occurrences of index. Counts that are not
	// positive are ignored; validation happens before reaching the store.
	AddWithCount(index int, count int64)
	// AscendingIterator returns a cursor over the non-empty bins, by
	// increasing index. It reflects the state of the store at creation.
	AscendingIterator() BinIterator
	// DescendingIterator returns a cursor over the non-empty bins, by
	// decreasing index.
	DescendingIterator() BinIterator
	Copy() Store
	IsEmpty() bool
	// MaxIndex returns the highest non-empty bin index. It fails if the store
	// is empty.
	MaxIndex() (int, error)
	// MinIndex returns the lowest non-empty bin index. It fails if the store
	// is empty.
	MinIndex() (int, error)
	TotalCount() int64
	MergeWith(store Store)
}

// Provider constructs empty stores. It is used by sketches to create stores of
// the wanted kind without knowing about their parameters.
type Provider func() Store

var (
	DenseStoreConstructor Provider = func() Store { return NewDenseStore() }

	SparseStoreConstructor Provider = func() Store { return NewSparseStore() }
)

func CollapsingLowestDenseStoreConstructor(maxNumBins int) Provider {
	return func() Store { return NewCollapsingLowestDenseStore(maxNumBins) }
}

func CollapsingHighestDenseStoreConstructor(maxNumBins int) Provider {
	return func() Store { return NewCollapsingHighestDenseStore(maxNumBins) }
}
