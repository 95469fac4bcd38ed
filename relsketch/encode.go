// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package relsketch

import (
	"errors"
	"io"

	"github.com/quantilelab/sketches-go/relsketch/encoding"
	"github.com/quantilelab/sketches-go/relsketch/mapping"
	"github.com/quantilelab/sketches-go/relsketch/store"
)

const (
	logarithmicMappingFlag               byte = 0x01
	linearlyInterpolatedMappingFlag      byte = 0x02
	quadraticallyInterpolatedMappingFlag byte = 0x03
)

var errUnknownMappingFlag = errors.New("unknown index mapping flag")

// Encode appends a byte representation of the sketch to the provided slice:
// the mapping variant and its relative accuracy, the zero-bucket count, and
// the non-empty bins with delta-encoded indexes.
func (s *RelSketch) Encode(b *[]byte) error {
	var flag byte
	switch s.IndexMapping.(type) {
	case *mapping.LogarithmicMapping:
		flag = logarithmicMappingFlag
	case *mapping.LinearlyInterpolatedMapping:
		flag = linearlyInterpolatedMappingFlag
	case *mapping.QuadraticallyInterpolatedMapping:
		flag = quadraticallyInterpolatedMappingFlag
	default:
		return errUnknownMappingFlag
	}
	*b = append(*b, flag)
	encoding.EncodeFloat64LE(b, s.RelativeAccuracy())
	encoding.EncodeUvarint64(b, uint64(s.zeroCount))

	var bins []store.Bin
	it := s.store.AscendingIterator()
	for bin, hasNext := it.Next(); hasNext; bin, hasNext = it.Next() {
		bins = append(bins, bin)
	}
	encoding.EncodeUvarint64(b, uint64(len(bins)))
	previousIndex := 0
	for _, bin := range bins {
		encoding.EncodeVarint64(b, int64(bin.Index()-previousIndex))
		encoding.EncodeUvarint64(b, uint64(bin.Count()))
		previousIndex = bin.Index()
	}
	return nil
}

// DecodeSketch rebuilds a sketch that has been serialized with Encode,
// advancing the input. The provided store provider supplies the store that
// the decoded bins are added to.
func DecodeSketch(b *[]byte, storeProvider store.Provider) (*RelSketch, error) {
	if len(*b) == 0 {
		return nil, io.EOF
	}
	flag := (*b)[0]
	*b = (*b)[1:]
	relativeAccuracy, err := encoding.DecodeFloat64LE(b)
	if err != nil {
		return nil, err
	}

	var indexMapping mapping.IndexMapping
	switch flag {
	case logarithmicMappingFlag:
		indexMapping, err = mapping.NewLogarithmicMapping(relativeAccuracy)
	case linearlyInterpolatedMappingFlag:
		indexMapping, err = mapping.NewLinearlyInterpolatedMapping(relativeAccuracy)
	case quadraticallyInterpolatedMappingFlag:
		indexMapping, err = mapping.NewQuadraticallyInterpolatedMapping(relativeAccuracy)
	default:
		return nil, errUnknownMappingFlag
	}
	if err != nil {
		return nil, err
	}

	sketch := NewRelSketch(indexMapping, storeProvider)
	zeroCount, err := encoding.DecodeUvarint64(b)
	if err != nil {
		return nil, err
	}
	sketch.zeroCount = int64(zeroCount)

	numBins, err := encoding.DecodeUvarint64(b)
	if err != nil {
		return nil, err
	}
	index := 0
	for i := uint64(0); i < numBins; i++ {
		indexDelta, err := encoding.DecodeVarint64(b)
		if err != nil {
			return nil, err
		}
		count, err := encoding.DecodeUvarint64(b)
		if err != nil {
			return nil, err
		}
		index += int(indexDelta)
		sketch.store.AddWithCount(index, int64(count))
	}
	return sketch, nil
}
