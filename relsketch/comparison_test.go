// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package relsketch_test

import (
	"testing"

	"github.com/beorn7/perks/quantile"
	"github.com/stretchr/testify/assert"

	"github.com/quantilelab/sketches-go/dataset"
	"github.com/quantilelab/sketches-go/relsketch"
)

// Feeds the same stream to the sketch, to an exact reference and to a
// rank-error targeted stream, checks the relative-accuracy guarantee against
// the reference and logs how the two summaries compare.
func TestCompareWithTargetedStream(t *testing.T) {
	const numValues = 50000
	relativeAccuracy := 0.01
	targets := map[float64]float64{0.5: 0.005, 0.9: 0.001, 0.99: 0.0001}

	sketch, err := relsketch.MemoryOptimal(relativeAccuracy)
	assert.NoError(t, err)
	targeted := quantile.NewTargeted(targets)
	d := dataset.NewDataset()

	generator := dataset.NewLognormal(0, 0.5)
	for i := 0; i < numValues; i++ {
		value := generator.Generate()
		assert.NoError(t, sketch.Accept(value))
		targeted.Insert(value)
		d.Add(value)
	}

	for q := range targets {
		lower, upper := d.LowerQuantile(q), d.UpperQuantile(q)
		value, err := sketch.ValueAtQuantile(q)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, value, lower*(1-relativeAccuracy))
		assert.LessOrEqual(t, value, upper*(1+relativeAccuracy))
		t.Logf("quantile %v: exact %v, sketch %v, targeted %v", q, lower, value, targeted.Query(q))
	}
}
