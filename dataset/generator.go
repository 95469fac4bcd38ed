// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2021 Datadog, Inc.

package dataset

import (
	"math"
	"math/rand"
)

// Generator produces a stream of values to feed both a sketch and a Dataset.
type Generator interface {
	Generate() float64
}

// Constant stream
type Constant struct{ constant float64 }

func NewConstant(constant float64) *Constant { return &Constant{constant: constant} }

func (g *Constant) Generate() float64 { return g.constant }

// Linearly increasing stream: 1, 2, 3, ...
type Linear struct{ currentValue float64 }

func NewLinear() *Linear { return &Linear{} }

func (g *Linear) Generate() float64 {
	g.currentValue++
	return g.currentValue
}

// Uniform distribution over (0, 1]
type Uniform struct{}

func NewUniform() *Uniform { return &Uniform{} }

func (g *Uniform) Generate() float64 { return 1 - rand.Float64() }

// Normal distribution
type Normal struct{ mean, stddev float64 }

func NewNormal(mean, stddev float64) *Normal { return &Normal{mean: mean, stddev: stddev} }

func (g *Normal) Generate() float64 { return rand.NormFloat64()*g.stddev + g.mean }

// Lognormal distribution
type Lognormal struct{ mu, sigma float64 }

func NewLognormal(mu, sigma float64) *Lognormal { return &Lognormal{mu: mu, sigma: sigma} }

func (g *Lognormal) Generate() float64 {
	return math.Exp(rand.NormFloat64()*g.sigma + g.mu)
}

// Exponential distribution
type Exponential struct{ rate float64 }

func NewExponential(rate float64) *Exponential { return &Exponential{rate: rate} }

func (g *Exponential) Generate() float64 { return rand.ExpFloat64() / g.rate }

// Pareto distribution
type Pareto struct{ shape, scale float64 }

func NewPareto(shape, scale float64) *Pareto { return &Pareto{shape: shape, scale: scale} }

func (g *Pareto) Generate() float64 {
	return g.scale * math.Exp(rand.ExpFloat64()/g.shape)
}
