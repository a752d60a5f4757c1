// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors panic on programmer errors (nil arguments); the
// constructors themselves only return errors.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand uses r for every stochastic decision and weight draw.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge cost generator. Panics if fn is nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
