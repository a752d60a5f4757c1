// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value to
// every Constructor.
type builderConfig struct {
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is set.
	rng *rand.Rand
	// weightFn yields the cost of each emitted edge.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
