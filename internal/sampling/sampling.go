// Package sampling owns the run's entropy. One seeded source backs
// every draw, so the order in which the pipeline consumes draws fully
// determines the output for a given seed.
package sampling

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler wraps a single seeded PRNG shared by all distributions.
type Sampler struct {
	src rand.Source
	rng *rand.Rand
}

// New creates a Sampler seeded with the given value.
func New(seed uint64) *Sampler {
	src := rand.NewSource(seed)
	return &Sampler{src: src, rng: rand.New(src)}
}

// Categorical draws n independent weighted index draws. Weights need
// not sum to 1; the distribution normalizes them.
func (s *Sampler) Categorical(n int, weights []float64) []int {
	dist := distuv.NewCategorical(weights, s.src)
	out := make([]int, n)
	for i := range out {
		out[i] = int(dist.Rand())
	}
	return out
}

// LogNormal draws one value whose logarithm is normal with the given
// mean and standard deviation.
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Normal draws one gaussian value.
func (s *Sampler) Normal(mean, stddev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: s.src}.Rand()
}

// Int63n draws a uniform integer in [0, n).
func (s *Sampler) Int63n(n int64) int64 {
	return s.rng.Int63n(n)
}

// Intn draws a uniform integer in [0, n).
func (s *Sampler) Intn(n int) int {
	return s.rng.Intn(n)
}

// Bernoulli draws true with probability p.
func (s *Sampler) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// PowerWeights draws n popularity weights from a power-function
// distribution (density alpha*x^(alpha-1) on [0,1], sampled by inverse
// transform U^(1/alpha)) and normalizes them to sum to 1. Small alpha
// concentrates mass on a few entries.
func (s *Sampler) PowerWeights(n int, alpha float64) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = math.Pow(s.rng.Float64(), 1/alpha)
	}
	total := floats.Sum(w)
	for i := range w {
		w[i] /= total
	}
	return w
}
