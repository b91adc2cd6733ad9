// Package synth implements the batch synthesis pipeline.
package synth

import (
	"fmt"
	"math"

	"payment-leakage-lab/internal/config"
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
	"payment-leakage-lab/internal/risk"
	"payment-leakage-lab/internal/sampling"
)

// Generator runs the single-pass batch synthesis pipeline.
type Generator struct {
	cfg     config.Config
	sampler *sampling.Sampler
}

// New creates a Generator. The sampler is seeded from cfg.Seed; two
// generators with equal config produce identical batches.
func New(cfg config.Config) *Generator {
	return &Generator{
		cfg:     cfg,
		sampler: sampling.New(cfg.Seed),
	}
}

// Run executes the pipeline and returns the assembled batch.
// The draw order is part of the reproducibility contract:
//  1. merchant categories
//  2. geographies
//  3. payment methods
//  4. amounts
//  5. timestamp offsets
//  6. risk noise
//  7. failure outcomes
//  8. retryable class and failure code, per failed row
//  9. retry recovery, per retryable failed row
//  10. merchant popularity weights, then merchant assignment
//
// Reordering these steps changes the output for a given seed.
func (g *Generator) Run() (*dataset.Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	n := g.cfg.N
	d := dataset.New(n)

	// 1-3. Dimension sampling
	catIdx := g.sampler.Categorical(n, categoryWeights(g.cfg))
	geoIdx := g.sampler.Categorical(n, geographyWeights(g.cfg))
	methodIdx := g.sampler.Categorical(n, methodWeights(g.cfg))
	for i := 0; i < n; i++ {
		cat := g.cfg.Categories[catIdx[i]]
		geo := g.cfg.Geographies[geoIdx[i]]
		d.Categories[i] = cat.Name
		d.Geographies[i] = geo.Name
		d.Currencies[i] = geo.Currency
		d.Methods[i] = g.cfg.Methods[methodIdx[i]].Name
	}

	// 4. Amounts: log-normal anchored to the category average, floored
	// and rounded to cents.
	for i := 0; i < n; i++ {
		avg := g.cfg.Categories[catIdx[i]].AvgAmount
		v := g.sampler.LogNormal(math.Log(avg), g.cfg.AmountSigma)
		if v < g.cfg.AmountFloor {
			v = g.cfg.AmountFloor
		}
		d.Amounts[i] = roundTo(v, 2)
	}

	// 5. Timestamps and calendar fields
	g.drawTimestamps(d)

	// 6. Risk scores: composite raw risk, batch min-max normalization,
	// then per-row gaussian noise. Normalization needs the whole batch
	// materialized first; a flat batch is a hard error, not NaN.
	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		amountRisk := risk.AmountRisk(d.Amounts[i], g.cfg.Risk)
		raw[i] = risk.Composite(
			g.cfg.Categories[catIdx[i]].FailBase,
			g.cfg.Geographies[geoIdx[i]].FailMult,
			g.cfg.Methods[methodIdx[i]].FailMult,
			amountRisk,
		)
	}
	base, err := risk.NormalizeBatch(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize risk scores: %w", err)
	}
	for i := 0; i < n; i++ {
		score := risk.Score(base[i], g.sampler.Normal(0, g.cfg.Risk.NoiseStddev))
		d.RiskScores[i] = roundTo(score, 4)
	}

	// 7. Failure outcomes
	for i := 0; i < n; i++ {
		p := risk.FailureProbability(d.RiskScores[i], g.cfg.Risk)
		if g.sampler.Bernoulli(p) {
			d.Statuses[i] = domain.StatusFailed
		} else {
			d.Statuses[i] = domain.StatusSuccess
		}
	}

	// 8-9. Failure attribution
	g.attributeFailures(d)

	// 10. Identity assignment
	g.assignIdentity(d)

	return d, nil
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func categoryWeights(cfg config.Config) []float64 {
	w := make([]float64, len(cfg.Categories))
	for i, c := range cfg.Categories {
		w[i] = c.Weight
	}
	return w
}

func geographyWeights(cfg config.Config) []float64 {
	w := make([]float64, len(cfg.Geographies))
	for i, g := range cfg.Geographies {
		w[i] = g.Weight
	}
	return w
}

func methodWeights(cfg config.Config) []float64 {
	w := make([]float64, len(cfg.Methods))
	for i, m := range cfg.Methods {
		w[i] = m.Weight
	}
	return w
}
