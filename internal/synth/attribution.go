package synth

import (
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
)

// attributeFailures assigns failure codes, retryability and retry
// recovery to failed rows.
//
// For each failed row, one global Bernoulli draw at RetryableShare
// picks the retryable or non-retryable code pool, then one uniform draw
// picks the code within the pool. Retryability is re-derived from the
// code's catalog entry; the pools are partitioned by retryability, so
// both agree by construction. Recovery is drawn in a second pass over
// retryable failed rows, with a per-code recovery rate.
func (g *Generator) attributeFailures(d *dataset.Dataset) {
	retryPool := retryableCodes(g.cfg.Codes)
	nonRetryPool := nonRetryableCodes(g.cfg.Codes)

	for i := 0; i < d.Len(); i++ {
		if d.Statuses[i] != domain.StatusFailed {
			d.FailureCodes[i] = domain.CodeSuccess
			continue
		}
		var code string
		if g.sampler.Bernoulli(g.cfg.RetryableShare) {
			code = retryPool[g.sampler.Intn(len(retryPool))]
		} else {
			code = nonRetryPool[g.sampler.Intn(len(nonRetryPool))]
		}
		d.FailureCodes[i] = code
		d.Retryable[i] = domain.IsRetryable(code)
	}

	for i := 0; i < d.Len(); i++ {
		if !d.Retryable[i] || d.Statuses[i] != domain.StatusFailed {
			continue
		}
		d.Recovered[i] = g.sampler.Bernoulli(g.recoveryRate(d.FailureCodes[i]))
		d.Recoverable[i] = !d.Recovered[i]
	}
}

// recoveryRate looks up the configured per-code recovery rate.
func (g *Generator) recoveryRate(code string) float64 {
	if rate, ok := g.cfg.RecoveryRates[code]; ok {
		return rate
	}
	return g.cfg.DefaultRecoveryRate
}

func retryableCodes(catalog []domain.FailureCode) []string {
	var codes []string
	for _, fc := range catalog {
		if fc.Retryable {
			codes = append(codes, fc.Code)
		}
	}
	return codes
}

func nonRetryableCodes(catalog []domain.FailureCode) []string {
	var codes []string
	for _, fc := range catalog {
		if !fc.Retryable {
			codes = append(codes, fc.Code)
		}
	}
	return codes
}
