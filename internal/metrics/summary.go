// Package metrics computes batch-level aggregates for the console summary.
package metrics

import (
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
)

// Summary aggregates one generated batch.
type Summary struct {
	Total       int     // rows generated
	Failed      int     // rows with status failed
	Retryable   int     // rows with a retryable failure code
	Recoverable int     // failed, retryable, unrecovered rows
	LeakedUSD   float64 // amount sum over recoverable rows
}

// Summarize computes the batch summary in one pass.
func Summarize(d *dataset.Dataset) Summary {
	s := Summary{Total: d.Len()}
	for i := 0; i < d.Len(); i++ {
		if d.Statuses[i] == domain.StatusFailed {
			s.Failed++
		}
		if d.Retryable[i] {
			s.Retryable++
		}
		if d.Recoverable[i] {
			s.Recoverable++
			s.LeakedUSD += d.Amounts[i]
		}
	}
	return s
}

// FailedRate returns failed rows as a fraction of the batch.
func (s Summary) FailedRate() float64 { return rate(s.Failed, s.Total) }

// RetryableRate returns retryable failures as a fraction of the batch.
func (s Summary) RetryableRate() float64 { return rate(s.Retryable, s.Total) }

// RecoverableRate returns recoverable failures as a fraction of the batch.
func (s Summary) RecoverableRate() float64 { return rate(s.Recoverable, s.Total) }

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
