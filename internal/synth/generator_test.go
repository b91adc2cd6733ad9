package synth

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"payment-leakage-lab/internal/config"
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
	"payment-leakage-lab/internal/reporting"
	"payment-leakage-lab/internal/risk"
)

// testConfig returns the default configuration shrunk to n rows.
func testConfig(n int) config.Config {
	cfg := config.Default()
	cfg.N = n
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(1000)
	batch, err := New(cfg).Run()
	require.NoError(t, err)
	require.Equal(t, 1000, batch.Len())

	// Sequential zero-padded ids, unique by construction.
	for i := 0; i < batch.Len(); i++ {
		require.Equal(t, fmt.Sprintf("TXN_%07d", i), batch.TransactionIDs[i])
	}
	require.Equal(t, "TXN_0000000", batch.TransactionIDs[0])
	require.Equal(t, "TXN_0000999", batch.TransactionIDs[999])

	// Every row invariant holds.
	report := dataset.Check(batch)
	require.Truef(t, report.OK(), "violations: %v", report.Violations)

	// Aggregate failure rate stays within the model's clip bounds.
	failed := 0
	for _, status := range batch.Statuses {
		if status == domain.StatusFailed {
			failed++
		}
	}
	rate := float64(failed) / float64(batch.Len())
	require.Greater(t, rate, cfg.Risk.ProbMin)
	require.Less(t, rate, cfg.Risk.ProbMax)
}

func TestRunDeterministic(t *testing.T) {
	cfg := testConfig(500)

	a, err := New(cfg).Run()
	require.NoError(t, err)
	b, err := New(cfg).Run()
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, reporting.Encode(&bufA, a))
	require.NoError(t, reporting.Encode(&bufB, b))
	require.True(t, bytes.Equal(bufA.Bytes(), bufB.Bytes()), "same seed must give byte-identical output")
}

func TestRunSeedChangesOutput(t *testing.T) {
	cfg := testConfig(500)
	a, err := New(cfg).Run()
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := New(cfg).Run()
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, reporting.Encode(&bufA, a))
	require.NoError(t, reporting.Encode(&bufB, b))
	require.False(t, bytes.Equal(bufA.Bytes(), bufB.Bytes()), "different seeds must not collide")
}

func TestRunAmountsFlooredAndRounded(t *testing.T) {
	batch, err := New(testConfig(2000)).Run()
	require.NoError(t, err)

	for i, amount := range batch.Amounts {
		require.GreaterOrEqualf(t, amount, 1.0, "row %d below floor", i)
		cents := amount * 100
		require.InDeltaf(t, cents, float64(int64(cents+0.5)), 1e-6, "row %d not rounded to cents", i)
	}
}

func TestRunTimestampsInsideWindow(t *testing.T) {
	cfg := testConfig(2000)
	batch, err := New(cfg).Run()
	require.NoError(t, err)

	for i, ts := range batch.Timestamps {
		require.Falsef(t, ts.Before(cfg.WindowStart), "row %d before window", i)
		require.Truef(t, ts.Before(cfg.WindowEnd), "row %d at or past window end", i)

		require.Equal(t, ts.Hour(), batch.Hours[i])
		require.Equal(t, int(ts.Month()), batch.Months[i])
		require.Equal(t, ts.Year(), batch.Years[i])
		require.Equal(t, batch.Days[i] >= 5, batch.Weekend[i])
	}
}

func TestRunMerchantConcentration(t *testing.T) {
	cfg := testConfig(20000)
	batch, err := New(cfg).Run()
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, id := range batch.MerchantIDs {
		counts[id]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	mean := float64(cfg.N) / float64(cfg.MerchantCount)
	require.Greaterf(t, float64(maxCount), 3*mean,
		"power-law popularity must concentrate volume: max=%d mean=%.2f", maxCount, mean)
}

func TestRunDegenerateRiskSurfaced(t *testing.T) {
	cfg := testConfig(100)

	// Collapse every source of risk variation: one entry per dimension
	// and no amount contribution.
	cfg.Categories = cfg.Categories[:1]
	cfg.Geographies = cfg.Geographies[:1]
	cfg.Methods = cfg.Methods[:1]
	cfg.Risk.AmountCap = 0

	_, err := New(cfg).Run()
	require.ErrorIs(t, err, risk.ErrDegenerateRisk)
}

func TestRunFailureAttribution(t *testing.T) {
	batch, err := New(testConfig(5000)).Run()
	require.NoError(t, err)

	retryPool := map[string]bool{}
	for _, code := range domain.RetryableCodes() {
		retryPool[code] = true
	}

	sawRetryable, sawNonRetryable, sawRecovered := false, false, false
	for i := 0; i < batch.Len(); i++ {
		if batch.Statuses[i] == domain.StatusSuccess {
			require.Equal(t, domain.CodeSuccess, batch.FailureCodes[i])
			require.False(t, batch.Retryable[i])
			require.False(t, batch.Recovered[i])
			require.False(t, batch.Recoverable[i])
			continue
		}
		require.NotEqual(t, domain.CodeSuccess, batch.FailureCodes[i])
		require.Equal(t, retryPool[batch.FailureCodes[i]], batch.Retryable[i])
		if batch.Retryable[i] {
			sawRetryable = true
			require.Equal(t, !batch.Recovered[i], batch.Recoverable[i])
			if batch.Recovered[i] {
				sawRecovered = true
			}
		} else {
			sawNonRetryable = true
			require.False(t, batch.Recovered[i])
			require.False(t, batch.Recoverable[i])
		}
	}
	require.True(t, sawRetryable, "batch of 5000 should contain retryable failures")
	require.True(t, sawNonRetryable, "batch of 5000 should contain non-retryable failures")
	require.True(t, sawRecovered, "batch of 5000 should contain recovered retries")
}
