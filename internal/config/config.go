// Package config defines the generation run configuration.
// All tunables are fixed in code: the binaries take no flags,
// environment variables or config files, and run from Default().
package config

import (
	"errors"
	"fmt"
	"time"

	"payment-leakage-lab/internal/domain"
	"payment-leakage-lab/internal/risk"
)

// Config holds every tunable of a generation run.
type Config struct {
	N    int    // number of transactions to generate
	Seed uint64 // PRNG seed; same seed and N give byte-identical output

	// Temporal window. Offsets are drawn uniformly in whole seconds
	// within [WindowStart, WindowEnd).
	WindowStart time.Time
	WindowEnd   time.Time

	// Amount synthesis
	AmountSigma float64 // shape of the log-normal amount distribution
	AmountFloor float64 // minimum amount in USD

	// Dimension tables
	Categories  []domain.MerchantCategory
	Geographies []domain.Geography
	Methods     []domain.PaymentMethod

	// Failure attribution
	Codes               []domain.FailureCode
	RecoveryRates       map[string]float64
	DefaultRecoveryRate float64
	RetryableShare      float64 // fraction of failures assigned to the retryable pool

	// Risk model constants
	Risk risk.Params

	// Merchant identity
	MerchantCount int     // size of the merchant pool
	MerchantAlpha float64 // power-law shape of merchant popularity

	OutputPath string // destination of the generated CSV
}

// Default returns the documented run configuration.
func Default() Config {
	return Config{
		N:    1_000_000,
		Seed: 42,

		WindowStart: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),

		AmountSigma: 0.7,
		AmountFloor: 1.0,

		Categories:  domain.MerchantCategories,
		Geographies: domain.Geographies,
		Methods:     domain.PaymentMethods,

		Codes:               domain.FailureCodes,
		RecoveryRates:       domain.RecoveryRates,
		DefaultRecoveryRate: domain.DefaultRecoveryRate,
		RetryableShare:      0.60,

		Risk: risk.DefaultParams,

		MerchantCount: 5000,
		MerchantAlpha: 0.3,

		OutputPath: "data/transactions.csv",
	}
}

// Validation errors
var (
	ErrNoTransactions = errors.New("transaction count must be positive")
	ErrEmptyDimension = errors.New("dimension table must not be empty")
	ErrBadWindow      = errors.New("window end must be after window start")
)

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.N <= 0 {
		return ErrNoTransactions
	}
	if !c.WindowEnd.After(c.WindowStart) {
		return ErrBadWindow
	}
	if c.AmountSigma <= 0 {
		return errors.New("amount sigma must be positive")
	}
	if c.AmountFloor <= 0 {
		return errors.New("amount floor must be positive")
	}
	if err := checkWeights("categories", len(c.Categories), func(i int) float64 { return c.Categories[i].Weight }); err != nil {
		return err
	}
	if err := checkWeights("geographies", len(c.Geographies), func(i int) float64 { return c.Geographies[i].Weight }); err != nil {
		return err
	}
	if err := checkWeights("payment methods", len(c.Methods), func(i int) float64 { return c.Methods[i].Weight }); err != nil {
		return err
	}
	for _, cat := range c.Categories {
		if cat.AvgAmount <= 0 {
			return fmt.Errorf("category %q: average amount must be positive", cat.Name)
		}
	}
	if c.RetryableShare < 0 || c.RetryableShare > 1 {
		return errors.New("retryable share must be in [0,1]")
	}
	retryable, nonRetryable := 0, 0
	for _, code := range c.Codes {
		if code.Retryable {
			retryable++
		} else {
			nonRetryable++
		}
	}
	if retryable == 0 || nonRetryable == 0 {
		return errors.New("failure-code catalog must contain both retryable and non-retryable codes")
	}
	for code, rate := range c.RecoveryRates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("recovery rate for %q must be in [0,1]", code)
		}
	}
	if c.Risk.Width <= 0 {
		return errors.New("sigmoid width must be positive")
	}
	if c.Risk.ProbMin > c.Risk.ProbMax {
		return errors.New("probability clip bounds inverted")
	}
	if c.MerchantCount <= 0 {
		return errors.New("merchant count must be positive")
	}
	if c.MerchantAlpha <= 0 {
		return errors.New("merchant popularity alpha must be positive")
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}

// checkWeights validates one dimension's weight vector.
func checkWeights(name string, n int, weight func(int) float64) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyDimension)
	}
	for i := 0; i < n; i++ {
		if weight(i) <= 0 {
			return fmt.Errorf("%s: weight at index %d must be positive", name, i)
		}
	}
	return nil
}
