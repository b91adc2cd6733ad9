// Package main generates the simulated payment transaction dataset.
// The run is fully determined by the in-code configuration: no flags,
// no environment variables. Output: data/transactions.csv plus a
// console summary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"payment-leakage-lab/internal/config"
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/metrics"
	"payment-leakage-lab/internal/reporting"
	"payment-leakage-lab/internal/synth"
)

func main() {
	logger := log.New(os.Stderr, "[generate] ", log.LstdFlags)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	logger.Printf("generating %s transactions (seed=%d)", humanize.Comma(int64(cfg.N)), cfg.Seed)

	batch, err := synth.New(cfg).Run()
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}

	// The batch must satisfy its own contract before anything is written.
	if report := dataset.Check(batch); !report.OK() {
		for _, v := range report.Violations[:min(len(report.Violations), 10)] {
			logger.Printf("invariant violation: row %d field %s: %s", v.Row, v.Field, v.Detail)
		}
		logger.Fatalf("batch failed invariant check: %d violations in %d rows", len(report.Violations), report.Rows)
	}

	logger.Printf("writing %s", cfg.OutputPath)
	if err := reporting.WriteFile(cfg.OutputPath, batch); err != nil {
		logger.Fatalf("write output: %v", err)
	}

	fmt.Print(reporting.RenderSummary(metrics.Summarize(batch), cfg.OutputPath))
}
