package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.N != 1_000_000 {
		t.Errorf("N = %d, want 1000000", cfg.N)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.MerchantCount != 5000 {
		t.Errorf("MerchantCount = %d, want 5000", cfg.MerchantCount)
	}
	if !cfg.WindowStart.Equal(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("WindowStart = %v", cfg.WindowStart)
	}
	if !cfg.WindowEnd.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("WindowEnd = %v", cfg.WindowEnd)
	}
	if cfg.OutputPath != "data/transactions.csv" {
		t.Errorf("OutputPath = %s", cfg.OutputPath)
	}
}

func TestValidateRejectsZeroCount(t *testing.T) {
	cfg := Default()
	cfg.N = 0
	if err := cfg.Validate(); !errors.Is(err, ErrNoTransactions) {
		t.Errorf("expected ErrNoTransactions, got %v", err)
	}
}

func TestValidateRejectsInvertedWindow(t *testing.T) {
	cfg := Default()
	cfg.WindowEnd = cfg.WindowStart
	if err := cfg.Validate(); !errors.Is(err, ErrBadWindow) {
		t.Errorf("expected ErrBadWindow, got %v", err)
	}
}

func TestValidateRejectsEmptyDimension(t *testing.T) {
	cfg := Default()
	cfg.Geographies = nil
	if err := cfg.Validate(); !errors.Is(err, ErrEmptyDimension) {
		t.Errorf("expected ErrEmptyDimension, got %v", err)
	}
}

func TestValidateRejectsNonPositiveWeight(t *testing.T) {
	cfg := Default()
	cfg.Methods = append(cfg.Methods[:0:0], cfg.Methods...)
	cfg.Methods[0].Weight = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero weight")
	}
}

func TestValidateRejectsBadRetryableShare(t *testing.T) {
	cfg := Default()
	cfg.RetryableShare = 1.2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for retryable share above 1")
	}
}

func TestValidateRejectsOneSidedCatalog(t *testing.T) {
	cfg := Default()
	cfg.Codes = cfg.Codes[:0:0]
	for _, code := range Default().Codes {
		if code.Retryable {
			cfg.Codes = append(cfg.Codes, code)
		}
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for catalog without non-retryable codes")
	}
}
