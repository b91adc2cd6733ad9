// Package main re-reads the generated dataset and verifies it against
// the generation contract: header shape, sequential transaction ids,
// and every row invariant. Zero-argument; reads the fixed output path.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"payment-leakage-lab/internal/config"
	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

func main() {
	logger := log.New(os.Stderr, "[verify] ", log.LstdFlags)

	path := config.Default().OutputPath
	f, err := os.Open(path)
	if err != nil {
		logger.Fatalf("open dataset: %v", err)
	}
	defer f.Close()

	rows, violations, err := verify(f)
	if err != nil {
		logger.Fatalf("verify %s: %v", path, err)
	}

	fmt.Printf("Verified %s rows of %s\n", humanize.Comma(int64(rows)), path)
	if len(violations) == 0 {
		fmt.Println("All invariants hold.")
		return
	}

	for _, v := range violations[:min(len(violations), 20)] {
		fmt.Printf("  row %d field %s: %s\n", v.Row, v.Field, v.Detail)
	}
	fmt.Printf("%d invariant violations\n", len(violations))
	os.Exit(1)
}

// verify streams the CSV and collects invariant violations.
// A malformed file (wrong header, unparseable field) is an error, not a
// violation: it means the artifact is not ours to verify.
func verify(f io.Reader) (int, []dataset.Violation, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = len(domain.Columns)

	header, err := r.Read()
	if err != nil {
		return 0, nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range domain.Columns {
		if header[i] != col {
			return 0, nil, fmt.Errorf("header column %d: expected %q, got %q", i, col, header[i])
		}
	}

	var violations []dataset.Violation
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return row, nil, fmt.Errorf("read row %d: %w", row, err)
		}

		tx, err := parseRow(record)
		if err != nil {
			return row, nil, fmt.Errorf("parse row %d: %w", row, err)
		}

		// Sequential ids double as a uniqueness and ordering check.
		if want := fmt.Sprintf("TXN_%07d", row); tx.TransactionID != want {
			violations = append(violations, dataset.Violation{
				Row:    row,
				Field:  "transaction_id",
				Detail: fmt.Sprintf("expected %s, got %s", want, tx.TransactionID),
			})
		}

		violations = append(violations, dataset.CheckRow(row, tx)...)
		row++
	}
	return row, violations, nil
}

// parseRow decodes one CSV record in domain.Columns order.
func parseRow(record []string) (domain.Transaction, error) {
	var tx domain.Transaction
	var err error

	tx.TransactionID = record[0]
	if tx.Timestamp, err = time.Parse(timestampLayout, record[1]); err != nil {
		return tx, fmt.Errorf("timestamp: %w", err)
	}
	tx.MerchantID = record[2]
	tx.Category = record[3]
	tx.Geography = record[4]
	tx.Currency = record[5]
	tx.Method = record[6]
	if tx.AmountUSD, err = strconv.ParseFloat(record[7], 64); err != nil {
		return tx, fmt.Errorf("amount_usd: %w", err)
	}
	if tx.PreAuthRiskScore, err = strconv.ParseFloat(record[8], 64); err != nil {
		return tx, fmt.Errorf("pre_auth_risk_score: %w", err)
	}
	tx.Status = record[9]
	tx.FailureCode = record[10]
	if tx.IsRetryable, err = parseBool(record[11]); err != nil {
		return tx, fmt.Errorf("is_retryable: %w", err)
	}
	if tx.RetryRecovered, err = parseBool(record[12]); err != nil {
		return tx, fmt.Errorf("retry_recovered: %w", err)
	}
	if tx.IsRecoverable, err = parseBool(record[13]); err != nil {
		return tx, fmt.Errorf("is_recoverable: %w", err)
	}
	if tx.HourOfDay, err = strconv.Atoi(record[14]); err != nil {
		return tx, fmt.Errorf("hour_of_day: %w", err)
	}
	if tx.DayOfWeek, err = strconv.Atoi(record[15]); err != nil {
		return tx, fmt.Errorf("day_of_week: %w", err)
	}
	if tx.IsWeekend, err = parseBool(record[16]); err != nil {
		return tx, fmt.Errorf("is_weekend: %w", err)
	}
	if tx.Month, err = strconv.Atoi(record[17]); err != nil {
		return tx, fmt.Errorf("month: %w", err)
	}
	if tx.Year, err = strconv.Atoi(record[18]); err != nil {
		return tx, fmt.Errorf("year: %w", err)
	}
	return tx, nil
}

// parseBool decodes the 0/1 boolean encoding of the CSV.
func parseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", s)
	}
}
