package reporting

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
	"payment-leakage-lab/internal/metrics"
)

// sampleDataset builds a two-row batch with known values.
func sampleDataset() *dataset.Dataset {
	d := dataset.New(2)

	d.TransactionIDs[0] = "TXN_0000000"
	d.Timestamps[0] = time.Date(2023, 8, 14, 10, 30, 5, 0, time.UTC)
	d.MerchantIDs[0] = "MID_00042"
	d.Categories[0] = "E-commerce"
	d.Geographies[0] = "US"
	d.Currencies[0] = "USD"
	d.Methods[0] = "Credit Card"
	d.Amounts[0] = 85.5
	d.RiskScores[0] = 0.4123
	d.Statuses[0] = domain.StatusSuccess
	d.FailureCodes[0] = domain.CodeSuccess
	d.Hours[0] = 10
	d.Days[0] = 0
	d.Months[0] = 8
	d.Years[0] = 2023

	d.TransactionIDs[1] = "TXN_0000001"
	d.Timestamps[1] = time.Date(2024, 12, 28, 23, 0, 0, 0, time.UTC)
	d.MerchantIDs[1] = "MID_00007"
	d.Categories[1] = "Travel"
	d.Geographies[1] = "BR"
	d.Currencies[1] = "BRL"
	d.Methods[1] = "BNPL"
	d.Amounts[1] = 1320.4
	d.RiskScores[1] = 0.98
	d.Statuses[1] = domain.StatusFailed
	d.FailureCodes[1] = "network_timeout"
	d.Retryable[1] = true
	d.Recoverable[1] = true
	d.Hours[1] = 23
	d.Days[1] = 5
	d.Weekend[1] = true
	d.Months[1] = 12
	d.Years[1] = 2024

	return d
}

func TestEncodeHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, dataset.New(0)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join(domain.Columns, ",") + "\n"
	if buf.String() != want {
		t.Errorf("header = %q, want %q", buf.String(), want)
	}
}

func TestEncodeRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleDataset()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	wantRow0 := "TXN_0000000,2023-08-14 10:30:05,MID_00042,E-commerce,US,USD,Credit Card,85.50,0.4123,success,success,0,0,0,10,0,0,8,2023"
	if lines[1] != wantRow0 {
		t.Errorf("row 0:\n got %s\nwant %s", lines[1], wantRow0)
	}

	wantRow1 := "TXN_0000001,2024-12-28 23:00:00,MID_00007,Travel,BR,BRL,BNPL,1320.40,0.9800,failed,network_timeout,1,0,1,23,5,1,12,2024"
	if lines[2] != wantRow1 {
		t.Errorf("row 1:\n got %s\nwant %s", lines[2], wantRow1)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")
	if err := WriteFile(path, sampleDataset()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, sampleDataset()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(content, buf.Bytes()) {
		t.Error("file content differs from encoded dataset")
	}
}

func TestWriteFileBadDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Parent "directory" is a regular file: creation must fail loudly.
	err := WriteFile(filepath.Join(blocker, "transactions.csv"), sampleDataset())
	if err == nil {
		t.Fatal("expected directory-creation error")
	}
}

func TestRenderSummary(t *testing.T) {
	s := metrics.Summary{
		Total:       1_000_000,
		Failed:      85_432,
		Retryable:   51_259,
		Recoverable: 17_940,
		LeakedUSD:   2_345_678.4,
	}
	out := RenderSummary(s, "data/transactions.csv")

	for _, want := range []string{
		"Transactions generated :    1,000,000",
		"Failed transactions    :       85,432  (8.5%)",
		"Retryable failures     :       51,259  (5.1%)",
		"Recoverable (leakage)  :       17,940  (1.8%)",
		"Revenue leakage (USD)  : $  2,345,678",
		"Saved to               : data/transactions.csv",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q in:\n%s", want, out)
		}
	}

	if !strings.Contains(out, strings.Repeat("=", 55)) {
		t.Error("summary missing rule line")
	}
}
