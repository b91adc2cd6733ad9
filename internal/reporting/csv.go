// Package reporting renders the generated batch as CSV and formats the
// console summary.
package reporting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"payment-leakage-lab/internal/dataset"
	"payment-leakage-lab/internal/domain"
)

// timestampLayout is the second-resolution timestamp format of the
// output file.
const timestampLayout = "2006-01-02 15:04:05"

// Encode streams the dataset to w as comma-delimited text: UTF-8,
// header row, columns in domain.Columns order, one row per transaction.
// No column can contain a comma or quote, so fields are written bare.
func Encode(w io.Writer, d *dataset.Dataset) error {
	if _, err := fmt.Fprintln(w, strings.Join(domain.Columns, ",")); err != nil {
		return err
	}
	for i := 0; i < d.Len(); i++ {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s,%.2f,%.4f,%s,%s,%d,%d,%d,%d,%d,%d,%d,%d\n",
			d.TransactionIDs[i],
			d.Timestamps[i].Format(timestampLayout),
			d.MerchantIDs[i],
			d.Categories[i],
			d.Geographies[i],
			d.Currencies[i],
			d.Methods[i],
			d.Amounts[i],
			d.RiskScores[i],
			d.Statuses[i],
			d.FailureCodes[i],
			boolInt(d.Retryable[i]),
			boolInt(d.Recovered[i]),
			boolInt(d.Recoverable[i]),
			d.Hours[i],
			d.Days[i],
			boolInt(d.Weekend[i]),
			d.Months[i],
			d.Years[i],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the dataset to path as one bulk write, creating the
// parent directory if needed. There is no partial-output recovery: a
// failed write leaves no usable artifact and the error is returned.
func WriteFile(path string, d *dataset.Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := bufio.NewWriterSize(f, 1<<20)
	if err := Encode(w, d); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// boolInt renders a boolean as the 0/1 integer used in the CSV.
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
