// Package dataset holds the generated batch column-wise and checks its
// row invariants.
package dataset

import (
	"time"

	"payment-leakage-lab/internal/domain"
)

// Dataset is the column-aligned batch of generated transactions.
// All slices have equal length; index i across every column forms one
// transaction record.
type Dataset struct {
	TransactionIDs []string
	Timestamps     []time.Time
	MerchantIDs    []string
	Categories     []string
	Geographies    []string
	Currencies     []string
	Methods        []string
	Amounts        []float64
	RiskScores     []float64
	Statuses       []string
	FailureCodes   []string
	Retryable      []bool
	Recovered      []bool
	Recoverable    []bool
	Hours          []int
	Days           []int
	Weekend        []bool
	Months         []int
	Years          []int
}

// New returns a Dataset with every column preallocated to n rows.
func New(n int) *Dataset {
	return &Dataset{
		TransactionIDs: make([]string, n),
		Timestamps:     make([]time.Time, n),
		MerchantIDs:    make([]string, n),
		Categories:     make([]string, n),
		Geographies:    make([]string, n),
		Currencies:     make([]string, n),
		Methods:        make([]string, n),
		Amounts:        make([]float64, n),
		RiskScores:     make([]float64, n),
		Statuses:       make([]string, n),
		FailureCodes:   make([]string, n),
		Retryable:      make([]bool, n),
		Recovered:      make([]bool, n),
		Recoverable:    make([]bool, n),
		Hours:          make([]int, n),
		Days:           make([]int, n),
		Weekend:        make([]bool, n),
		Months:         make([]int, n),
		Years:          make([]int, n),
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.TransactionIDs)
}

// Row materializes row i as a Transaction.
func (d *Dataset) Row(i int) domain.Transaction {
	return domain.Transaction{
		TransactionID:    d.TransactionIDs[i],
		Timestamp:        d.Timestamps[i],
		MerchantID:       d.MerchantIDs[i],
		Category:         d.Categories[i],
		Geography:        d.Geographies[i],
		Currency:         d.Currencies[i],
		Method:           d.Methods[i],
		AmountUSD:        d.Amounts[i],
		PreAuthRiskScore: d.RiskScores[i],
		Status:           d.Statuses[i],
		FailureCode:      d.FailureCodes[i],
		IsRetryable:      d.Retryable[i],
		RetryRecovered:   d.Recovered[i],
		IsRecoverable:    d.Recoverable[i],
		HourOfDay:        d.Hours[i],
		DayOfWeek:        d.Days[i],
		IsWeekend:        d.Weekend[i],
		Month:            d.Months[i],
		Year:             d.Years[i],
	}
}
