package dataset

import (
	"fmt"

	"payment-leakage-lab/internal/domain"
)

// Violation reports a row that breaks a dataset invariant.
type Violation struct {
	Row    int    // row index
	Field  string // offending column
	Detail string // human-readable description
}

// Report contains the result of checking a full batch.
type Report struct {
	Rows       int
	Violations []Violation
}

// OK reports whether the batch satisfied every invariant.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Check verifies every row invariant of the generated batch:
// positive amounts, status/failure-code coherence, retryability as a
// pure function of the code, the recoverable implication chain,
// currency as a pure function of geography, and risk scores in [0,1].
func Check(d *Dataset) *Report {
	rep := &Report{Rows: d.Len()}
	for i := 0; i < d.Len(); i++ {
		rep.Violations = append(rep.Violations, CheckRow(i, d.Row(i))...)
	}
	return rep
}

// CheckRow verifies one transaction against the row invariants.
func CheckRow(row int, tx domain.Transaction) []Violation {
	var out []Violation
	add := func(field, format string, args ...interface{}) {
		out = append(out, Violation{Row: row, Field: field, Detail: fmt.Sprintf(format, args...)})
	}

	if tx.AmountUSD <= 0 {
		add("amount_usd", "must be positive, got %v", tx.AmountUSD)
	}
	if tx.PreAuthRiskScore < 0 || tx.PreAuthRiskScore > 1 {
		add("pre_auth_risk_score", "must be in [0,1], got %v", tx.PreAuthRiskScore)
	}

	switch tx.Status {
	case domain.StatusSuccess:
		if tx.FailureCode != domain.CodeSuccess {
			add("failure_code", "successful row must carry %q, got %q", domain.CodeSuccess, tx.FailureCode)
		}
	case domain.StatusFailed:
		if tx.FailureCode == domain.CodeSuccess {
			add("failure_code", "failed row must carry a non-success code")
		}
	default:
		add("status", "unknown status %q", tx.Status)
	}

	if tx.IsRetryable != domain.IsRetryable(tx.FailureCode) {
		add("is_retryable", "must equal catalog retryability of %q", tx.FailureCode)
	}
	if tx.RetryRecovered && !tx.IsRetryable {
		add("retry_recovered", "recovered implies retryable")
	}
	if tx.IsRecoverable && !(tx.IsRetryable && !tx.RetryRecovered && tx.Status == domain.StatusFailed) {
		add("is_recoverable", "recoverable implies retryable, unrecovered and failed")
	}
	if tx.IsRetryable && tx.Status == domain.StatusFailed && !tx.RetryRecovered && !tx.IsRecoverable {
		add("is_recoverable", "unrecovered retryable failure must be recoverable")
	}

	currency, ok := domain.CurrencyFor(tx.Geography)
	if !ok {
		add("geography", "unknown geography %q", tx.Geography)
	} else if tx.Currency != currency {
		add("currency", "geography %q maps to %q, got %q", tx.Geography, currency, tx.Currency)
	}

	return out
}
