package domain

import "time"

// Transaction represents one simulated payment attempt.
// Corresponds to one row of the generated transactions.csv.
type Transaction struct {
	TransactionID string    // sequential, zero-padded: TXN_0000000
	Timestamp     time.Time // uniform over the generation window (UTC)
	MerchantID    string    // power-law weighted pool: MID_00000
	Category      string    // merchant category label
	Geography     string    // region label
	Currency      string    // deterministic function of Geography
	Method        string    // payment method label

	AmountUSD        float64 // log-normal, floored at 1.0, 2 decimals
	PreAuthRiskScore float64 // composite + noise, clipped to [0,1], 4 decimals

	Status         string // "success" | "failed"
	FailureCode    string // "success" when Status is success
	IsRetryable    bool   // fixed lookup on FailureCode
	RetryRecovered bool   // only meaningful for retryable failures
	IsRecoverable  bool   // retryable AND failed AND NOT recovered

	// Calendar fields derived from Timestamp
	HourOfDay int // 0-23
	DayOfWeek int // Monday=0 .. Sunday=6
	IsWeekend bool
	Month     int
	Year      int
}

// Status constants
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// CodeSuccess is the failure_code value of successful transactions.
const CodeSuccess = "success"

// Columns is the CSV column order of the output file.
var Columns = []string{
	"transaction_id",
	"timestamp",
	"merchant_id",
	"merchant_category",
	"geography",
	"currency",
	"payment_method",
	"amount_usd",
	"pre_auth_risk_score",
	"status",
	"failure_code",
	"is_retryable",
	"retry_recovered",
	"is_recoverable",
	"hour_of_day",
	"day_of_week",
	"is_weekend",
	"month",
	"year",
}
