package domain

// FailureCode describes a decline code and its retry semantics.
type FailureCode struct {
	Code        string
	Retryable   bool // true if a subsequent attempt can recover the revenue
	Description string
}

// FailureCodes is the fixed decline-code catalog. Retryability is a
// property of the code, never drawn independently.
var FailureCodes = []FailureCode{
	{Code: "insufficient_funds", Retryable: true, Description: "Insufficient funds - retry after top-up"},
	{Code: "card_expired", Retryable: false, Description: "Card expired - requires new card"},
	{Code: "do_not_honor", Retryable: true, Description: "Generic bank decline - retryable"},
	{Code: "incorrect_cvc", Retryable: false, Description: "CVC mismatch - requires customer action"},
	{Code: "lost_card", Retryable: false, Description: "Card reported lost - permanent block"},
	{Code: "stolen_card", Retryable: false, Description: "Card reported stolen - permanent block"},
	{Code: "processing_error", Retryable: true, Description: "Processor error - retry immediately"},
	{Code: "network_timeout", Retryable: true, Description: "Network timeout - retry"},
	{Code: "velocity_exceeded", Retryable: true, Description: "Velocity limit hit - retry after cooldown"},
	{Code: "fraud_suspected", Retryable: false, Description: "Fraud flag - requires review"},
	{Code: "currency_not_supported", Retryable: false, Description: "Currency mismatch - not retryable"},
	{Code: "amount_too_large", Retryable: false, Description: "Exceeds card limit - not retryable"},
}

// RecoveryRates maps a retryable code to the probability that a
// simulated retry recovers the revenue.
var RecoveryRates = map[string]float64{
	"insufficient_funds": 0.45,
	"do_not_honor":       0.60,
	"processing_error":   0.82,
	"network_timeout":    0.88,
	"velocity_exceeded":  0.55,
}

// DefaultRecoveryRate applies to retryable codes absent from RecoveryRates.
const DefaultRecoveryRate = 0.50

// RetryableCodes returns the codes flagged retryable, in catalog order.
func RetryableCodes() []string {
	var codes []string
	for _, fc := range FailureCodes {
		if fc.Retryable {
			codes = append(codes, fc.Code)
		}
	}
	return codes
}

// NonRetryableCodes returns the codes flagged non-retryable, in catalog order.
func NonRetryableCodes() []string {
	var codes []string
	for _, fc := range FailureCodes {
		if !fc.Retryable {
			codes = append(codes, fc.Code)
		}
	}
	return codes
}

// IsRetryable returns the fixed retryability of a code.
// CodeSuccess and unknown codes are not retryable.
func IsRetryable(code string) bool {
	for _, fc := range FailureCodes {
		if fc.Code == code {
			return fc.Retryable
		}
	}
	return false
}

// RecoveryRateFor returns the retry recovery rate of a code, falling
// back to DefaultRecoveryRate when the code has no explicit entry.
func RecoveryRateFor(code string) float64 {
	if rate, ok := RecoveryRates[code]; ok {
		return rate
	}
	return DefaultRecoveryRate
}
