package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"payment-leakage-lab/internal/metrics"
)

// RenderSummary formats the fixed-format console block printed after a
// successful run.
func RenderSummary(s metrics.Summary, outputPath string) string {
	rule := strings.Repeat("=", 55)

	var sb strings.Builder
	sb.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&sb, "  Transactions generated : %12s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(&sb, "  Failed transactions    : %12s  (%.1f%%)\n", humanize.Comma(int64(s.Failed)), s.FailedRate()*100)
	fmt.Fprintf(&sb, "  Retryable failures     : %12s  (%.1f%%)\n", humanize.Comma(int64(s.Retryable)), s.RetryableRate()*100)
	fmt.Fprintf(&sb, "  Recoverable (leakage)  : %12s  (%.1f%%)\n", humanize.Comma(int64(s.Recoverable)), s.RecoverableRate()*100)
	fmt.Fprintf(&sb, "  Revenue leakage (USD)  : $%11s\n", humanize.Comma(int64(math.Round(s.LeakedUSD))))
	fmt.Fprintf(&sb, "  Saved to               : %s\n", outputPath)
	sb.WriteString(rule + "\n")
	return sb.String()
}
