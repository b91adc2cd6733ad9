// Package risk implements the composite pre-authorization risk score
// and the sigmoid failure-probability model.
package risk

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateRisk is returned when batch normalization is impossible
// because every raw risk value is identical (max equals min).
var ErrDegenerateRisk = errors.New("degenerate risk batch: max equals min")

// Params holds the failure-model constants.
type Params struct {
	AmountOffset float64 // amount above which size contributes risk (USD)
	AmountScale  float64 // divisor converting excess amount to risk
	AmountCap    float64 // ceiling of the amount risk contribution
	NoiseStddev  float64 // gaussian noise emulating model imperfection
	Threshold    float64 // sigmoid center on the normalized score
	Width        float64 // sigmoid width; small values give step-like behavior
	ProbScale    float64 // sigmoid output scale
	ProbFloor    float64 // additive base failure probability
	ProbMin      float64 // lower clip of the failure probability
	ProbMax      float64 // upper clip of the failure probability
}

// DefaultParams are the documented model constants.
var DefaultParams = Params{
	AmountOffset: 50,
	AmountScale:  1000,
	AmountCap:    0.12,
	NoiseStddev:  0.04,
	Threshold:    0.45,
	Width:        0.025,
	ProbScale:    0.40,
	ProbFloor:    0.03,
	ProbMin:      0.02,
	ProbMax:      0.90,
}

// AmountRisk returns the size contribution to raw risk:
// clip((amount - offset) / scale, 0, cap).
func AmountRisk(amountUSD float64, p Params) float64 {
	return Clip((amountUSD-p.AmountOffset)/p.AmountScale, 0, p.AmountCap)
}

// Composite returns the raw multiplicative risk for one transaction:
// category base rate times geography and method multipliers, plus the
// amount contribution.
func Composite(categoryBase, geoMult, methodMult, amountRisk float64) float64 {
	return categoryBase*geoMult*methodMult + amountRisk
}

// NormalizeBatch min-max scales raw risk values to [0,1] in place and
// returns the slice. The scaling is batch-relative: it requires the
// full batch to be materialized, and two batches normalize differently.
// A batch where max equals min cannot be scaled; that degeneracy is
// surfaced as ErrDegenerateRisk rather than propagated as NaN.
func NormalizeBatch(raw []float64) ([]float64, error) {
	if len(raw) == 0 {
		return nil, ErrDegenerateRisk
	}
	lo := floats.Min(raw)
	hi := floats.Max(raw)
	if hi == lo {
		return nil, ErrDegenerateRisk
	}
	span := hi - lo
	for i, v := range raw {
		raw[i] = (v - lo) / span
	}
	return raw, nil
}

// Score applies gaussian noise to a normalized base score and clips the
// result to [0,1], producing the final pre-authorization risk score.
func Score(base, noise float64) float64 {
	return Clip(base+noise, 0, 1)
}

// FailureProbability maps a risk score to a failure probability via a
// shifted, scaled sigmoid:
//
//	p = sigmoid((score - threshold) / width) * scale + floor
//
// clipped to [ProbMin, ProbMax]. The narrow width makes the model
// step-like around the threshold: transactions just above it fail far
// more often than those just below. Note the reachable ceiling is
// ProbScale+ProbFloor (0.43 with defaults); the ProbMax clip only binds
// for parameterizations with a larger scale.
func FailureProbability(score float64, p Params) float64 {
	prob := sigmoid((score-p.Threshold)/p.Width)*p.ProbScale + p.ProbFloor
	return Clip(prob, p.ProbMin, p.ProbMax)
}

// Ceiling returns the maximum failure probability the model can emit.
func Ceiling(p Params) float64 {
	return Clip(p.ProbScale+p.ProbFloor, p.ProbMin, p.ProbMax)
}

// Clip bounds x to [lo, hi].
func Clip(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
