package synth

import (
	"time"

	"payment-leakage-lab/internal/dataset"
)

// drawTimestamps draws uniform second offsets over the configured
// window and derives the calendar fields.
//
// The calendar fields are descriptive only: hourly and weekend volume
// multipliers are intentionally not applied to reweight sampling, so
// the generated volume is uniform in time. Seasonal resampling would be
// a behavior change, not a derivation change.
func (g *Generator) drawTimestamps(d *dataset.Dataset) {
	totalSeconds := int64(g.cfg.WindowEnd.Sub(g.cfg.WindowStart) / time.Second)
	for i := 0; i < g.cfg.N; i++ {
		offset := g.sampler.Int63n(totalSeconds)
		ts := g.cfg.WindowStart.Add(time.Duration(offset) * time.Second)

		d.Timestamps[i] = ts
		d.Hours[i] = ts.Hour()
		d.Days[i] = mondayIndexed(ts.Weekday())
		d.Weekend[i] = d.Days[i] >= 5
		d.Months[i] = int(ts.Month())
		d.Years[i] = ts.Year()
	}
}

// mondayIndexed converts time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}
