package synth

import (
	"fmt"

	"payment-leakage-lab/internal/dataset"
)

// assignIdentity sets transaction and merchant identifiers.
//
// Transaction ids are sequential and carry no randomness. Merchant ids
// come from a fixed pool whose popularity follows a power-law: the
// weights are drawn once, then every row samples a merchant from them,
// concentrating volume on a small subset of merchants.
func (g *Generator) assignIdentity(d *dataset.Dataset) {
	popularity := g.sampler.PowerWeights(g.cfg.MerchantCount, g.cfg.MerchantAlpha)
	merchantIdx := g.sampler.Categorical(g.cfg.N, popularity)

	for i := 0; i < g.cfg.N; i++ {
		d.TransactionIDs[i] = fmt.Sprintf("TXN_%07d", i)
		d.MerchantIDs[i] = fmt.Sprintf("MID_%05d", merchantIdx[i])
	}
}
