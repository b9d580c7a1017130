package synth

import "math/rand/v2"

// Column stream identifiers. Each random column draws from its own PCG
// stream keyed (seed, column id), which keeps parallel generation
// deterministic: no column ever consumes another column's draws.
const (
	colCustomerID uint64 = iota + 1
	colCategory
	colPrice
	colQuantity
	colDate
	colPaymentMethod
	colCountry
)

// columnStream wraps the per-column RNG so fill loops don't care which
// source backs it.
type columnStream struct {
	*rand.Rand
}

func stream(seed int64, column uint64) *columnStream {
	return &columnStream{Rand: rand.New(rand.NewPCG(uint64(seed), column))}
}
