package ledger

import "math"

// Settlement is the gross/commission/net split of one sub-order sale.
type Settlement struct {
	Gross      float64
	Commission float64
	Net        float64
}

// ComputeSettlement splits a subtotal at the given commission rate, rounding
// each figure half-up to 2 decimal places. Net is rounded from the unrounded
// difference, so Net may differ from Gross-Commission by 0.01 in edge cases.
// That matches the historical settlement records and must not change.
func ComputeSettlement(subtotal, commissionRate float64) Settlement {
	commission := subtotal * commissionRate
	return Settlement{
		Gross:      Round2(subtotal),
		Commission: Round2(commission),
		Net:        Round2(subtotal - commission),
	}
}

// Round2 rounds half-up to 2 decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
