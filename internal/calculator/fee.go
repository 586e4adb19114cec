package calculator

import "fmt"

// EstimateFee approximates the daily fee income of a position contributing
// liquidityDelta on top of the pool's existing liquidity, as its pro-rata
// share of feeTier * volume24h.
func (c *Calculator) EstimateFee(liquidityDelta, liquidity, volume24h float64) (float64, error) {
	total := liquidity + liquidityDelta
	if total <= 0 {
		return 0, fmt.Errorf("%w: total liquidity %v must be positive", ErrDegenerateRange, total)
	}
	liquidityPercentage := liquidityDelta / total
	return c.feeTier * volume24h * liquidityPercentage, nil
}
