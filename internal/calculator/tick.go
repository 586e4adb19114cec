package calculator

import (
	"fmt"
	"math"
)

// TickFromPrice converts a human-readable price into the nearest protocol
// tick. The pool's internal price convention is the reciprocal of the
// human-facing one, so the price is inverted before the log conversion. The
// result is truncated, not rounded, and negated for toggled pairs.
//
// This path uses float64 arithmetic; precision beyond the integer tick is
// discarded anyway.
func (c *Calculator) TickFromPrice(price float64) (int64, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price %v must be positive and finite", ErrInvalidInput, price)
	}

	poolPrice := 1 / price
	token0 := poolPrice * math.Pow(10, float64(c.token0Decimals))
	token1 := math.Pow(10, float64(c.token1Decimals))

	sqrtPriceToken0 := math.Sqrt(token0) * q96Float
	sqrtPriceToken1 := math.Sqrt(token1) * q96Float

	tick := math.Log(sqrtPriceToken1/sqrtPriceToken0) / math.Log(math.Sqrt(1.0001))
	if c.toggled {
		tick = -tick
	}
	return int64(tick), nil
}

// LiquidityAtTick reconstructs the active liquidity at a tick by accumulating
// net-liquidity deltas over the ascending-sorted tick list until the interval
// containing the query tick is reached.
//
// With fewer than two ticks the walk never runs and the result is 0; callers
// treat that as "no liquidity data".
func (c *Calculator) LiquidityAtTick(tick int64) float64 {
	var liquidity float64
	for i := 0; i < len(c.ticks)-1; i++ {
		liquidity += c.ticks[i].liquidityNet

		lowerTick := c.ticks[i].idx
		upperTick := c.ticks[i+1].idx
		if lowerTick <= tick && tick <= upperTick {
			break
		}
	}
	return liquidity
}
