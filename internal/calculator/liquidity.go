package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LiquidityForAmount0 returns the liquidity implied by a pure token0 deposit
// across [sqrtA, sqrtB]: amount0 * (sqrtB*sqrtA/Q96) / (sqrtB-sqrtA).
// Bounds and amount are Q96 sqrt-prices and a raw expanded amount.
func (c *Calculator) LiquidityForAmount0(sqrtA, sqrtB, amount0 decimal.Decimal) (decimal.Decimal, error) {
	if sqrtB.Equal(sqrtA) {
		return decimal.Decimal{}, fmt.Errorf("%w: sqrt price bounds are equal", ErrDegenerateRange)
	}
	intermediate := mulDiv(sqrtB, sqrtA, q96)
	return mulDiv(amount0, intermediate, sqrtB.Sub(sqrtA)), nil
}

// LiquidityForAmount1 returns the liquidity implied by a pure token1 deposit
// across [sqrtA, sqrtB]: amount1 * Q96 / (sqrtB-sqrtA).
func (c *Calculator) LiquidityForAmount1(sqrtA, sqrtB, amount1 decimal.Decimal) (decimal.Decimal, error) {
	if sqrtB.Equal(sqrtA) {
		return decimal.Decimal{}, fmt.Errorf("%w: sqrt price bounds are equal", ErrDegenerateRange)
	}
	return mulDiv(amount1, q96, sqrtB.Sub(sqrtA)), nil
}

// PositionLiquidity computes the deltaL of a two-sided deposit over the range
// [priceLower, priceUpper] at currentPrice. The applicable formula depends on
// where the current price sits:
//
//   - at or below the range: only token0 matters
//   - at or above the range: only token1 matters
//   - inside the range: both legs are computed against the current price and
//     the smaller one is binding
//
// amount0 is expanded by the token1 precision and amount1 by the token0
// precision, mirroring the pool contract's internal accounting.
func (c *Calculator) PositionLiquidity(amount0, amount1, priceLower, priceUpper, currentPrice float64) (float64, error) {
	if priceLower == priceUpper {
		return 0, fmt.Errorf("%w: price bounds are equal", ErrDegenerateRange)
	}
	if priceLower > priceUpper {
		return 0, fmt.Errorf("%w: price lower %v above upper %v", ErrInvalidInput, priceLower, priceUpper)
	}

	amt0 := expandDecimals(decimal.NewFromFloat(amount0), c.token1Decimals)
	amt1 := expandDecimals(decimal.NewFromFloat(amount1), c.token0Decimals)

	sqrtP, err := c.SqrtPriceX96(currentPrice)
	if err != nil {
		return 0, err
	}
	sqrtA, err := c.SqrtPriceX96(priceLower)
	if err != nil {
		return 0, err
	}
	sqrtB, err := c.SqrtPriceX96(priceUpper)
	if err != nil {
		return 0, err
	}

	var liquidity decimal.Decimal
	switch {
	case sqrtP.LessThanOrEqual(sqrtA):
		liquidity, err = c.LiquidityForAmount0(sqrtA, sqrtB, amt0)
	case sqrtP.LessThan(sqrtB):
		var liquidity0, liquidity1 decimal.Decimal
		liquidity0, err = c.LiquidityForAmount0(sqrtP, sqrtB, amt0)
		if err != nil {
			return 0, err
		}
		liquidity1, err = c.LiquidityForAmount1(sqrtA, sqrtP, amt1)
		if err != nil {
			return 0, err
		}
		liquidity = decimal.Min(liquidity0, liquidity1)
	default:
		liquidity, err = c.LiquidityForAmount1(sqrtA, sqrtB, amt1)
	}
	if err != nil {
		return 0, err
	}

	result, _ := liquidity.Float64()
	c.logger.Info("position liquidity computed", zap.String("delta_l", fmt.Sprintf("%.2e", result)))
	return result, nil
}
