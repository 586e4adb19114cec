package calculator

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const q96Shift = 96

// quotePrecision is the digit count kept through decimal divisions. Division
// is the only lossy decimal operation; 48 digits is far beyond what survives
// the final float64 conversion.
const quotePrecision = 48

var (
	q96      = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), q96Shift), 0)
	q96Float = math.Pow(2, q96Shift)
)

// expandDecimals scales a token quantity to its raw integer representation.
func expandDecimals(n decimal.Decimal, exp int32) decimal.Decimal {
	return n.Shift(exp)
}

// mulDiv computes a*b/denom without intermediate truncation.
func mulDiv(a, b, denom decimal.Decimal) decimal.Decimal {
	return a.Mul(b).DivRound(denom, quotePrecision)
}

// SqrtPriceX96 converts a human-readable price (token0 quoted in token1) into
// the pool's Q96 square-root price. The price is expanded by the token0
// precision against 1 expanded by the token1 precision, and the square root of
// the ratio is taken exactly before scaling by 2^96.
func (c *Calculator) SqrtPriceX96(price float64) (decimal.Decimal, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: price %v must be positive and finite", ErrInvalidInput, price)
	}
	ratio := expandDecimals(decimal.NewFromFloat(price), c.token0Decimals-c.token1Decimals)
	return sqrtRatioX96(ratio), nil
}

// sqrtRatioX96 returns sqrt(ratio) * 2^96 for a positive ratio.
//
// With ratio = num/den, sqrt(ratio)*2^96 == sqrt(num*den*2^192)/den. The inner
// value is a plain integer, so big.Int.Sqrt gives the root exactly; its unit
// truncation is below 2^-96 of the result.
func sqrtRatioX96(ratio decimal.Decimal) decimal.Decimal {
	rat := ratio.Rat()
	n := new(big.Int).Mul(rat.Num(), rat.Denom())
	n.Lsh(n, 2*q96Shift)
	root := new(big.Int).Sqrt(n)
	return decimal.NewFromBigInt(root, 0).DivRound(decimal.NewFromBigInt(rat.Denom(), 0), quotePrecision)
}
