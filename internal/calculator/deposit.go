package calculator

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// DepositSplit is the token breakdown of a USD deposit target.
// AmountX and AmountY are human-readable token quantities.
type DepositSplit struct {
	AmountX   float64
	AmountY   float64
	Liquidity float64
}

// TokensFromDeposit splits a USD deposit target into the two token legs for a
// position over [priceLower, priceUpper] at price p. priceUSDX and priceUSDY
// are the per-unit USD prices of the two legs in pre-toggle order; for a
// toggled pair they are swapped here to realign with the swapped decimals.
//
// This formula works directly in price space with float64 square roots, not
// the Q96 decimal path.
//
// Each leg is clamped independently: a negative USD value drops to zero and a
// USD value above the deposit target is capped at exactly the target. The
// other leg is not recomputed after a clamp, so a clamped split can total less
// than depositUSD.
func (c *Calculator) TokensFromDeposit(p, priceLower, priceUpper, priceUSDX, priceUSDY, depositUSD float64) (DepositSplit, error) {
	for _, price := range []float64{p, priceLower, priceUpper} {
		if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			return DepositSplit{}, fmt.Errorf("%w: prices must be positive and finite", ErrInvalidInput)
		}
	}
	if c.toggled {
		priceUSDX, priceUSDY = priceUSDY, priceUSDX
	}

	sqrtP := math.Sqrt(p)
	sqrtPl := math.Sqrt(priceLower)
	sqrtPu := math.Sqrt(priceUpper)

	denominator := (sqrtP-sqrtPl)*priceUSDY + (1/sqrtP-1/sqrtPu)*priceUSDX
	if denominator == 0 {
		return DepositSplit{}, fmt.Errorf("%w: deposit denominator is zero", ErrDegenerateRange)
	}
	deltaL := depositUSD / denominator

	deltaY := deltaL * (sqrtP - sqrtPl)
	if deltaY*priceUSDY < 0 {
		deltaY = 0
	}
	if deltaY*priceUSDY > depositUSD {
		deltaY = depositUSD / priceUSDY
	}

	deltaX := deltaL * (1/sqrtP - 1/sqrtPu)
	if deltaX*priceUSDX < 0 {
		deltaX = 0
	}
	if deltaX*priceUSDX > depositUSD {
		deltaX = depositUSD / priceUSDX
	}

	c.logger.Debug("deposit split",
		zap.Float64("amount_x", deltaX),
		zap.Float64("amount_y", deltaY),
		zap.Float64("delta_l", deltaL),
	)

	return DepositSplit{AmountX: deltaX, AmountY: deltaY, Liquidity: deltaL}, nil
}
