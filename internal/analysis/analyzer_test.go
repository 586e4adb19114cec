package analysis

import (
	"errors"
	"testing"

	"positionScope/internal/calculator"
	"positionScope/internal/model"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	days := []model.PoolDayData{
		{Date: 1700179200, Close: "2000", VolumeUSD: "25000000"},
		{Date: 1700092800, Close: "1980", VolumeUSD: "31000000"},
		{Date: 1700006400, Close: "1950", VolumeUSD: "19000000"},
	}
	// Current tick for price 2000 with 18/6 decimals is -200311, inside the
	// first interval below.
	ticks := []model.PoolTick{
		{TickIdx: -250000, LiquidityNet: "8000000000000000000"},
		{TickIdx: -150000, LiquidityNet: "-8000000000000000000"},
	}
	cfg := model.PairConfig{FeeTier: 0.003, Token0Decimals: 18, Token1Decimals: 6}

	calc, err := calculator.New(days, ticks, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	meta := model.PoolMeta{ChainID: 1, Address: "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8"}
	return NewAnalyzer(calc, meta, nil)
}

func TestEstimateProducesConsistentReport(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	report, err := analyzer.Estimate(Params{
		PriceLower: 1800,
		PriceUpper: 2200,
		PriceUSDX:  1.0,
		PriceUSDY:  2000.0,
		DepositUSD: 10000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CurrentPrice != 2000 {
		t.Fatalf("current price mismatch: %v", report.CurrentPrice)
	}
	if report.VolumeWindowDays != calculator.DefaultVolumeWindowDays {
		t.Fatalf("window should default to %d, got %d", calculator.DefaultVolumeWindowDays, report.VolumeWindowDays)
	}
	if want := (25000000.0 + 31000000.0 + 19000000.0) / 3; report.VolumeAvgUSD != want {
		t.Fatalf("volume mismatch: got %v want %v", report.VolumeAvgUSD, want)
	}
	if report.LiquidityDelta <= 0 {
		t.Fatalf("liquidity delta should be positive: %v", report.LiquidityDelta)
	}
	if report.PoolLiquidity != 8e18 {
		t.Fatalf("pool liquidity mismatch: %v", report.PoolLiquidity)
	}
	if report.FeePerDayUSD <= 0 {
		t.Fatalf("fee estimate should be positive: %v", report.FeePerDayUSD)
	}
	if want := report.FeePerDayUSD * 365 / report.DepositUSD; report.FeeAPR != want {
		t.Fatalf("apr mismatch: got %v want %v", report.FeeAPR, want)
	}
	if report.TickLower >= report.TickUpper {
		t.Fatalf("tick bounds out of order: lower %d upper %d", report.TickLower, report.TickUpper)
	}
	if report.PoolAddress == "" || report.GeneratedAt == "" {
		t.Fatalf("report metadata missing: %+v", report)
	}
}

func TestEstimateRejectsBadDeposit(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	_, err := analyzer.Estimate(Params{PriceLower: 1800, PriceUpper: 2200, PriceUSDX: 1, PriceUSDY: 2000})
	if !errors.Is(err, calculator.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
