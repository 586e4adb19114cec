package calculator

import (
	"errors"
	"math"
	"testing"

	"positionScope/internal/model"
)

func testDays() []model.PoolDayData {
	return []model.PoolDayData{
		{Date: 1700179200, Close: "2000", VolumeUSD: "25000000"},
		{Date: 1700092800, Close: "1980", VolumeUSD: "31000000"},
		{Date: 1700006400, Close: "1950", VolumeUSD: "19000000"},
	}
}

func testTicks() []model.PoolTick {
	return []model.PoolTick{
		{TickIdx: 100, LiquidityNet: "-5"},
		{TickIdx: -100, LiquidityNet: "10"},
		{TickIdx: 0, LiquidityNet: "20"},
	}
}

func testConfig() model.PairConfig {
	return model.PairConfig{
		FeeTier:        0.003,
		Token0Decimals: 18,
		Token1Decimals: 6,
	}
}

func newTestCalculator(t *testing.T, cfg model.PairConfig) *Calculator {
	t.Helper()
	calc, err := New(testDays(), testTicks(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return calc
}

func TestNewReadsCurrentPrice(t *testing.T) {
	calc := newTestCalculator(t, testConfig())
	if calc.CurrentPrice() != 2000 {
		t.Fatalf("current price mismatch: %v", calc.CurrentPrice())
	}
	if calc.FeeTier() != 0.003 {
		t.Fatalf("fee tier mismatch: %v", calc.FeeTier())
	}
}

func TestNewLeavesCallerSlicesUntouched(t *testing.T) {
	ticks := testTicks()
	if _, err := New(testDays(), ticks, testConfig(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticks[0].TickIdx != 100 || ticks[1].TickIdx != -100 {
		t.Fatalf("caller tick slice was reordered: %+v", ticks)
	}
}

func TestNewToggleSwapsDecimals(t *testing.T) {
	cfg := testConfig()
	cfg.Toggled = true
	calc := newTestCalculator(t, cfg)
	if calc.token0Decimals != 6 || calc.token1Decimals != 18 {
		t.Fatalf("decimals not swapped: %d/%d", calc.token0Decimals, calc.token1Decimals)
	}
}

func TestNewInvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		days  []model.PoolDayData
		ticks []model.PoolTick
		cfg   model.PairConfig
	}{
		{"empty day data", nil, testTicks(), testConfig()},
		{"fee tier zero", testDays(), testTicks(), model.PairConfig{FeeTier: 0, Token0Decimals: 18, Token1Decimals: 6}},
		{"fee tier one", testDays(), testTicks(), model.PairConfig{FeeTier: 1, Token0Decimals: 18, Token1Decimals: 6}},
		{"negative decimals", testDays(), testTicks(), model.PairConfig{FeeTier: 0.003, Token0Decimals: -1, Token1Decimals: 6}},
		{"malformed close", []model.PoolDayData{{Close: "abc", VolumeUSD: "1"}}, testTicks(), testConfig()},
		{"malformed volume", []model.PoolDayData{{Close: "2000", VolumeUSD: "n/a"}}, testTicks(), testConfig()},
		{"malformed liquidity net", testDays(), []model.PoolTick{{TickIdx: 0, LiquidityNet: "??"}}, testConfig()},
		{"zero close", []model.PoolDayData{{Close: "0", VolumeUSD: "1"}}, testTicks(), testConfig()},
		{"nan close", []model.PoolDayData{{Close: "NaN", VolumeUSD: "1"}}, testTicks(), testConfig()},
		{"infinite volume", []model.PoolDayData{{Close: "2000", VolumeUSD: "+Inf"}}, testTicks(), testConfig()},
		{"infinite liquidity net", testDays(), []model.PoolTick{{TickIdx: 0, LiquidityNet: "-Inf"}}, testConfig()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.days, tc.ticks, tc.cfg, nil)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

// closeEnough reports whether got is within rel relative tolerance of want.
func closeEnough(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) <= rel
	}
	return math.Abs(got-want) <= rel*math.Abs(want)
}
