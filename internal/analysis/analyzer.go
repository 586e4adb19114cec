package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"positionScope/internal/calculator"
	"positionScope/internal/model"
)

const daysPerYear = 365

// Params describes one position sizing request.
type Params struct {
	PriceLower       float64
	PriceUpper       float64
	PriceUSDX        float64
	PriceUSDY        float64
	DepositUSD       float64
	VolumeWindowDays int
}

// Analyzer ties a calculator to pool metadata and produces position reports.
type Analyzer struct {
	calc   *calculator.Calculator
	meta   model.PoolMeta
	logger *zap.Logger
}

func NewAnalyzer(calc *calculator.Calculator, meta model.PoolMeta, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{calc: calc, meta: meta, logger: logger}
}

// Estimate sizes a position for the deposit target and projects its fee
// income from the trailing volume average and the pool's active liquidity at
// the current tick. The fee APR annualizes the daily estimate against the
// deposit.
func (a *Analyzer) Estimate(params Params) (model.PositionReport, error) {
	if params.DepositUSD <= 0 {
		return model.PositionReport{}, fmt.Errorf("%w: deposit %v must be positive", calculator.ErrInvalidInput, params.DepositUSD)
	}
	window := params.VolumeWindowDays
	if window == 0 {
		window = calculator.DefaultVolumeWindowDays
	}

	current := a.calc.CurrentPrice()

	split, err := a.calc.TokensFromDeposit(current, params.PriceLower, params.PriceUpper,
		params.PriceUSDX, params.PriceUSDY, params.DepositUSD)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("split deposit: %w", err)
	}

	liquidityDelta, err := a.calc.PositionLiquidity(split.AmountX, split.AmountY,
		params.PriceLower, params.PriceUpper, current)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("position liquidity: %w", err)
	}

	currentTick, err := a.calc.TickFromPrice(current)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("current tick: %w", err)
	}
	tickLower, err := a.calc.TickFromPrice(params.PriceLower)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("lower tick: %w", err)
	}
	tickUpper, err := a.calc.TickFromPrice(params.PriceUpper)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("upper tick: %w", err)
	}

	poolLiquidity := a.calc.LiquidityAtTick(currentTick)

	volume, err := a.calc.VolumeAvg(window)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("volume average: %w", err)
	}

	feePerDay, err := a.calc.EstimateFee(liquidityDelta, poolLiquidity, volume)
	if err != nil {
		return model.PositionReport{}, fmt.Errorf("estimate fee: %w", err)
	}

	report := model.PositionReport{
		ChainID:          a.meta.ChainID,
		PoolAddress:      a.meta.Address,
		CurrentPrice:     current,
		PriceLower:       params.PriceLower,
		PriceUpper:       params.PriceUpper,
		TickLower:        tickLower,
		TickUpper:        tickUpper,
		DepositUSD:       params.DepositUSD,
		Amount0:          split.AmountX,
		Amount1:          split.AmountY,
		LiquidityDelta:   liquidityDelta,
		PoolLiquidity:    poolLiquidity,
		VolumeWindowDays: window,
		VolumeAvgUSD:     volume,
		FeePerDayUSD:     feePerDay,
		FeeAPR:           feePerDay * daysPerYear / params.DepositUSD,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	a.logger.Info("position estimate",
		zap.String("pool", a.meta.Address),
		zap.Float64("deposit_usd", params.DepositUSD),
		zap.Float64("amount0", report.Amount0),
		zap.Float64("amount1", report.Amount1),
		zap.Float64("fee_per_day_usd", report.FeePerDayUSD),
		zap.Float64("fee_apr", report.FeeAPR),
	)

	return report, nil
}
