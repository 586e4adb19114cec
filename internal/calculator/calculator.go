package calculator

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"positionScope/internal/model"
)

// Calculator computes Uniswap V3 position metrics against a frozen snapshot
// of pool day data and tick data. All methods are pure reads after New, so a
// single instance is safe for concurrent use.
type Calculator struct {
	days           []dayRecord
	ticks          []tickRecord
	feeTier        float64
	token0Decimals int32
	token1Decimals int32
	toggled        bool
	current        float64
	logger         *zap.Logger
}

type dayRecord struct {
	date      int64
	close     float64
	volumeUSD float64
}

type tickRecord struct {
	idx          int64
	liquidityNet float64
}

// New builds a Calculator from caller-supplied snapshots. Both snapshots are
// copied and parsed up front; the tick copy is sorted ascending by tick index
// and the caller's slices are left untouched. When cfg.Toggled is set the two
// decimal precisions are swapped here, once.
//
// Day data must be ordered most-recent-first; the current price is read from
// record 0.
func New(days []model.PoolDayData, ticks []model.PoolTick, cfg model.PairConfig, logger *zap.Logger) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: day data is empty", ErrInvalidInput)
	}
	if cfg.FeeTier <= 0 || cfg.FeeTier >= 1 {
		return nil, fmt.Errorf("%w: fee tier %v outside (0,1)", ErrInvalidInput, cfg.FeeTier)
	}
	if cfg.Token0Decimals < 0 || cfg.Token1Decimals < 0 {
		return nil, fmt.Errorf("%w: negative token decimals", ErrInvalidInput)
	}

	token0Decimals, token1Decimals := cfg.Token0Decimals, cfg.Token1Decimals
	if cfg.Toggled {
		token0Decimals, token1Decimals = token1Decimals, token0Decimals
	}

	c := &Calculator{
		days:           make([]dayRecord, 0, len(days)),
		ticks:          make([]tickRecord, 0, len(ticks)),
		feeTier:        cfg.FeeTier,
		token0Decimals: token0Decimals,
		token1Decimals: token1Decimals,
		toggled:        cfg.Toggled,
		logger:         logger,
	}

	for i, day := range days {
		closePrice, err := parseNumeric(day.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d close: %v", ErrInvalidInput, i, err)
		}
		volume, err := parseNumeric(day.VolumeUSD)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d volumeUSD: %v", ErrInvalidInput, i, err)
		}
		c.days = append(c.days, dayRecord{date: day.Date, close: closePrice, volumeUSD: volume})
	}

	for i, tick := range ticks {
		net, err := parseNumeric(tick.LiquidityNet)
		if err != nil {
			return nil, fmt.Errorf("%w: tick %d liquidityNet: %v", ErrInvalidInput, i, err)
		}
		c.ticks = append(c.ticks, tickRecord{idx: tick.TickIdx, liquidityNet: net})
	}

	sort.Slice(c.ticks, func(i, j int) bool { return c.ticks[i].idx < c.ticks[j].idx })

	c.current = c.days[0].close
	if c.current <= 0 {
		return nil, fmt.Errorf("%w: current price %v must be positive", ErrInvalidInput, c.current)
	}

	logger.Info("pool snapshot loaded",
		zap.Float64("price_token0_token1", c.current),
		zap.Float64("price_token1_token0", 1/c.current),
		zap.Int("days", len(c.days)),
		zap.Int("ticks", len(c.ticks)),
		zap.Bool("toggled", cfg.Toggled),
	)

	return c, nil
}

// CurrentPrice returns the close price of the most recent day record.
func (c *Calculator) CurrentPrice() float64 {
	return c.current
}

// FeeTier returns the pool's fractional fee tier.
func (c *Calculator) FeeTier() float64 {
	return c.feeTier
}

func parseNumeric(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings, which would otherwise
	// slip through the domain checks and poison every downstream result.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
