package model

// PositionReport is the output record of one position sizing run.
type PositionReport struct {
	ChainID          uint64  `json:"chain_id,omitempty"`
	PoolAddress      string  `json:"pool_address,omitempty"`
	CurrentPrice     float64 `json:"current_price"`
	PriceLower       float64 `json:"price_lower"`
	PriceUpper       float64 `json:"price_upper"`
	TickLower        int64   `json:"tick_lower"`
	TickUpper        int64   `json:"tick_upper"`
	DepositUSD       float64 `json:"deposit_usd"`
	Amount0          float64 `json:"amount0"`
	Amount1          float64 `json:"amount1"`
	LiquidityDelta   float64 `json:"liquidity_delta"`
	PoolLiquidity    float64 `json:"pool_liquidity"`
	VolumeWindowDays int     `json:"volume_window_days"`
	VolumeAvgUSD     float64 `json:"volume_avg_usd"`
	FeePerDayUSD     float64 `json:"fee_per_day_usd"`
	FeeAPR           float64 `json:"fee_apr"`
	GeneratedAt      string  `json:"generated_at"`
}
