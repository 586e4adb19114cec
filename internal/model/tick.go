package model

// PoolTick is one initialized tick with its signed net-liquidity delta.
// LiquidityNet is a signed decimal string; tick sets may arrive in any order.
type PoolTick struct {
	TickIdx      int64  `json:"tickIdx"`
	LiquidityNet string `json:"liquidityNet"`
}
