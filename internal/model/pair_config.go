package model

// PairConfig holds the scalar configuration for a token pair.
//
// FeeTier is fractional (0.003 for a 0.3% pool). Toggled flips the
// conventional token0/token1 reading of the pair: decimal precisions are
// swapped at calculator construction and tick signs are mirrored.
type PairConfig struct {
	FeeTier        float64 `json:"fee_tier"`
	Token0Decimals int32   `json:"token0_decimals"`
	Token1Decimals int32   `json:"token1_decimals"`
	Toggled        bool    `json:"toggled,omitempty"`
}
