package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// PoolMeta captures optional pool metadata carried alongside a snapshot.
// All fields may be empty; present addresses must be valid hex addresses.
type PoolMeta struct {
	ChainID     uint64 `json:"chain_id,omitempty"`
	Address     string `json:"address,omitempty"`
	Token0      string `json:"token0,omitempty"`
	Token1      string `json:"token1,omitempty"`
	Fee         uint32 `json:"fee,omitempty"`
	TickSpacing int32  `json:"tick_spacing,omitempty"`
}

// Validate checks that any populated address field is a valid hex address.
func (m PoolMeta) Validate() error {
	for _, addr := range []string{m.Address, m.Token0, m.Token1} {
		if addr == "" {
			continue
		}
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid address: %s", addr)
		}
	}
	return nil
}
