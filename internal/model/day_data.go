package model

// PoolDayData is one daily pool record as exported by subgraph-style tooling.
// Numeric fields are strings on the wire and parsed downstream.
//
// Collections of PoolDayData are ordered most-recent-first: index 0 is the
// latest day. Nothing in the record carries a full timestamp, so this ordering
// is a precondition on the caller, not something that can be validated here.
type PoolDayData struct {
	Date      int64  `json:"date,omitempty"`
	Close     string `json:"close"`
	VolumeUSD string `json:"volumeUSD"`
}
