package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPoolDayDataJSONFieldNames(t *testing.T) {
	day := PoolDayData{
		Date:      1700006400,
		Close:     "0.000512",
		VolumeUSD: "123456789.12",
	}

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if _, ok := decoded["close"].(string); !ok {
		t.Fatalf("close should be string")
	}
	if _, ok := decoded["volumeUSD"].(string); !ok {
		t.Fatalf("volumeUSD should be string")
	}
}

func TestPoolTickJSONRoundTrip(t *testing.T) {
	original := PoolTick{
		TickIdx:      -887270,
		LiquidityNet: "-29651014881301328537",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PoolTick
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestPositionReportJSONRoundTrip(t *testing.T) {
	original := PositionReport{
		ChainID:          1,
		PoolAddress:      "0x8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
		CurrentPrice:     0.0005,
		PriceLower:       0.00045,
		PriceUpper:       0.00055,
		TickLower:        -201364,
		TickUpper:        -199345,
		DepositUSD:       10000,
		Amount0:          2.5,
		Amount1:          5000,
		LiquidityDelta:   8.7e14,
		PoolLiquidity:    2.1e18,
		VolumeWindowDays: 7,
		VolumeAvgUSD:     25000000,
		FeePerDayUSD:     31.1,
		FeeAPR:           1.13,
		GeneratedAt:      "2024-01-01T00:00:00Z",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded PositionReport
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestPoolMetaValidate(t *testing.T) {
	meta := PoolMeta{
		ChainID: 1,
		Address: "0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8",
		Token0:  "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
		Token1:  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
	}
	if err := meta.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta.Token1 = "not-an-address"
	if err := meta.Validate(); err == nil {
		t.Fatalf("expected error for invalid address")
	}

	if err := (PoolMeta{}).Validate(); err != nil {
		t.Fatalf("empty meta should validate: %v", err)
	}
}
