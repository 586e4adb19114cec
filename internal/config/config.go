package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Snapshot         string
	DayData          string
	TickData         string
	FeeTier          float64
	Token0Decimals   int32
	Token1Decimals   int32
	Toggled          bool
	PriceLower       float64
	PriceUpper       float64
	PriceUSDX        float64
	PriceUSDY        float64
	DepositUSD       float64
	VolumeWindowDays int
	Out              string
	PGDSN            string
	LogLevel         string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POSCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("volume-window", 7)
	v.SetDefault("out", "./data/reports.jsonl")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Snapshot:         v.GetString("snapshot"),
		DayData:          v.GetString("day-data"),
		TickData:         v.GetString("tick-data"),
		FeeTier:          v.GetFloat64("fee-tier"),
		Token0Decimals:   v.GetInt32("token0-decimals"),
		Token1Decimals:   v.GetInt32("token1-decimals"),
		Toggled:          v.GetBool("toggled"),
		PriceLower:       v.GetFloat64("price-lower"),
		PriceUpper:       v.GetFloat64("price-upper"),
		PriceUSDX:        v.GetFloat64("price-usd-x"),
		PriceUSDY:        v.GetFloat64("price-usd-y"),
		DepositUSD:       v.GetFloat64("deposit-usd"),
		VolumeWindowDays: v.GetInt("volume-window"),
		Out:              v.GetString("out"),
		PGDSN:            v.GetString("pg-dsn"),
		LogLevel:         v.GetString("log-level"),
	}

	return cfg, nil
}
