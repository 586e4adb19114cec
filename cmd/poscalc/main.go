package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"positionScope/internal/analysis"
	"positionScope/internal/calculator"
	"positionScope/internal/config"
	"positionScope/internal/model"
	"positionScope/internal/storage"
	"positionScope/internal/storage/postgres"
)

func main() {
	root := &cobra.Command{
		Use:          "poscalc",
		Short:        "Uniswap V3 position calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Size a position for a USD deposit and project its fee income",
		RunE:  runEstimate,
	}

	estimateCmd.Flags().String("snapshot", "", "pool snapshot JSON path (pool meta + days + ticks)")
	estimateCmd.Flags().String("day-data", "", "day data JSONL path (alternative to --snapshot)")
	estimateCmd.Flags().String("tick-data", "", "tick data JSONL path (alternative to --snapshot)")
	estimateCmd.Flags().Float64("fee-tier", 0, "pool fee tier as a fraction, e.g. 0.003")
	estimateCmd.Flags().Int32("token0-decimals", 0, "token0 decimal precision")
	estimateCmd.Flags().Int32("token1-decimals", 0, "token1 decimal precision")
	estimateCmd.Flags().Bool("toggled", false, "swap the conventional token0/token1 reading of the pair")
	estimateCmd.Flags().Float64("price-lower", 0, "range lower bound (human price)")
	estimateCmd.Flags().Float64("price-upper", 0, "range upper bound (human price)")
	estimateCmd.Flags().Float64("price-usd-x", 0, "USD unit price of the x leg")
	estimateCmd.Flags().Float64("price-usd-y", 0, "USD unit price of the y leg")
	estimateCmd.Flags().Float64("deposit-usd", 0, "deposit target in USD")
	estimateCmd.Flags().Int("volume-window", 7, "trailing days for the volume average")
	estimateCmd.Flags().String("out", "./data/reports.jsonl", "report output JSONL path, empty to skip")
	estimateCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for report persistence")
	estimateCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(estimateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	snapshot, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	pairCfg := model.PairConfig{
		FeeTier:        cfg.FeeTier,
		Token0Decimals: cfg.Token0Decimals,
		Token1Decimals: cfg.Token1Decimals,
		Toggled:        cfg.Toggled,
	}

	calc, err := calculator.New(snapshot.Days, snapshot.Ticks, pairCfg, logger)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(calc, snapshot.Pool, logger)
	report, err := analyzer.Estimate(analysis.Params{
		PriceLower:       cfg.PriceLower,
		PriceUpper:       cfg.PriceUpper,
		PriceUSDX:        cfg.PriceUSDX,
		PriceUSDY:        cfg.PriceUSDY,
		DepositUSD:       cfg.DepositUSD,
		VolumeWindowDays: cfg.VolumeWindowDays,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []storage.ReportSink
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlSink(cfg.Out))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	for _, sink := range sinks {
		if err := sink.PutReports(ctx, []model.PositionReport{report}); err != nil {
			return fmt.Errorf("persist report: %w", err)
		}
	}

	return nil
}

func loadInputs(cfg config.Config) (storage.PoolSnapshot, error) {
	if cfg.Snapshot != "" {
		return storage.LoadSnapshot(cfg.Snapshot)
	}
	if cfg.DayData == "" || cfg.TickData == "" {
		return storage.PoolSnapshot{}, fmt.Errorf("either --snapshot or both --day-data and --tick-data are required")
	}

	days, err := storage.LoadDayData(cfg.DayData)
	if err != nil {
		return storage.PoolSnapshot{}, err
	}
	ticks, err := storage.LoadTicks(cfg.TickData)
	if err != nil {
		return storage.PoolSnapshot{}, err
	}
	return storage.PoolSnapshot{Days: days, Ticks: ticks}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
