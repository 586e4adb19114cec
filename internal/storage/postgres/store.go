package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"positionScope/internal/model"
	"positionScope/internal/storage"
)

// Store provides Postgres persistence for position reports.
type Store struct {
	pool *pgxpool.Pool
}

var _ storage.ReportSink = (*Store)(nil)

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutReports appends position reports.
func (s *Store) PutReports(ctx context.Context, reports []model.PositionReport) error {
	if len(reports) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range reports {
		batch.Queue(`
			INSERT INTO position_reports (
				chain_id, pool_address, current_price, price_lower, price_upper,
				tick_lower, tick_upper, deposit_usd, amount0, amount1,
				liquidity_delta, pool_liquidity, volume_window_days, volume_avg_usd,
				fee_per_day_usd, fee_apr, generated_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,now())
		`,
			int64(r.ChainID),
			r.PoolAddress,
			r.CurrentPrice,
			r.PriceLower,
			r.PriceUpper,
			r.TickLower,
			r.TickUpper,
			r.DepositUSD,
			r.Amount0,
			r.Amount1,
			r.LiquidityDelta,
			r.PoolLiquidity,
			r.VolumeWindowDays,
			r.VolumeAvgUSD,
			r.FeePerDayUSD,
			r.FeeAPR,
			r.GeneratedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range reports {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
