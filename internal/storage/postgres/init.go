package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"saheli/internal/config"
	"saheli/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewStore.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewStore.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewStore.Ping", err)
	}
	logger.Info("connected to Postgres", slog.String("db", cfg.Postgres.Database))

	s := &Store{Pool: pool, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewStore.initSchema", err)
	}
	return s, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}
