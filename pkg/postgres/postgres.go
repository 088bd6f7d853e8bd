package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	_defaultMaxPoolSize  = 2
	_defaultConnAttempts = 10
	_defaultConnTimeout  = 5 * time.Second
)

// Postgres wraps a pgxpool with retrying bring-up, so the service tolerates
// the database coming online after it does.
type Postgres struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Pool *pgxpool.Pool
}

func New(dsn string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(pg)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}

	cfg.MaxConns = int32(pg.maxPoolSize)

	for attempt := 1; ; attempt++ {
		pg.Pool, err = pgxpool.NewWithConfig(context.Background(), cfg)
		if err == nil {
			return pg, nil
		}

		if attempt >= pg.connAttempts {
			break
		}

		log.Infof("postgres: connect attempt %d/%d failed, retrying", attempt, pg.connAttempts)
		time.Sleep(pg.connTimeout)
	}

	return nil, fmt.Errorf("postgres: connect: %w", err)
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}

	return nil
}
