// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type txContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// txHolder carries transaction state through a context. The transaction is
// created lazily on first statement so read-only paths never open one.
type txHolder struct {
	db        *sql.DB
	tx        TxInterface
	committed bool
	cancel    context.CancelFunc
}

func (h *txHolder) get() (TxInterface, error) {
	if h.tx != nil {
		return h.tx, nil
	}

	// Detached from the request context so a canceled request cannot abort a
	// half-applied commit; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := h.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	h.tx = tx
	h.cancel = cancel
	return tx, nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the pool, or to the pending
// transaction when the context carries one.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if holder := txFromContext(ctx); holder != nil {
		tx, err := holder.get()
		if err != nil {
			d.logger.Errorf("failed to begin transaction lazily: %v", err)
		} else {
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
		}
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.db)
}

func txFromContext(ctx context.Context) *txHolder {
	if holder, ok := ctx.Value(txContextKey{}).(*txHolder); ok {
		return holder
	}
	return nil
}

// WithTx runs fn within a single transaction. Statements issued through
// Statement on the derived context join the transaction. If fn returns an
// error the transaction is rolled back, otherwise committed. If fn never
// touched the database no transaction is opened at all.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	holder := &txHolder{db: d.db}
	txCtx := context.WithValue(ctx, txContextKey{}, holder)

	defer func() {
		if holder.tx != nil && !holder.committed {
			if err := holder.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if holder.cancel != nil {
			holder.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if holder.tx != nil {
		if err := holder.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		holder.committed = true
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx uses the global TracerProvider, same as our tracer
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
