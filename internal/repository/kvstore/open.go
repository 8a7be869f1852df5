package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"goinventory/internal/pkg/database"
)

// Drivers aceitos em STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Options descreve o backend a ser aberto.
type Options struct {
	Driver      string
	DSN         string // caminho do arquivo SQLite ou URL do PostgreSQL
	RedisClient *redis.Client
	RedisPrefix string
	Timeout     time.Duration
}

// Open cria o backend do driver escolhido. Backends SQL têm as
// migrações aplicadas antes de serem devolvidos.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryBackend(), nil

	case DriverSQLite, "":
		db, err := database.NewSQLiteDB(ctx, opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLBackend(db, database.DialectSQLite, opts.Timeout), nil

	case DriverPostgres:
		db, err := database.NewPostgresDB(ctx, opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLBackend(db, database.DialectPostgres, opts.Timeout), nil

	case DriverRedis:
		if opts.RedisClient == nil {
			return nil, fmt.Errorf("kvstore: driver redis requer um cliente Redis")
		}
		b := NewRedisBackend(opts.RedisClient, opts.RedisPrefix, opts.Timeout)
		if err := b.Ping(ctx); err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("kvstore: driver desconhecido %q", opts.Driver)
}
