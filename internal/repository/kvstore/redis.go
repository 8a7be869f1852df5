package kvstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisBackend grava as chaves no Redis sob um prefixo de namespace.
type RedisBackend struct {
	rdb     *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisBackend cria o backend sobre um cliente já conectado.
func NewRedisBackend(rdb *redis.Client, prefix string, timeout time.Duration) *RedisBackend {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RedisBackend{rdb: rdb, prefix: prefix, timeout: timeout}
}

func (b *RedisBackend) key(k string) string {
	return b.prefix + k
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	val, err := b.rdb.Get(ctxTimeout, b.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, b.wrap("falha ao ler chave "+key, err)
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if err := b.rdb.Set(ctxTimeout, b.key(key), value, 0).Err(); err != nil {
		return b.wrap("falha ao gravar chave "+key, err)
	}
	return nil
}

// SetMany grava todas as chaves num bloco MULTI/EXEC.
func (b *RedisBackend) SetMany(ctx context.Context, values map[string]string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	_, err := b.rdb.TxPipelined(ctxTimeout, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctxTimeout, b.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return b.wrap("falha ao gravar transação", err)
	}
	return nil
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	if err := b.rdb.Ping(ctxTimeout).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}

// wrap trata qualquer erro de rede do cliente como indisponibilidade.
func (b *RedisBackend) wrap(msg string, err error) error {
	var netErr net.Error
	if errors.Is(err, redis.ErrClosed) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
