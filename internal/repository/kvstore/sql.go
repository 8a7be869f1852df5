package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"goinventory/internal/pkg/database"
)

// SQLBackend grava as chaves na tabela kv_store (criada pelas migrações).
// Funciona com PostgreSQL (lib/pq) e SQLite (modernc).
type SQLBackend struct {
	DB        *sql.DB
	Dialect   string
	DBTimeout time.Duration
}

// NewSQLBackend cria o backend SQL. dbTimeout limita cada operação.
func NewSQLBackend(db *sql.DB, dialect string, dbTimeout time.Duration) *SQLBackend {
	if dbTimeout <= 0 {
		dbTimeout = 5 * time.Second
	}
	return &SQLBackend{DB: db, Dialect: dialect, DBTimeout: dbTimeout}
}

// rebind troca os placeholders "?" por "$n" no PostgreSQL.
func (b *SQLBackend) rebind(query string) string {
	if b.Dialect != database.DialectPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

const upsertSQL = `INSERT INTO kv_store (storage_key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (b *SQLBackend) Get(ctx context.Context, key string) (string, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.DBTimeout)
	defer cancel()

	var value string
	err := b.DB.QueryRowContext(ctxTimeout, b.rebind(`SELECT value FROM kv_store WHERE storage_key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, b.wrap("falha ao ler chave "+key, err)
	}
	return value, true, nil
}

func (b *SQLBackend) Set(ctx context.Context, key, value string) error {
	return b.SetMany(ctx, map[string]string{key: value})
}

// SetMany grava todas as chaves dentro de uma única transação.
func (b *SQLBackend) SetMany(ctx context.Context, values map[string]string) (err error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.DBTimeout)
	defer cancel()

	tx, err := b.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return b.wrap("falha ao iniciar transação", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	// Ordem determinística das chaves para evitar deadlocks entre escritores.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	query := b.rebind(upsertSQL)
	for _, k := range keys {
		if _, err = tx.ExecContext(ctxTimeout, query, k, values[k], now); err != nil {
			return b.wrap("falha ao gravar chave "+k, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return b.wrap("falha ao commitar transação", err)
	}
	return nil
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.DBTimeout)
	defer cancel()
	if err := b.DB.PingContext(ctxTimeout); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	return b.DB.Close()
}

// wrap marca falhas de conexão como ErrUnavailable; demais erros
// são propagados com contexto.
func (b *SQLBackend) wrap(msg string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "unable to open database")
}
