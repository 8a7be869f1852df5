package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Dialetos suportados pelo armazenamento SQL.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Migrations devolve o FS com os arquivos de migração embutidos.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		// O diretório é embutido em tempo de compilação.
		panic(err)
	}
	return sub
}

// Migrate aplica todas as migrações pendentes no banco.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := NewMigrationProvider(db, dialect, Migrations())
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("falha ao aplicar migrações: %w", err)
	}
	return nil
}

// NewMigrationProvider cria o provider do goose para o dialeto informado.
// fsys permite apontar para um diretório externo (cmd/migrate -dir).
func NewMigrationProvider(db *sql.DB, dialect string, fsys fs.FS) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("dialeto de migração não suportado: %q", dialect)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar provider de migração: %w", err)
	}
	return provider, nil
}
