package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"goinventory/config"
	"goinventory/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("migrate: configuração inválida: %v", err)
	}

	var driver, dsn, migrationsDir string
	flag.StringVar(&driver, "driver", cfg.StorageDriver, "sqlite ou postgres")
	flag.StringVar(&dsn, "dsn", cfg.StorageDSN, "caminho do SQLite ou URL do PostgreSQL")
	flag.StringVar(&migrationsDir, "dir", cfg.MigrationsDir, "diretório com as migrações (vazio: embutidas)")
	flag.Parse()

	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	ctx := context.Background()
	db, dialect, err := openDB(ctx, driver, dsn)
	if err != nil {
		log.Fatalf("migrate: falha ao conectar: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("migrate: falha ao fechar conexão: %v", err)
		}
	}()

	var fsys fs.FS = database.Migrations()
	if migrationsDir != "" {
		fsys = os.DirFS(migrationsDir)
	}
	provider, err := database.NewMigrationProvider(db, dialect, fsys)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Println(r)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Println(result)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-10s %s\n", s.State, s.Source.Path)
		}
	default:
		log.Fatalf("migrate: comando desconhecido %q (use up, down ou status)", command)
	}

	fmt.Printf("migrate %s success\n", command)
}

func openDB(ctx context.Context, driver, dsn string) (*sql.DB, string, error) {
	switch driver {
	case config.DriverPostgres:
		db, err := database.NewPostgresDB(ctx, dsn)
		return db, database.DialectPostgres, err
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, dsn)
		return db, database.DialectSQLite, err
	default:
		return nil, "", fmt.Errorf("driver %q não usa migrações SQL", driver)
	}
}
