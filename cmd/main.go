package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"goinventory/config"
	"goinventory/internal/pkg/cache"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/metrics"

	// Camadas para Injeção de Dependências
	"goinventory/internal/api/category"
	"goinventory/internal/api/inventory"
	"goinventory/internal/api/product"
	"goinventory/internal/api/router"
	"goinventory/internal/api/stock"
	"goinventory/internal/repository/categoryrepo"
	"goinventory/internal/repository/kvstore"
	"goinventory/internal/repository/movementrepo"
	"goinventory/internal/repository/productrepo"
	"goinventory/internal/repository/snapshotrepo"
	"goinventory/internal/service/categoryservice"
	"goinventory/internal/service/inventoryservice"
	"goinventory/internal/service/productservice"
	"goinventory/internal/service/stockservice"
)

func main() {
	// 1. Configuração e Inicialização
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	defer logger.Sync(appLog)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"storage": cfg.StorageDriver, "env": cfg.Environment})

	ctx := context.Background()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Redis (opcional): rate limiter e, com STORAGE_DRIVER=redis, armazenamento.
	var rdb *redis.Client
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.Dial(ctx, cfg.RedisAddr, cfg.StorageTimeout)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		cacheClient = cache.NewRedisClient(rdb, cfg.RedisKeyPrefix)
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	// B. Armazenamento chave/valor
	backend, err := kvstore.Open(ctx, kvstore.Options{
		Driver:      cfg.StorageDriver,
		DSN:         cfg.StorageDSN,
		RedisClient: rdb,
		RedisPrefix: cfg.RedisKeyPrefix,
		Timeout:     cfg.StorageTimeout,
	})
	if err != nil {
		appLog.Fatal("Falha ao abrir o armazenamento.", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			appLog.Error("Falha ao fechar o armazenamento.", err)
		}
		if rdb != nil && cfg.StorageDriver != config.DriverRedis {
			rdb.Close()
		}
	}()
	appLog.Info("Armazenamento aberto.", map[string]interface{}{"driver": cfg.StorageDriver})

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Store -> Service -> Handler

	repos := inventoryservice.Repositories{
		Products:   productrepo.NewProductRepository(backend, appLog),
		Categories: categoryrepo.NewCategoryRepository(backend, appLog),
		Movements:  movementrepo.NewMovementRepository(backend, appLog),
		Snapshot:   snapshotrepo.NewSnapshotRepository(backend, appLog),
	}
	store := inventoryservice.NewStore(repos, appLog, inventoryservice.Options{Locale: cfg.LocaleTag()})

	m := metrics.New()
	unsubscribe := store.Subscribe(m.ObserveState)
	defer unsubscribe()

	if err := store.LoadData(ctx); err != nil {
		// O flag de erro fica no estado; POST /v1/inventory/reload tenta de novo.
		appLog.Warn("Carga inicial falhou.", map[string]interface{}{"error": err.Error()})
	}

	productHandler := product.NewHandler(productservice.NewService(store, appLog), appLog)
	categoryHandler := category.NewHandler(categoryservice.NewService(store, appLog), appLog)
	stockHandler := stock.NewHandler(stockservice.NewService(store, appLog), appLog)
	inventoryHandler := inventory.NewHandler(store, appLog)
	appLog.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Deps{
		Products:        productHandler,
		Categories:      categoryHandler,
		Stock:           stockHandler,
		Inventory:       inventoryHandler,
		Metrics:         m,
		Logger:          appLog,
		Cache:           cacheClient,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Production:      cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoInventory ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
