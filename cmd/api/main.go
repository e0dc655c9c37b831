package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"table-checkbox-sync/config"
	_ "table-checkbox-sync/docs" // Swagger docs
	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/document"
	fileRepo "table-checkbox-sync/internal/document/repository/file"
	"table-checkbox-sync/internal/document/repository/memory"
	sqliteRepo "table-checkbox-sync/internal/document/repository/sqlite"
	"table-checkbox-sync/internal/httpserver"
	"table-checkbox-sync/internal/identifier"
	"table-checkbox-sync/internal/middleware"
	"table-checkbox-sync/internal/window"
	windowHTTP "table-checkbox-sync/internal/window/delivery/http"
	windowUC "table-checkbox-sync/internal/window/usecase"
	"table-checkbox-sync/pkg/log"
)

// @title       Table Checkbox Sync API
// @description Converts checkbox markup typed inside markdown table rows into checkbox controls and keeps their state in sync with the document source.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Table Checkbox Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store
	store, closeStore, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open document store: ", err)
		return
	}
	defer closeStore()
	logger.Infof(ctx, "Document store: %s", cfg.Store.Driver)

	// 4. Window domain
	allocator := identifier.New(logger, cfg.Identifier.Length)
	registry := window.NewRegistry(logger, store, document.NewGuard(), allocator, window.Config{
		Strategy:     correlator.Strategy(cfg.Input.Strategy),
		NativeMarker: cfg.Toggle.NativeMarker,
	})
	defer registry.Close(context.Background())

	windowHandler := windowHTTP.New(logger, windowUC.New(logger, store, registry))

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    middleware.New(logger, cfg.RateLimit.PerMin),
		WindowHandler: windowHandler,
		Windows:       registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStore builds the document store selected by cfg.Driver.
func openStore(ctx context.Context, cfg config.StoreConfig, l log.Logger) (document.Store, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverFile:
		if err := os.MkdirAll(cfg.FileRoot, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create vault %s: %w", cfg.FileRoot, err)
		}
		return fileRepo.NewOS(cfg.FileRoot, l), func() {}, nil
	case config.StoreDriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		repo, err := sqliteRepo.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				l.Errorf(ctx, "Failed to close sqlite store: %v", err)
			}
		}, nil
	default:
		return memory.New(nil), func() {}, nil
	}
}
