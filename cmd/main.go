package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dress-catalogue/internal/config"
	"dress-catalogue/internal/infrastructure/auth"
	"dress-catalogue/internal/infrastructure/database/mysql"
	"dress-catalogue/internal/infrastructure/database/sheets"
	"dress-catalogue/internal/infrastructure/server"
	"dress-catalogue/internal/infrastructure/whatsapp"
	adminController "dress-catalogue/internal/interfaces/controller/admin"
	itemsController "dress-catalogue/internal/interfaces/controller/items"
	"dress-catalogue/internal/interfaces/presenter"
	"dress-catalogue/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	itemRepo, err := newItemRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open catalogue store", zap.Error(err))
	}

	itemUsecase := usecase.NewItemUsecase(itemRepo)
	itemPresenter := presenter.NewItemPresenter(whatsapp.NewLinkBuilder(cfg.WhatsAppNumber))
	itemHandler := itemsController.NewItemHandler(itemUsecase, itemPresenter)

	gate := auth.NewGate(cfg.AdminPassword, cfg.SessionTTL)
	adminHandler := adminController.NewAdminHandler(gate)

	srv := server.New(cfg.Port, logger, itemHandler, adminHandler)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return logConfig.Build()
}

func newItemRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (usecase.ItemRepository, error) {
	switch cfg.Store {
	case config.StoreSheets:
		client, err := sheets.NewClient(ctx, cfg.SheetID, cfg.SheetName, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return sheets.NewRepository(client, logger), nil
	case config.StoreMySQL:
		db, err := mysql.NewDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return mysql.NewRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
