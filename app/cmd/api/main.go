package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	server "backend/school-platform/app/api"
	"backend/school-platform/app/internal/config"
	"backend/school-platform/app/pkg/db"
	"backend/school-platform/app/pkg/logging"
	"backend/school-platform/app/pkg/storage"
	ctxutil "backend/school-platform/app/pkg/util/context"
	httpClientUtil "backend/school-platform/app/pkg/util/httpclient"
	"backend/school-platform/app/pkg/wilayah"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	env := ctxutil.GetAppModeFromEnv()
	ctx := ctxutil.SetAppMode(context.Background(), env)

	logger := setupLogging(env)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := loadConfiguration(env, logger)
	database := setupDatabase(cfg, logger)
	defer closeDatabase(database, logger)

	httpClient := httpClientUtil.NewRestyClient(30*time.Second, logger)
	uploader := setupStorage(ctx, cfg, logger)
	wilayahClient := wilayah.NewClient(httpClient, cfg.WilayahConfig, logger)

	httpServer := &server.Server{
		Config:     cfg,
		Logger:     logger,
		DB:         database,
		HttpClient: httpClient,
		Storage:    uploader,
		Wilayah:    wilayahClient,
	}
	httpServer.Start(ctx)
}

func setupLogging(env ctxutil.AppMode) *zap.Logger {
	logConfig := logging.NewLogConfig("[school-platform]", env)
	logger, err := logConfig.NewLogging()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func loadConfiguration(env ctxutil.AppMode, logger *zap.Logger) config.ApplicationConfig {
	cfg, err := config.ReadApplicationConfig(env, logger)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setupDatabase(cfg config.ApplicationConfig, logger *zap.Logger) *db.DB {
	database, err := db.NewDB(cfg, logger)
	if err != nil {
		panic(err)
	}
	return database
}

func closeDatabase(database *db.DB, logger *zap.Logger) {
	if err := database.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	} else {
		logger.Info("closed database connection")
	}
}

func setupStorage(ctx context.Context, cfg config.ApplicationConfig, logger *zap.Logger) storage.Uploader {
	uploader, err := storage.NewS3Uploader(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize object storage", zap.Error(err))
		panic(err)
	}
	return uploader
}
