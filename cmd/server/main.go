package main

import (
	"context"
	"mime"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	appconvert "clipd/internal/application/convert"
	"clipd/internal/config"
	"clipd/internal/infrastructure/ffmpeg"
	"clipd/internal/infrastructure/filesystem"
	httptransport "clipd/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	_ = mime.AddExtensionType(".m3u8", "application/vnd.apple.mpegurl")
	_ = mime.AddExtensionType(".mp4", "video/mp4")

	store := filesystem.NewStore(cfg.DownloadsDir, logger)
	if err := store.EnsureDir(); err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	// Preflight runs once; the verdict holds for the process lifetime.
	binary, err := ffmpeg.Preflight()
	avail := appconvert.Availability{OK: err == nil}
	if err != nil {
		avail.Detail = err.Error()
		logger.Warn("ffmpeg preflight failed, conversions disabled", zap.Error(err))
	} else {
		logger.Info("ffmpeg preflight ok", zap.String("binary", binary))
	}

	engine := ffmpeg.NewEngine(binary)
	registry := appconvert.NewRegistry(cfg.JobTTL)
	service := appconvert.NewService(engine, store, registry, avail, logger)

	store.StartSweeper(context.Background(), cfg.SweepInterval, cfg.ArtifactMaxAge)

	handler := httptransport.NewHandler(service, store, avail.OK)
	router := httptransport.NewRouter(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
	})

	logger.Info("server started", zap.String("addr", cfg.ServerAddr))
	if err := http.ListenAndServe(cfg.ServerAddr, c.Handler(router)); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
