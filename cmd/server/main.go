package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"fasal/config"
	"fasal/database"
	"fasal/pkg/guide"
	"fasal/pkg/logging"
	"fasal/router"

	// Alerts
	alertCtrlImp "fasal/pkg/alert/controllerImp"
	alertRepoImp "fasal/pkg/alert/repositoryImp"
	alertSvcImp "fasal/pkg/alert/serviceImp"

	// Guides
	guideCtrlImp "fasal/pkg/guide/controllerImp"
	guideRepoImp "fasal/pkg/guide/repositoryImp"
	guideSvcImp "fasal/pkg/guide/serviceImp"

	// WhatsApp
	waCtrlImp "fasal/pkg/whatsapp/controllerImp"
	waRepoImp "fasal/pkg/whatsapp/repositoryImp"
	waSvcImp "fasal/pkg/whatsapp/serviceImp"

	// Status
	healthCtrlImp "fasal/pkg/health/controllerImp"
)

func main() {
	started := time.Now()

	// 1) Config + logger
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Strict())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.String("app_env", cfg.AppEnv),
		zap.String("guide_path", cfg.GuidePath),
		zap.String("guide_dir", cfg.GuideDir),
		zap.String("env_file", cfg.EnvFile))

	// 2) DB (sqlite) + automigrate + seed
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	aRepo := alertRepoImp.New(db, logger)
	if cfg.SeedAlerts {
		if err := database.SeedAlerts(context.Background(), aRepo, logger); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
	}

	// 3) Guide catalog: the default guide first, then GUIDE_DIR
	def := guide.Default()
	if cfg.GuidePath != "" {
		if def, err = guide.LoadFile(cfg.GuidePath); err != nil {
			logger.Fatal("guide", zap.Error(err))
		}
	}
	guides := []*guide.Guide{def}
	if cfg.GuideDir != "" {
		more, err := guide.LoadDir(cfg.GuideDir)
		if err != nil {
			logger.Fatal("guide dir", zap.Error(err))
		}
		guides = append(guides, more...)
	}
	cat, err := guide.NewCatalog(guides...)
	if err != nil {
		logger.Fatal("guide catalog", zap.Error(err))
	}
	logger.Info("guides ready", zap.String("default", def.ID), zap.Int("guides", len(guides)))
	if cfg.GatewayToken == "" {
		logger.Warn("WHATSAPP_GATEWAY_TOKEN not set; handshake callbacks are disabled")
	}

	// 4) Services + controllers
	aCtrl := alertCtrlImp.New(alertSvcImp.NewAlertService(aRepo, logger), logger)
	gCtrl := guideCtrlImp.New(guideSvcImp.NewGuideService(cat, guideRepoImp.New(db), logger, cfg.Strict()), logger)
	wCtrl := waCtrlImp.New(waSvcImp.NewConnectionService(waRepoImp.New(db), logger), logger)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, aRepo, def.ID, started)

	// 5) Echo + router
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(logging.RequestLogger(logger))
	r := router.New(e, aCtrl, gCtrl, wCtrl, hCtrl, cfg.GatewayToken)

	// 6) Start, stop on signal
	go func() {
		logger.Info("listening", zap.String("addr", ":"+cfg.Port))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
