package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/sabrina-lives/scale-claims-case-study/internal/api"
	appwf "github.com/sabrina-lives/scale-claims-case-study/internal/application/workflow"
	"github.com/sabrina-lives/scale-claims-case-study/internal/config"
	"github.com/sabrina-lives/scale-claims-case-study/internal/observability/metrics"
	"github.com/sabrina-lives/scale-claims-case-study/internal/store"
	"github.com/sabrina-lives/scale-claims-case-study/pkg/utils"
)

func main() {
	cfg := loadConfig()

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting claims review service",
		zap.Int("port", cfg.Server.Port))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	wfMetrics, err := metrics.NewWorkflowMetrics(registry)
	if err != nil {
		logger.Fatal("Failed to initialize workflow metrics", zap.Error(err))
	}
	httpMetrics, err := metrics.NewHTTPMetrics(registry)
	if err != nil {
		logger.Fatal("Failed to initialize HTTP metrics", zap.Error(err))
	}

	entityStore := store.NewSeededMemStore()
	logger.Info("Entity store seeded", zap.Int("claims", store.SeedClaimCount))

	engine := appwf.NewEngine(entityStore, logger, appwf.WithMetrics(wfMetrics))
	handler := api.NewHandler(engine, cfg.Workflow.DefaultActor, logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.RouterConfig{
		Handler:     handler,
		Logger:      logger,
		Registry:    registry,
		HTTPMetrics: httpMetrics,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

// loadConfig reads configs/config.yaml (overridable via CLAIMS_CONFIG),
// falling back to built-in defaults when no file is present so the demo
// starts with zero setup.
func loadConfig() *config.Config {
	path := os.Getenv("CLAIMS_CONFIG")
	if path == "" {
		path = "configs/config.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
