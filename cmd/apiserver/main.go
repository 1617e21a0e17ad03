// API server entry point for ClaimScout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/ClaimScout/internal/application/analysis"
	"github.com/turtacn/ClaimScout/internal/application/search"
	"github.com/turtacn/ClaimScout/internal/config"
	"github.com/turtacn/ClaimScout/internal/infrastructure/ai/openai"
	"github.com/turtacn/ClaimScout/internal/infrastructure/extract"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ClaimScout/internal/infrastructure/storage/memory"
	httpserver "github.com/turtacn/ClaimScout/internal/interfaces/http"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/handlers"
	"github.com/turtacn/ClaimScout/internal/interfaces/http/middleware"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; falling back to environment configuration\n", err)
		cfg, err = config.LoadFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting ClaimScout API server",
		logging.Int("port", cfg.Server.Port),
		logging.Int("top_k", cfg.Search.TopK),
		logging.Bool("pdf_enabled", cfg.PDF.Enabled),
	)

	metrics := prometheus.NewAppMetrics("claimscout")
	store := memory.NewSeededStore()

	searchSvc := search.NewService(search.Deps{
		Store:   store,
		Logger:  logger.Named("search"),
		Metrics: metrics,
		TopK:    cfg.Search.TopK,
	})
	analysisSvc := analysis.NewService(analysis.Deps{
		Store:     store,
		Generator: openai.NewClient(cfg.OpenAI, logger),
		Logger:    logger.Named("analysis"),
		Metrics:   metrics,
	})

	var extractor extract.TextExtractor = extract.NewDisabledExtractor()
	if cfg.PDF.Enabled {
		extractor = extract.NewPDFExtractor()
	}

	patentHandler := handlers.NewPatentHandler(handlers.PatentHandlerDeps{
		Search:         searchSvc,
		Analysis:       analysisSvc,
		Extractor:      extractor,
		Store:          store,
		Logger:         logger.Named("http"),
		MaxUploadBytes: cfg.Server.MaxBodySize,
	})

	routerCfg := httpserver.RouterConfig{
		PatentHandler: patentHandler,
		HealthHandler: handlers.NewHealthHandler(store),
		CORS: middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
			MaxAge:         cfg.CORS.MaxAge,
		}),
		RequestLogging: middleware.RequestLogging(logger.Named("http"), middleware.DefaultLoggingConfig()),
		MetricsPath:    cfg.Metrics.Path,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = metrics
	}

	srv := httpserver.NewServer(cfg.Server, httpserver.NewRouter(routerCfg), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("HTTP server failed", logging.Err(err))
		}
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
		if err := srv.Stop(context.Background()); err != nil {
			logger.Error("shutdown failed", logging.Err(err))
		}
	}

	logger.Info("server stopped")
}

// loadConfig loads configuration from file, failing if the file is absent.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return config.Load(path)
}
