package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/groundwatertools/well-data-service/internal/adapter/http"
	kafkaadapter "github.com/groundwatertools/well-data-service/internal/adapter/kafka"
	"github.com/groundwatertools/well-data-service/internal/adapter/ngwmn"
	"github.com/groundwatertools/well-data-service/internal/config"
	"github.com/groundwatertools/well-data-service/internal/observability"
	"github.com/groundwatertools/well-data-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := ngwmn.NewClient(cfg.ServiceRoot, cfg.StatsRoot, cfg.UpstreamTimeout, cfg.UpstreamRPS, logger)

	// Record sink (feature-flagged via KAFKA_SINK_ENABLED / KAFKA_BROKERS).
	var sink service.RecordSink
	var writer *kafkaadapter.Writer
	if cfg.SinkEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		logger.Info("kafka record sink enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka record sink disabled")
	}

	svc := service.New(client, sink, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
