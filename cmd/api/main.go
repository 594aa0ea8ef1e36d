package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "customerstore/docs"
	"customerstore/pkg/api"
	"customerstore/pkg/config"
	"customerstore/pkg/customer"
	"customerstore/pkg/customer/file"
	"customerstore/pkg/customer/postgres"
	redissnap "customerstore/pkg/customer/redis"
	"customerstore/pkg/customer/store"
	"customerstore/pkg/logger"
	"customerstore/pkg/otel"
)

const serviceName = "customerstore"

// @title Customer Store API
// @version 1.0
// @description API for managing customer records
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log := logger.New(os.Stdout, level, serviceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: serviceName,
		Host:        cfg.OtelHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	snap, err := openSnapshotter(ctx, cfg)
	if err != nil {
		log.Error(ctx, "open storage", "driver", cfg.StorageDriver, "error", err)
		return err
	}
	if c, ok := snap.(io.Closer); ok {
		defer c.Close()
	}
	log.Info(ctx, "storage ready", "driver", cfg.StorageDriver)

	repo := store.New(ctx, snap, log)
	handlers := api.New(repo, log, tp.Tracer(serviceName))

	srv := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: handlers.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.ListenAddress, "tls", cfg.TLS())
		if cfg.TLS() {
			errc <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down", "timeout", cfg.ShutdownTimeout.String())
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error(sctx, "shutdown", "error", err)
		return err
	}
	return nil
}

func openSnapshotter(ctx context.Context, cfg *config.Config) (customer.Snapshotter, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg.DatabaseURL)
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return redissnap.New(client, cfg.RedisKey), nil
	default:
		return file.New(cfg.StorageFile), nil
	}
}
