package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/repository"
	"fincalc/service"
)

func serveCommand() cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "run the calculator HTTP API",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "addr", Usage: "listen address, overrides server.addr"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if addr := c.String("addr"); addr != "" {
				cfg.Server.Addr = addr
			}

			logger, err := config.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return serve(cfg, logger)
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return config.Config{}, err
	}
	if level := c.GlobalString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

func newCounterStore(cfg config.Config, logger *zap.Logger) (repository.CounterRepository, func(), error) {
	if cfg.Redis.Addr == "" {
		store := repository.NewMemoryCounter()
		return store, store.Stop, nil
	}

	store := repository.NewRedisCounter(cfg.Redis.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	logger.Info("rate limit counters in redis", zap.String("addr", cfg.Redis.Addr))
	return store, func() { store.Close() }, nil
}

func serve(cfg config.Config, logger *zap.Logger) error {
	store, closeStore, err := newCounterStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	calculatorService := service.NewCalculatorService(logger)
	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService, logger)
	rateLimiter := httpLayer.NewRateLimiter(store, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(calculatorHandler, rateLimiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
