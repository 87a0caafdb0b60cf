package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/securepass/securepass-go/internal/config"
	"github.com/securepass/securepass-go/internal/handler"
	"github.com/securepass/securepass-go/internal/password"
	"github.com/securepass/securepass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	generator := password.NewGenerator(password.SourceByName(cfg.RandomSource))
	genService := service.NewGeneratorService(generator, service.NewHistory(cfg.HistorySize), service.GeneratorSettings{
		MinLength:       cfg.MinLength,
		MaxLength:       cfg.MaxLength,
		DefaultLength:   cfg.DefaultLength,
		DefaultSpecials: cfg.DefaultSpecials,
	})

	done := make(chan struct{})
	router := handler.NewRouter(handler.RouterOptions{
		Generator:      handler.NewGeneratorHandler(genService),
		Strength:       handler.NewStrengthHandler(service.NewStrengthService()),
		Logger:         logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Done:           done,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}
	close(done)

	slog.Info("server stopped")
}
