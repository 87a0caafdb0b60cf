package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/securepass/securepass-go/internal/cli"
	"github.com/securepass/securepass-go/internal/config"
	"github.com/securepass/securepass-go/internal/password"
	"github.com/securepass/securepass-go/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := password.NewGenerator(password.SourceByName(cfg.RandomSource))
	app := cli.New(cli.Options{
		Prompter: cli.NewSurveyPrompter(),
		Strength: service.NewStrengthService(),
		Generator: service.NewGeneratorService(generator, service.NewHistory(cfg.HistorySize), service.GeneratorSettings{
			MinLength:       cfg.MinLength,
			MaxLength:       cfg.MaxLength,
			DefaultLength:   cfg.DefaultLength,
			DefaultSpecials: cfg.DefaultSpecials,
		}),
		Copy:   cli.SystemClipboard,
		Out:    os.Stdout,
		Logger: logger,
	})

	if err := app.Run(ctx); err != nil {
		slog.Error("securepass exited with error", "error", err)
		os.Exit(1)
	}
}
