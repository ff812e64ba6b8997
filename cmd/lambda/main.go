package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"ippt-coach/handler"
	"ippt-coach/internal/app"
	"ippt-coach/internal/config"
	"ippt-coach/internal/observability"
)

func main() {
	ctx := context.Background()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// ---- Configuration (read only here) ----
	cfg, err := config.Load(config.BackendDynamoDB)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	svc, err := app.Build(ctx, cfg, app.DefaultAWSConfig, observability.NewRecorder())
	if err != nil {
		slog.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(svc.Chat)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
