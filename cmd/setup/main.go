// Package main is the one-time database setup tool. It connects to the
// database named by DATABASE_URL and applies the embedded schema script,
// skipping objects that already exist so re-runs are harmless.
package main

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/sivacabs/backend/internal/schema"
)

//go:embed schema.sql
var schemaSQL string

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Error("DATABASE_URL must be set")
		os.Exit(1)
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	res, err := schema.Apply(ctx, conn, schemaSQL)
	if err != nil {
		logger.Error("setup aborted", "error", err, "applied", res.Applied, "skipped", res.Skipped)
		os.Exit(1)
	}

	logger.Info("setup complete", "applied", res.Applied, "skipped", res.Skipped)
}
