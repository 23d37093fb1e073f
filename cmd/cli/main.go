package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"custdesk/internal/buildinfo"
	"custdesk/internal/client/cli"
	"custdesk/internal/client/config"
	"custdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, newLogger())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

// newLogger writes structured logs to stderr; stdout belongs to the REPL.
func newLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}
