package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/supportpilot/internal/client/cli"
	"github.com/dmitrijs2005/supportpilot/internal/client/config"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
