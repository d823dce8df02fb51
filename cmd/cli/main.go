package main

import (
	"context"
	"os"

	"github.com/forcreators/forcreators-cli/internal/client/cli"
	"github.com/forcreators/forcreators-cli/internal/client/config"
	"github.com/forcreators/forcreators-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
