package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/forcreators/forcreators-cli/internal/client/api"
	"github.com/forcreators/forcreators-cli/internal/client/config"
	"github.com/forcreators/forcreators-cli/internal/client/services"
	"github.com/forcreators/forcreators-cli/internal/logging"
)

// App wires the config, gateway and orchestrator together and runs the
// command loop.
type App struct {
	config  *config.Config
	profile *services.ProfileService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the application from its configuration.
func NewApp(c *config.Config, log logging.Logger) *App {
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	profile := services.NewProfileService(apiClient, log, services.Options{
		EagerMediaKit: c.EagerMediaKit,
	})

	return &App{
		config:  c,
		profile: profile,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run starts the command loop and releases resources when it ends.
func (a *App) Run(ctx context.Context) {
	defer a.profile.Close()
	a.Root(ctx)
}
