package config

import (
	"flag"
	"os"
	"time"

	"github.com/forcreators/forcreators-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      base URL of the remote API
//	-t int         request timeout in seconds (0 waits forever)
//	-eager-kit     fetch the media kit eagerly after login/signup
//	-log-level     debug, info, warn or error
//
// Only these flags are parsed here; argv is filtered first so flags owned by
// other packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-eager-kit", "-log-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the ForCreators API")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = none)")
	fs.BoolVar(&cfg.EagerMediaKit, "eager-kit", cfg.EagerMediaKit, "fetch the media kit right after login/signup")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
}
