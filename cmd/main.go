package main

import (
	"context"
	"os"

	"github.com/desertthunder/wgx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	app := newApp(NewRunner(RunnerOpts{Logger: logger}))

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(runner *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wgx",
		Usage:   "Browse a local winget package API from the browser, the terminal or scripts",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.toml, .yaml or .yml)",
				Value:   "config.toml",
				Sources: cli.EnvVars("WGX_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Override the configured log level (debug, info, warn, error)",
				Sources: cli.EnvVars("WGX_LOG_LEVEL"),
			},
		},
		Before:   runner.configure,
		Commands: runner.register(),
	}
}
