package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/wgx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := r.configPath
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Created %s\n", path)
}

// ConfigCheck validates the --config file and prints the settings in effect.
func (r *Runner) ConfigCheck(ctx context.Context, cmd *cli.Command) error {
	path := r.configPath
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}

	r.writePlain("✓ %s is valid\n\n", path)
	r.writePlain("server:   http://%s", config.Server.Addr())
	if config.Server.RateLimit > 0 {
		r.writePlain(" (%.1f req/s, burst %d)", config.Server.RateLimit, config.Server.RateBurst)
	}
	r.writePlain("\n")
	r.writePlain("upstream: %s (timeout %s)\n", config.Upstream.BaseURL, config.Upstream.Timeout)
	return r.writePlain("log:      %s\n", config.Log.Level)
}
