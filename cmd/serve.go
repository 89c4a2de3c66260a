package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/wgx/internal/server"
	"github.com/desertthunder/wgx/internal/shared"
	"github.com/desertthunder/wgx/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web front end until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
		if cfg.Port < 1 || cfg.Port > 65535 {
			return fmt.Errorf("%w: port %d out of range", shared.ErrInvalidFlag, cfg.Port)
		}
	}

	router, err := r.router(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, router, r.logger)
	if cmd.Bool("open") {
		go r.openWhenReady(ctx, srv)
	}

	return srv.Run(ctx)
}

// router mounts the catalog page behind the default middleware stack.
func (r *Runner) router(cfg shared.ServerConfig) (*server.BasicRouter, error) {
	handler, err := web.NewHandler(r.adapter, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := server.NewBasicRouter()
	router.Use(server.Defaults(cfg, r.logger)...)
	router.Handler(handler)
	return router, nil
}

func (r *Runner) openWhenReady(ctx context.Context, srv *server.Server) {
	select {
	case addr := <-srv.Ready():
		url := "http://" + addr + "/"
		r.writePlain("→ Opening %s...\n", url)
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
			r.writePlain("⚠ Could not open browser automatically. Please open %s\n", url)
		}
	case <-ctx.Done():
	}
}
