package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wgx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Refresh asks the package API to rebuild its catalog and reports the outcome.
func (r *Runner) Refresh(ctx context.Context, cmd *cli.Command) error {
	outcome := r.adapter.Refresh(ctx)

	if cmd.Bool("json") {
		if err := r.writeJSON(outcome, true); err != nil {
			return err
		}
	} else if outcome.Success {
		r.writePlain("✓ %s\n", outcome.Message)
	} else {
		r.writePlain("✗ %s\n", outcome.Message)
	}

	if !outcome.Success {
		return fmt.Errorf("%w: %s", shared.ErrRefreshFailed, outcome.Message)
	}
	return nil
}
