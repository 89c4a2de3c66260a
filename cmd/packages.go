package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/formatter"
	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/shared"
	"github.com/urfave/cli/v3"
)

// stateFromFlags maps the listing flags onto the inbound query parameters and normalizes them
// exactly like a page request. Unknown sort keys are rejected rather than replaced.
func stateFromFlags(cmd *cli.Command) (models.QueryState, error) {
	sort := models.Sort(cmd.String("sort"))
	if !sort.Valid() {
		return models.QueryState{}, fmt.Errorf("%w: unknown sort %q", shared.ErrInvalidFlag, sort)
	}

	values := url.Values{}
	values.Set(catalog.ParamSort, string(sort))
	values.Set(catalog.ParamPageSize, strconv.Itoa(cmd.Int("page-size")))
	values.Set(catalog.ParamPublisher, cmd.String("publisher"))
	values.Set(catalog.ParamQuery, cmd.String("query"))
	if cmd.Bool("microsoft") {
		values.Set(catalog.ParamMicrosoft, "1")
	}

	// tui has neither flag
	if cmd.IsSet("page") {
		values.Set(catalog.ParamPage, strconv.Itoa(cmd.Int("page")))
	}
	if cmd.Bool("refresh") {
		values.Set(catalog.ParamRefresh, "1")
	}

	return catalog.ParseQuery(values), nil
}

// Packages prints one page of packages. It fails when the listing call failed, after printing the page.
func (r *Runner) Packages(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	state, err := stateFromFlags(cmd)
	if err != nil {
		return err
	}

	page := r.adapter.LoadState(ctx, state)

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(page, format, path); err != nil {
			return err
		}
		r.writePlain("✓ Wrote %d packages to %s\n", len(page.Packages), path)
	} else {
		data, err := formatter.Export(page, format)
		if err != nil {
			return err
		}
		if _, err := r.output.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if page.Failed() {
		return fmt.Errorf("%w: %s", shared.ErrListingFailed, page.Error)
	}
	return nil
}
