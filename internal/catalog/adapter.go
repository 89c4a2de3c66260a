// Package catalog turns inbound listing requests into package API calls and renderable pages.
//
// The flow for one request is:
//  1. [ParseQuery] normalizes the raw parameters into a [models.QueryState]
//  2. when the refresh flag is set, [Adapter.Refresh] posts to the refresh endpoint
//  3. [BuildRequest] picks the listing endpoint and its parameters
//  4. the listing is fetched and normalized by [NewPage], which also derives
//     the [LinkState] suffix and the [Pagination] window
//
// Upstream failures never abort this flow: they end up as Page.Error or as a failed
// [models.RefreshOutcome]. A failed refresh does not prevent the listing call.
package catalog

import (
	"context"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/services"
	"github.com/desertthunder/wgx/internal/shared"
)

// Upstream is the part of [services.APIService] the adapter depends on.
type Upstream interface {
	Get(ctx context.Context, path string, params url.Values) services.Result
	Post(ctx context.Context, path string, data []byte) services.Result
	URL(path string, params url.Values) string
}

var _ Upstream = (*services.APIService)(nil)

// Adapter runs listing and refresh requests against the package API.
type Adapter struct {
	api    Upstream
	logger *log.Logger
}

// NewAdapter creates an adapter over api. A nil logger falls back to a stderr logger.
func NewAdapter(api Upstream, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Adapter{api: api, logger: logger}
}

// NewAdapterFromConfig builds the HTTP client and API service described by cfg.
func NewAdapterFromConfig(cfg shared.UpstreamConfig, logger *log.Logger) *Adapter {
	client := services.NewHTTPClient(cfg.Timeout, cfg.InsecureSkipVerify)
	api := services.NewAPIService(cfg.BaseURL, cfg.UserAgent, client)
	return NewAdapter(api, logger)
}

// WithLogger returns a copy of the adapter that logs to logger.
func (a *Adapter) WithLogger(logger *log.Logger) *Adapter {
	return NewAdapter(a.api, logger)
}

// Load normalizes values and runs the request they describe.
func (a *Adapter) Load(ctx context.Context, values url.Values) *Page {
	return a.LoadState(ctx, ParseQuery(values))
}

// LoadState runs the optional refresh and then the listing call for state.
func (a *Adapter) LoadState(ctx context.Context, state models.QueryState) *Page {
	var outcome *models.RefreshOutcome
	if state.Refresh {
		o := a.Refresh(ctx)
		outcome = &o
	}

	req := BuildRequest(state)
	started := time.Now()
	res := a.api.Get(ctx, req.Path, req.Params)

	page := NewPage(state, req, res)
	page.Refresh = outcome
	page.RequestURL = a.api.URL(req.Path, req.Params)

	if page.Failed() {
		a.logger.Warn("listing failed", "path", req.Path, "error", page.Error)
	} else {
		a.logger.Debug("listing fetched",
			"path", req.Path,
			"page", page.CurrentPage,
			"packages", len(page.Packages),
			"total", page.Total,
			"elapsed", time.Since(started))
	}

	return page
}

// Refresh asks the package API to rebuild its catalog.
func (a *Adapter) Refresh(ctx context.Context) models.RefreshOutcome {
	outcome := NewRefreshOutcome(a.api.Post(ctx, PathRefreshPackages, nil))
	if outcome.Success {
		a.logger.Info("packages refreshed", "message", outcome.Message)
	} else {
		a.logger.Warn("refresh failed", "error", outcome.Message)
	}
	return outcome
}

// Routes lists the raw package API endpoints, for display.
func (a *Adapter) Routes() APIRoutes {
	return APIRoutes{
		Packages:       a.api.URL(PathPackages, nil),
		VendorPackages: a.api.URL(PathVendorPackages, nil),
		Refresh:        a.api.URL(PathRefreshPackages, nil),
	}
}

// APIRoutes holds absolute URLs of the package API endpoints.
type APIRoutes struct {
	Packages       string
	VendorPackages string
	Refresh        string
}
