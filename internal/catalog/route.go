package catalog

import (
	"net/url"
	"strconv"

	"github.com/desertthunder/wgx/internal/models"
)

// Package API paths, relative to the configured base URL.
const (
	PathPackages        = "/packages"
	PathVendorPackages  = "/packages/microsoft"
	PathRefreshPackages = "/refresh"
)

// Request is the upstream listing call derived from a [models.QueryState].
type Request struct {
	Path   string
	Params url.Values
}

// BuildRequest selects the listing endpoint and its parameters.
//
// The vendor endpoint is used when the vendor filter is on, and it never receives a publisher or query.
// Otherwise publisher wins over query when both are set.
func BuildRequest(state models.QueryState) Request {
	path := PathPackages
	if state.IsMicrosoft {
		path = PathVendorPackages
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(state.Page))
	params.Set("pageSize", strconv.Itoa(state.PageSize))
	params.Set("sort", string(state.Sort))

	switch {
	case state.IsMicrosoft:
	case state.Publisher != "":
		params.Set("publisher", state.Publisher)
	case state.Query != "":
		params.Set("query", state.Query)
	}

	return Request{Path: path, Params: params}
}
