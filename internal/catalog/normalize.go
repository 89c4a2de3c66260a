package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/wgx/internal/models"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MinPageSize     = 1
	MaxPageSize     = 100

	// VendorPublisher is the publisher forced by the vendor filter.
	VendorPublisher = "Microsoft"
)

// Inbound query parameter names.
const (
	ParamPage      = "page"
	ParamPageSize  = "pageSize"
	ParamSort      = "sort"
	ParamPublisher = "publisher"
	ParamQuery     = "query"
	ParamMicrosoft = "microsoft"
	ParamRefresh   = "refresh"
)

// ParseQuery normalizes raw query parameters into a [models.QueryState].
//
// page defaults to 1 and is floored at 1. pageSize defaults to 50 and is clamped to [1,100].
// Unknown sort keys fall back to name. The microsoft and refresh flags are set only by the literal "1".
// The vendor flag overrides any publisher or query supplied alongside it.
func ParseQuery(values url.Values) models.QueryState {
	state := models.QueryState{
		Page:        max(1, intParam(values, ParamPage, DefaultPage)),
		PageSize:    clamp(intParam(values, ParamPageSize, DefaultPageSize), MinPageSize, MaxPageSize),
		Sort:        ParseSort(values.Get(ParamSort)),
		Publisher:   strings.TrimSpace(values.Get(ParamPublisher)),
		Query:       strings.TrimSpace(values.Get(ParamQuery)),
		IsMicrosoft: values.Get(ParamMicrosoft) == "1",
		Refresh:     values.Get(ParamRefresh) == "1",
	}

	if state.IsMicrosoft {
		state.Publisher = VendorPublisher
		state.Query = ""
	}

	return state
}

// ParseSort returns s as a [models.Sort], or [models.SortName] when s is not a known key.
func ParseSort(s string) models.Sort {
	sort := models.Sort(s)
	if !sort.Valid() {
		return models.SortName
	}
	return sort
}

// Values converts state back into raw query parameters that [ParseQuery] maps to the same state.
func Values(state models.QueryState) url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(state.Page))
	v.Set(ParamPageSize, strconv.Itoa(state.PageSize))
	v.Set(ParamSort, string(state.Sort))
	if state.Publisher != "" {
		v.Set(ParamPublisher, state.Publisher)
	}
	if state.Query != "" {
		v.Set(ParamQuery, state.Query)
	}
	if state.IsMicrosoft {
		v.Set(ParamMicrosoft, "1")
	}
	if state.Refresh {
		v.Set(ParamRefresh, "1")
	}
	return v
}

// intParam parses key as an integer. Missing, empty or malformed values yield def.
func intParam(values url.Values, key string, def int) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
