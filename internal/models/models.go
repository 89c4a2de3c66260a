// package models defines the data model for the package catalog front end
package models

import "strings"

// Placeholder is rendered in place of a missing package field.
const Placeholder = "N/A"

// Sort is a sort key understood by the package API.
type Sort string

const (
	SortName      Sort = "name"
	SortPackageID Sort = "package_id"
	SortVersion   Sort = "version"
)

// Sorts lists the accepted sort keys in display order.
var Sorts = []Sort{SortName, SortPackageID, SortVersion}

// Valid reports whether s is one of [Sorts].
func (s Sort) Valid() bool {
	for _, v := range Sorts {
		if s == v {
			return true
		}
	}
	return false
}

// Label returns the human readable name used in select boxes and tables.
func (s Sort) Label() string {
	switch s {
	case SortPackageID:
		return "ID"
	case SortVersion:
		return "Version"
	default:
		return "Name"
	}
}

// Next returns the sort key following s, wrapping around.
func (s Sort) Next() Sort {
	for i, v := range Sorts {
		if s == v {
			return Sorts[(i+1)%len(Sorts)]
		}
	}
	return SortName
}

// QueryState is the normalized form of the inbound request parameters.
//
// When IsMicrosoft is set, Publisher is always the vendor name and Query is empty.
type QueryState struct {
	Page        int
	PageSize    int
	Sort        Sort
	Publisher   string
	Query       string
	IsMicrosoft bool
	Refresh     bool
}

// HasFilter reports whether any publisher, search or vendor filter is active.
func (q QueryState) HasFilter() bool {
	return q.IsMicrosoft || q.Publisher != "" || q.Query != ""
}

// Package is a single catalog entry. Every field may be missing upstream.
type Package struct {
	Name      string `json:"name,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	PackageID string `json:"package_id,omitempty"`
	Version   string `json:"version,omitempty"`
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func (p Package) DisplayName() string      { return orPlaceholder(p.Name) }
func (p Package) DisplayPublisher() string { return orPlaceholder(p.Publisher) }
func (p Package) DisplayID() string        { return orPlaceholder(p.PackageID) }
func (p Package) DisplayVersion() string   { return orPlaceholder(p.Version) }

// Listing is one page of results as returned by the package API.
//
// TotalPages and CurrentPage are nil when the API omits them.
type Listing struct {
	Packages    []Package `json:"Packages"`
	Total       int       `json:"Total"`
	TotalPages  *int      `json:"TotalPages,omitempty"`
	CurrentPage *int      `json:"CurrentPage,omitempty"`
}

// RefreshResponse is the body of the refresh endpoint.
type RefreshResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RefreshOutcome is the result of a refresh as shown to the user.
type RefreshOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
