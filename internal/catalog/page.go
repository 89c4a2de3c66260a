package catalog

import (
	"fmt"

	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/services"
)

// Page is everything a surface needs to render one listing request.
type Page struct {
	State      models.QueryState
	Request    Request
	RequestURL string

	Packages    []models.Package
	Total       int
	TotalPages  int
	CurrentPage int
	Error       string

	Refresh *models.RefreshOutcome

	Links      LinkState
	Pagination Pagination
}

// NewPage normalizes the upstream result of req into a [Page].
//
// On failure the page carries the diagnostic and no packages. TotalPages is computed from Total
// when the API omits it and is never below 1; CurrentPage falls back to the requested page.
func NewPage(state models.QueryState, req Request, res services.Result) *Page {
	page := &Page{
		State:       state,
		Request:     req,
		TotalPages:  1,
		CurrentPage: state.Page,
		Links:       NewLinkState(state),
	}

	var listing models.Listing
	if err := res.Decode(&listing); err != nil {
		page.Error = err.Error()
	} else {
		page.Packages = listing.Packages
		page.Total = listing.Total
		page.TotalPages = totalPages(listing, state.PageSize)
		if listing.CurrentPage != nil && *listing.CurrentPage > 0 {
			page.CurrentPage = *listing.CurrentPage
		}
	}

	page.Pagination = NewPagination(page.Links, page.CurrentPage, page.TotalPages)
	return page
}

func totalPages(listing models.Listing, pageSize int) int {
	if listing.TotalPages != nil {
		return max(1, *listing.TotalPages)
	}
	if listing.Total <= 0 || pageSize <= 0 {
		return 1
	}
	return (listing.Total + pageSize - 1) / pageSize
}

// Failed reports whether the listing call failed.
func (p *Page) Failed() bool {
	return p.Error != ""
}

// Empty reports a successful call that returned no packages.
func (p *Page) Empty() bool {
	return !p.Failed() && len(p.Packages) == 0
}

// ShowPagination reports whether there is more than one page to navigate.
func (p *Page) ShowPagination() bool {
	return !p.Failed() && !p.Empty() && p.TotalPages > 1
}

// RowNumber returns the 1-based position of the i-th package across all pages.
func (p *Page) RowNumber(i int) int {
	return i + 1 + (p.CurrentPage-1)*p.State.PageSize
}

// QueryDisabled reports whether the search input is locked by a publisher or vendor filter.
func (p *Page) QueryDisabled() bool {
	return p.State.Publisher != "" || p.State.IsMicrosoft
}

// PublisherDisabled reports whether the publisher input is locked by the vendor filter.
func (p *Page) PublisherDisabled() bool {
	return p.State.IsMicrosoft
}

// FilterSummary describes the active filter and the number of matches, or "" when none is active.
func (p *Page) FilterSummary() string {
	switch {
	case p.State.IsMicrosoft:
		return fmt.Sprintf("Active filter: publisher %s (%d found)", VendorPublisher, p.Total)
	case p.State.Publisher != "":
		return fmt.Sprintf("Active filter: publisher %q (%d found)", p.State.Publisher, p.Total)
	case p.State.Query != "":
		return fmt.Sprintf("Search: %q (%d found)", p.State.Query, p.Total)
	default:
		return ""
	}
}

// EmptyNotice is shown when the call succeeded without results.
func (p *Page) EmptyNotice() string {
	switch {
	case p.State.Publisher != "":
		return fmt.Sprintf("No packages found for publisher %q.", p.State.Publisher)
	case p.State.Query != "":
		return fmt.Sprintf("No packages found for %q.", p.State.Query)
	default:
		return "No packages found."
	}
}

// Status is the one-line result summary, e.g. "Showing 50 packages (page 2 of 3)."
func (p *Page) Status() string {
	return fmt.Sprintf("Showing %d packages (page %d of %d).", len(p.Packages), p.CurrentPage, p.TotalPages)
}
