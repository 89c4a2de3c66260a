package catalog

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/services"
	"github.com/desertthunder/wgx/internal/shared"
)

func mustQuery(t *testing.T, link string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(strings.TrimPrefix(link, "?"))
	if err != nil {
		t.Fatalf("invalid link %q: %v", link, err)
	}
	return values
}

func jsonResult(body string) services.Result {
	return services.Success(&services.Response{StatusCode: 200, Body: []byte(body)})
}

func TestNewPage(t *testing.T) {
	state := models.QueryState{Page: 2, PageSize: 50, Sort: models.SortName}
	req := BuildRequest(state)

	t.Run("complete listing", func(t *testing.T) {
		page := NewPage(state, req, jsonResult(`{
			"Packages": [{"name": "Firefox", "package_id": "Mozilla.Firefox", "version": "128.0"}],
			"Total": 240, "TotalPages": 5, "CurrentPage": 4
		}`))

		if page.Failed() {
			t.Fatalf("unexpected error %s", page.Error)
		}
		if len(page.Packages) != 1 || page.Packages[0].PackageID != "Mozilla.Firefox" {
			t.Errorf("unexpected packages %+v", page.Packages)
		}
		if page.Total != 240 || page.TotalPages != 5 || page.CurrentPage != 4 {
			t.Errorf("unexpected counts total=%d pages=%d current=%d", page.Total, page.TotalPages, page.CurrentPage)
		}
		if got := page.Pagination.Numbers(); fmt.Sprint(got) != "[2 3 4 5]" {
			t.Errorf("unexpected window %v", got)
		}
	})

	t.Run("total pages computed when omitted", func(t *testing.T) {
		page := NewPage(state, req, jsonResult(`{"Packages": [], "Total": 120}`))

		if page.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", page.TotalPages)
		}
		if page.CurrentPage != 2 {
			t.Errorf("CurrentPage = %d, want requested page 2", page.CurrentPage)
		}
	})

	t.Run("total pages rounds up", func(t *testing.T) {
		tc := []struct{ total, size, want int }{
			{total: 1, size: 50, want: 1},
			{total: 50, size: 50, want: 1},
			{total: 51, size: 50, want: 2},
			{total: 100, size: 1, want: 100},
			{total: 0, size: 50, want: 1},
		}

		for _, tt := range tc {
			s := models.QueryState{Page: 1, PageSize: tt.size, Sort: models.SortName}
			page := NewPage(s, BuildRequest(s), jsonResult(fmt.Sprintf(`{"Total": %d}`, tt.total)))
			if page.TotalPages != tt.want {
				t.Errorf("total=%d size=%d: TotalPages = %d, want %d", tt.total, tt.size, page.TotalPages, tt.want)
			}
		}
	})

	t.Run("zero total pages from upstream is floored", func(t *testing.T) {
		page := NewPage(state, req, jsonResult(`{"Packages": [], "Total": 0, "TotalPages": 0, "CurrentPage": 1}`))
		if page.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", page.TotalPages)
		}
		if !page.Empty() {
			t.Error("expected empty page")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		res := services.Failure(fmt.Errorf("%w: HTTP 500 for http://localhost:4006/api/packages", shared.ErrTransport))
		page := NewPage(state, req, res)

		if !page.Failed() {
			t.Fatal("expected failed page")
		}
		if !strings.Contains(page.Error, "HTTP 500") {
			t.Errorf("expected status in error, got %s", page.Error)
		}
		if len(page.Packages) != 0 {
			t.Errorf("expected no packages, got %d", len(page.Packages))
		}
		if page.TotalPages != 1 || page.CurrentPage != 2 {
			t.Errorf("expected defaults, got pages=%d current=%d", page.TotalPages, page.CurrentPage)
		}
		if page.Empty() {
			t.Error("failed page must not report the empty notice")
		}
		if page.ShowPagination() {
			t.Error("failed page must not show pagination")
		}
	})

	t.Run("body of the wrong shape", func(t *testing.T) {
		page := NewPage(state, req, jsonResult(`{"Packages": "lots"}`))
		if !page.Failed() {
			t.Fatal("expected decode failure")
		}
		if !strings.Contains(page.Error, shared.ErrResponseParse.Error()) {
			t.Errorf("expected parse error, got %s", page.Error)
		}
	})

	t.Run("row numbers continue across pages", func(t *testing.T) {
		page := NewPage(state, req, jsonResult(`{"Packages": [{}, {}], "Total": 52, "CurrentPage": 2}`))
		if page.RowNumber(0) != 51 || page.RowNumber(1) != 52 {
			t.Errorf("row numbers = %d, %d", page.RowNumber(0), page.RowNumber(1))
		}
	})
}

func TestPageText(t *testing.T) {
	tc := []struct {
		name    string
		values  url.Values
		summary string
		notice  string
	}{
		{
			name:    "vendor",
			values:  url.Values{"microsoft": {"1"}},
			summary: "Active filter: publisher Microsoft (7 found)",
			notice:  `No packages found for publisher "Microsoft".`,
		},
		{
			name:    "publisher",
			values:  url.Values{"publisher": {"Mozilla"}},
			summary: `Active filter: publisher "Mozilla" (7 found)`,
			notice:  `No packages found for publisher "Mozilla".`,
		},
		{
			name:    "search",
			values:  url.Values{"query": {"edge"}},
			summary: `Search: "edge" (7 found)`,
			notice:  `No packages found for "edge".`,
		},
		{
			name:    "none",
			values:  url.Values{},
			summary: "",
			notice:  "No packages found.",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			state := ParseQuery(tt.values)
			page := NewPage(state, BuildRequest(state), jsonResult(`{"Total": 7}`))

			if got := page.FilterSummary(); got != tt.summary {
				t.Errorf("FilterSummary() = %q, want %q", got, tt.summary)
			}
			if got := page.EmptyNotice(); got != tt.notice {
				t.Errorf("EmptyNotice() = %q, want %q", got, tt.notice)
			}
		})
	}

	t.Run("form locks", func(t *testing.T) {
		vendor := &Page{State: ParseQuery(url.Values{"microsoft": {"1"}})}
		if !vendor.QueryDisabled() || !vendor.PublisherDisabled() {
			t.Error("vendor filter must lock both inputs")
		}

		publisher := &Page{State: ParseQuery(url.Values{"publisher": {"Mozilla"}})}
		if !publisher.QueryDisabled() || publisher.PublisherDisabled() {
			t.Error("publisher filter must lock only the search input")
		}

		plain := &Page{State: ParseQuery(url.Values{})}
		if plain.QueryDisabled() || plain.PublisherDisabled() {
			t.Error("no filter must lock nothing")
		}
	})

	t.Run("status", func(t *testing.T) {
		state := ParseQuery(url.Values{})
		page := NewPage(state, BuildRequest(state), jsonResult(`{"Packages": [{}, {}, {}], "Total": 103, "CurrentPage": 1}`))
		if got := page.Status(); got != "Showing 3 packages (page 1 of 3)." {
			t.Errorf("Status() = %q", got)
		}
		if !page.ShowPagination() {
			t.Error("expected pagination for 3 pages")
		}
	})
}

func TestNewRefreshOutcome(t *testing.T) {
	tc := []struct {
		name    string
		res     services.Result
		success bool
		message string
	}{
		{
			name:    "success with count",
			res:     jsonResult(`{"success": true, "count": 42, "message": "42 packages stored"}`),
			success: true,
			message: "42 packages refreshed successfully!",
		},
		{
			name:    "error from body",
			res:     jsonResult(`{"error": "No packages parsed"}`),
			message: "No packages parsed",
		},
		{
			name:    "generic fallback",
			res:     jsonResult(`{"success": false}`),
			message: RefreshFallbackMessage,
		},
		{
			name:    "transport failure",
			res:     services.Failure(fmt.Errorf("%w: HTTP 500 for http://localhost:4006/api/refresh", shared.ErrTransport)),
			message: "upstream request failed: HTTP 500 for http://localhost:4006/api/refresh",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRefreshOutcome(tt.res)
			if got.Success != tt.success {
				t.Errorf("Success = %v, want %v", got.Success, tt.success)
			}
			if got.Message != tt.message {
				t.Errorf("Message = %q, want %q", got.Message, tt.message)
			}
		})
	}

	t.Run("unparseable body", func(t *testing.T) {
		got := NewRefreshOutcome(jsonResult(`{"success": "yes"}`))
		if got.Success {
			t.Error("expected failure")
		}
		if !strings.Contains(got.Message, shared.ErrResponseParse.Error()) {
			t.Errorf("expected parse error, got %q", got.Message)
		}
	})
}
