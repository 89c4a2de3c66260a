package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/wgx/internal/models"
)

// WindowRadius is the number of page links shown on each side of the current page.
const WindowRadius = 2

// LinkState carries the parts of a [models.QueryState] that every navigation link must preserve.
type LinkState struct {
	Publisher   string
	Query       string
	Sort        models.Sort
	IsMicrosoft bool
	PageSize    int
}

// NewLinkState extracts the link state of q.
func NewLinkState(q models.QueryState) LinkState {
	return LinkState{
		Publisher:   q.Publisher,
		Query:       q.Query,
		Sort:        q.Sort,
		IsMicrosoft: q.IsMicrosoft,
		PageSize:    q.PageSize,
	}
}

// Suffix returns the query string fragment appended after the page parameter:
// filter (publisher, else query), sort, vendor flag and page size, each prefixed with '&'.
func (l LinkState) Suffix() string {
	var b strings.Builder

	switch {
	case l.Publisher != "":
		b.WriteString("&publisher=" + url.QueryEscape(l.Publisher))
	case l.Query != "":
		b.WriteString("&query=" + url.QueryEscape(l.Query))
	}
	if l.Sort != "" {
		b.WriteString("&sort=" + url.QueryEscape(string(l.Sort)))
	}
	if l.IsMicrosoft {
		b.WriteString("&microsoft=1")
	}
	b.WriteString("&pageSize=" + strconv.Itoa(l.PageSize))

	return b.String()
}

// PageURL links to page n with all active filters.
func (l LinkState) PageURL(n int) string {
	return "?page=" + strconv.Itoa(n) + l.Suffix()
}

// RefreshURL triggers a refresh and returns to the first page with all active filters.
func (l LinkState) RefreshURL() string {
	return "?refresh=1&page=1" + l.Suffix()
}

// ResetURL clears every filter but keeps the page size.
func (l LinkState) ResetURL() string {
	return "?page=1&pageSize=" + strconv.Itoa(l.PageSize)
}

// VendorURL switches to the vendor filter, keeping the page size.
func (l LinkState) VendorURL() string {
	return "?page=1&publisher=" + url.QueryEscape(VendorPublisher) + "&microsoft=1&pageSize=" + strconv.Itoa(l.PageSize)
}

// PageLink is a single entry of a [Pagination] control.
type PageLink struct {
	Number   int
	URL      string
	Active   bool
	Disabled bool
}

// Pagination is the page navigation control: previous, a window of pages, next.
type Pagination struct {
	Prev  PageLink
	Pages []PageLink
	Next  PageLink
}

// NewPagination builds the navigation for current out of total pages.
//
// The window spans current±[WindowRadius] clamped to [1,total]. Prev is disabled on the first page
// and Next on the last.
func NewPagination(links LinkState, current, total int) Pagination {
	p := Pagination{
		Prev: PageLink{
			Number:   current - 1,
			URL:      links.PageURL(current - 1),
			Disabled: current <= 1,
		},
		Next: PageLink{
			Number:   current + 1,
			URL:      links.PageURL(current + 1),
			Disabled: current >= total,
		},
	}

	for i := max(1, current-WindowRadius); i <= min(total, current+WindowRadius); i++ {
		p.Pages = append(p.Pages, PageLink{
			Number: i,
			URL:    links.PageURL(i),
			Active: i == current,
		})
	}

	return p
}

// Numbers returns the page numbers of the window.
func (p Pagination) Numbers() []int {
	nums := make([]int, len(p.Pages))
	for i, link := range p.Pages {
		nums[i] = link.Number
	}
	return nums
}
