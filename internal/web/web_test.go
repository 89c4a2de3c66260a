package web

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/server"
	"github.com/desertthunder/wgx/internal/services"
	"github.com/desertthunder/wgx/internal/shared"
	tu "github.com/desertthunder/wgx/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packagesBody(n, total int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf(`{"name": "Package %d", "publisher": "Contoso", "package_id": "Contoso.P%d", "version": "1.%d"}`, i, i, i)
	}
	return fmt.Sprintf(`{"Packages": [%s], "Total": %d}`, strings.Join(rows, ","), total)
}

func newTestHandler(t *testing.T, handlers map[string]http.HandlerFunc) (*Handler, *tu.Upstream) {
	t.Helper()
	upstream := tu.NewUpstream(t, handlers)
	logger := shared.NewLogger(&bytes.Buffer{})
	api := services.NewAPIService(upstream.URL+"/api", "", services.NewHTTPClient(time.Second, true))

	h, err := NewHandler(catalog.NewAdapter(api, logger), logger)
	require.NoError(t, err)
	return h, upstream
}

// get serves target through a router and returns the status and the unescaped body.
func get(t *testing.T, h *Handler, method, target string) (int, string) {
	t.Helper()
	router := server.NewBasicRouter()
	router.Handler(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec.Code, html.UnescapeString(rec.Body.String())
}

func TestHandler(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusOK, packagesBody(3, 120)),
		})

		code, body := get(t, h, http.MethodGet, "/?page=2&query=pack&sort=version")

		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "Showing 3 packages (page 2 of 3).")
		assert.Contains(t, body, `Search: "pack" (120 found)`)
		assert.Contains(t, body, "<td>51</td>")
		assert.Contains(t, body, "<td>Contoso.P2</td>")
		assert.Contains(t, body, `<option value="version" selected>`)
		assert.Contains(t, body, `href="?page=3&query=pack&sort=version&pageSize=50"`)
		assert.Contains(t, body, `href="?refresh=1&page=1&query=pack&sort=version&pageSize=50"`)
		assert.NotContains(t, body, "alert-danger")
	})

	t.Run("pagination window", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusOK, `{"Packages": [{"name": "x"}], "Total": 500, "TotalPages": 10, "CurrentPage": 5}`),
		})

		_, body := get(t, h, http.MethodGet, "/?page=5")

		for _, n := range []int{3, 4, 5, 6, 7} {
			assert.Contains(t, body, fmt.Sprintf(`href="?page=%d&sort=name&pageSize=50">%d</a>`, n, n))
		}
		assert.NotContains(t, body, `href="?page=2&sort=name&pageSize=50">2</a>`)
		assert.NotContains(t, body, `href="?page=8&sort=name&pageSize=50">8</a>`)
	})

	t.Run("missing fields render the placeholder", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusOK, `{"Packages": [{"name": "Lonely"}], "Total": 1}`),
		})

		_, body := get(t, h, http.MethodGet, "/")

		assert.Equal(t, 3, strings.Count(body, "<td>N/A</td>"))
		assert.NotContains(t, body, `aria-label="Pagination"`)
	})

	t.Run("upstream error banner", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusInternalServerError, `{"error": "boom"}`),
		})

		code, body := get(t, h, http.MethodGet, "/?publisher=Mozilla")

		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "HTTP 500")
		assert.Contains(t, body, "Troubleshooting:")
		assert.Contains(t, body, "/api/packages?page=1&pageSize=50&publisher=Mozilla&sort=name")
		assert.NotContains(t, body, "<tbody>")
		assert.NotContains(t, body, "No packages found")
	})

	t.Run("empty result notice", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusOK, `{"Packages": [], "Total": 0}`),
		})

		_, body := get(t, h, http.MethodGet, "/?query=nothing")

		assert.Contains(t, body, `No packages found for "nothing".`)
		assert.NotContains(t, body, "<tbody>")
	})

	t.Run("refresh alert", func(t *testing.T) {
		h, upstream := newTestHandler(t, map[string]http.HandlerFunc{
			"POST /api/refresh": tu.JSON(http.StatusOK, `{"success": true, "count": 42}`),
			"GET /api/packages": tu.JSON(http.StatusOK, packagesBody(1, 1)),
		})

		_, body := get(t, h, http.MethodGet, "/?refresh=1")

		assert.Contains(t, body, "alert-success")
		assert.Contains(t, body, "42 packages refreshed successfully!")
		assert.Len(t, upstream.Calls(), 2)
	})

	t.Run("failed refresh alert", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]http.HandlerFunc{
			"POST /api/refresh": tu.JSON(http.StatusOK, `{"error": "winget not found"}`),
			"GET /api/packages": tu.JSON(http.StatusOK, packagesBody(1, 1)),
		})

		_, body := get(t, h, http.MethodGet, "/?refresh=1")

		assert.Contains(t, body, `<div class="alert alert-danger" role="alert">winget not found</div>`)
		assert.Contains(t, body, "Showing 1 packages")
	})

	t.Run("vendor filter locks the form", func(t *testing.T) {
		h, upstream := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages/microsoft": tu.JSON(http.StatusOK, packagesBody(2, 2)),
		})

		_, body := get(t, h, http.MethodGet, "/?microsoft=1&query=edge")

		assert.Contains(t, body, "Active filter: publisher Microsoft (2 found)")
		assert.Equal(t, 2, strings.Count(body, " disabled>"))
		assert.Contains(t, body, `<input type="hidden" name="microsoft" value="1">`)
		assert.Equal(t, "/api/packages/microsoft", upstream.Calls()[0].Path)
	})

	t.Run("api route buttons", func(t *testing.T) {
		h, upstream := newTestHandler(t, map[string]http.HandlerFunc{
			"GET /api/packages": tu.JSON(http.StatusOK, packagesBody(1, 1)),
		})

		_, body := get(t, h, http.MethodGet, "/")

		assert.Contains(t, body, `href="`+upstream.URL+`/api/packages"`)
		assert.Contains(t, body, `href="`+upstream.URL+`/api/packages/microsoft"`)
		assert.Contains(t, body, `action="`+upstream.URL+`/api/refresh"`)
	})

	t.Run("healthz", func(t *testing.T) {
		h, upstream := newTestHandler(t, nil)

		code, body := get(t, h, http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body)
		assert.Empty(t, upstream.Calls())
	})

	t.Run("non-GET methods", func(t *testing.T) {
		h, upstream := newTestHandler(t, nil)

		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			code, _ := get(t, h, method, "/")
			assert.Equal(t, http.StatusMethodNotAllowed, code, method)
		}
		assert.Empty(t, upstream.Calls())
	})
}

type stubCatalog struct {
	page *catalog.Page
	seen url.Values
}

func (s *stubCatalog) Load(_ context.Context, values url.Values) *catalog.Page {
	s.seen = values
	return s.page
}

func (s *stubCatalog) Routes() catalog.APIRoutes {
	return catalog.APIRoutes{Packages: "http://api/packages"}
}

func TestHandlerWithStub(t *testing.T) {
	state := catalog.ParseQuery(url.Values{"pageSize": {"10"}})
	page := catalog.NewPage(state, catalog.BuildRequest(state), services.Failure(fmt.Errorf("%w: connection refused", shared.ErrTransport)))
	page.RequestURL = "http://api/packages?page=1"

	stub := &stubCatalog{page: page}
	h, err := NewHandler(stub, shared.NewLogger(&bytes.Buffer{}))
	require.NoError(t, err)

	code, body := get(t, h, http.MethodGet, "/?pageSize=10")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10", stub.seen.Get("pageSize"))
	assert.Contains(t, body, "upstream request failed: connection refused")
	assert.Contains(t, body, `href="http://api/packages?page=1"`)
	assert.Contains(t, body, `href="?page=1&pageSize=10"`)
}
