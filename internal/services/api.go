// API service for making HTTP requests to the package API
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/wgx/internal/shared"
)

const (
	DefaultBaseURL   = "http://localhost:4006/api"
	DefaultUserAgent = "Mozilla/5.0 (compatible; wgx/0.1)"
	DefaultTimeout   = 15 * time.Second
)

var errTooManyRedirects = errors.New("stopped after 1 redirect")

// NewHTTPClient builds the client used against the package API: bounded by timeout,
// following at most one redirect, optionally skipping TLS verification.
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: insecureSkipVerify} // #nosec G402 -- localhost API

	return &http.Client{
		Timeout:       timeout,
		Transport:     transport,
		CheckRedirect: followOnce,
	}
}

func followOnce(_ *http.Request, via []*http.Request) error {
	if len(via) > 1 {
		return errTooManyRedirects
	}
	return nil
}

// APIService makes requests to the package API and reports every outcome as a [Result].
type APIService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewAPIService creates a new API service instance for the package API.
func NewAPIService(baseURL, userAgent string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if client == nil {
		client = NewHTTPClient(DefaultTimeout, true)
	}

	return &APIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: client,
	}
}

// BaseURL returns the API root without a trailing slash.
func (a *APIService) BaseURL() string {
	return a.baseURL
}

// URL joins path and the encoded params onto the base URL.
func (a *APIService) URL(path string, params url.Values) string {
	full := a.baseURL + path
	if len(params) > 0 {
		full += "?" + params.Encode()
	}
	return full
}

// Get performs a GET request to the specified path with the given query parameters.
func (a *APIService) Get(ctx context.Context, path string, params url.Values) Result {
	fullURL := a.URL(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Failure(fmt.Errorf("%w: failed to create request: %v", shared.ErrTransport, err))
	}

	return a.do(req)
}

// Post performs a POST request to the specified path. data may be nil for an empty body.
func (a *APIService) Post(ctx context.Context, path string, data []byte) Result {
	fullURL := a.URL(path, nil)

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, body)
	if err != nil {
		return Failure(fmt.Errorf("%w: failed to create request: %v", shared.ErrTransport, err))
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.do(req)
}

func (a *APIService) do(req *http.Request) Result {
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")
	target := req.URL.String()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return Failure(fmt.Errorf("%w: %v", shared.ErrTransport, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(fmt.Errorf("%w: failed to read response: %v for %s", shared.ErrTransport, err, target))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return Failure(fmt.Errorf("%w: HTTP %d for %s", shared.ErrTransport, resp.StatusCode, target))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Failure(fmt.Errorf("%w: %v for %s", shared.ErrResponseParse, err, target))
	}

	return Success(&Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       raw,
	})
}
