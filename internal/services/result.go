package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/wgx/internal/shared"
)

// Response is a successful API response: status below 400 and a valid JSON body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       json.RawMessage
}

// Result is the outcome of an API call: exactly one of a [Response] or an error.
type Result struct {
	resp *Response
	err  error
}

// Success wraps a response.
func Success(resp *Response) Result {
	return Result{resp: resp}
}

// Failure wraps an error. A nil err is reported as a transport failure.
func Failure(err error) Result {
	if err == nil {
		err = fmt.Errorf("%w: unknown error", shared.ErrTransport)
	}
	return Result{err: err}
}

// OK reports whether the call produced a response.
func (r Result) OK() bool {
	return r.err == nil && r.resp != nil
}

// Response returns the response, or nil for a failed call.
func (r Result) Response() *Response {
	return r.resp
}

// Err returns the failure, or nil for a successful call.
func (r Result) Err() error {
	if r.err == nil && r.resp == nil {
		return fmt.Errorf("%w: empty result", shared.ErrTransport)
	}
	return r.err
}

// Message returns the human readable diagnostic of a failed call, empty on success.
func (r Result) Message() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Decode unmarshals the response body into v.
//
// A failed call returns its own error; a body that does not fit v is reported as [shared.ErrResponseParse].
func (r Result) Decode(v any) error {
	if !r.OK() {
		return r.Err()
	}
	if err := json.Unmarshal(r.resp.Body, v); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrResponseParse, err)
	}
	return nil
}
