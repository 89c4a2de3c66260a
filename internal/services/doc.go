// Package services implements the client for the local package API.
//
// # Client
//
// [APIService] issues GET and POST requests against a configured base URL
// (http://localhost:4006/api by default). The underlying [http.Client] built by
// [NewHTTPClient] is bounded by a timeout (15s by default), follows at most one
// redirect and skips TLS verification, since the API is only ever reached on
// localhost. Every request carries a wgx User-Agent.
//
// # Results
//
// Calls never return Go errors. They return a [Result], which holds either a
// [Response] or an error:
//   - [shared.ErrTransport] : connection failure, timeout, or HTTP status >= 400
//   - [shared.ErrResponseParse] : the body was not valid JSON
//
// The error text is meant to be shown to the user as is, and includes the
// request URL where one was built.
package services
