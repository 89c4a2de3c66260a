// Package server provides HTTP routing, middleware and the server lifecycle for the web front end.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] for paths and filters methods itself:
// a registered path requested with another method gets 405 and an Allow header.
//
// # Middleware
//
// [Defaults] assembles the stack mounted by the serve command:
//   - [RealIP] and [Recoverer] from go-chi
//   - [RequestLogger], which tags requests with an X-Request-ID and logs status and latency
//   - [RateLimit], a token bucket from golang.org/x/time/rate, disabled unless server.rate_limit is set
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Server.Run] listens on the configured address and shuts down gracefully once its context is done,
// giving in-flight requests [ShutdownTimeout] to finish.
package server
