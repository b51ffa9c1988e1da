// Package controller contains HTTP middlewares and helper handlers used by the
// landing page server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origin and answers OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithTimeout: Bounds request handling and answers timeouts with a JSON 503.
//
// Provided helpers:
//   - Pprof: Serves net/http/pprof handlers under PprofPrefix.
//   - GetClientIP: Best-effort originating client address.
package controller
