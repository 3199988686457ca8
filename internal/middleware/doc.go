// Package middleware provides HTTP middleware for the todos API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one structured slog line per request
//   - Recovery: turns panics into a 500 problem response
//   - CORS: origin allow-list and preflight handling
//   - MaxBody: request body size limit
//   - Compress: gzip responses when the client accepts it
//
// # Composition
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.MaxBody(1<<20),
//	    middleware.Compress,
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
