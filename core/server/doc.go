// Package server holds the HTTP server, its configuration and its route table.
//
// # Configuration
//
// Config carries the bind host and port, the debug flag and connection timeouts.
// Raw values are kept as read from the environment; ListenPort and DebugEnabled
// apply the fallback rules (port 3000, debug only for the exact string "true").
//
// # Route Table
//
// Routes is an explicit, ordered table. Exact routes (/, /api, /app, /admin) are
// matched before any prefix mount, and mounts are tried longest prefix first, so
// "/" only ever reaches the JSON handler and "/admin_static/x" never reaches the
// root mount. The table is sealed before the first connection is accepted.
//
// # Lifecycle
//
//	srv := server.New(cfg.App, logg)
//	srv.Routes().Get("/api", "api", handler)
//	ln, err := srv.Bind()   // bind failures are fatal to the caller
//	go srv.Serve(ln)
//	srv.Shutdown(ctx)
package server
