// Package metrics exposes Prometheus instrumentation for the HTTP server.
//
// Labels use the matched route pattern (for static mounts, the mount prefix)
// rather than the raw request path, keeping cardinality bounded.
package metrics
