// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Tags every incoming request with a unique Request ID (RayID),
//     storing it in the context locals and echoing it in the X-Ray-ID response header.
//
// Request logging and metrics collection live next to the server and metrics
// packages because they depend on their configuration.
package middleware
