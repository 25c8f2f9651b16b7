// Package api provides the stub JSON API.
//
// # HTTP Endpoints
//
//   - GET / : {"hello":"world"}
//   - GET /api : {"hello":"world"}
package api
