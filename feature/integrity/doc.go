// Package integrity checks the client build output served by the static mounts.
//
// The server never refuses to start because a build is missing; a missing tree
// only turns into 404s at request time. This package makes such problems visible
// ahead of time.
//
// # Checks Provided
//
//   - Build: every mount's tree must contain index.html.
//   - Bucket: in bucket mode, the configured bucket must exist and be reachable.
//
// # Usage
//
//   - `ui-server check` prints the report and exits non-zero when it is unhealthy.
//   - `ui-server start` logs a warning for each failed check.
package integrity
