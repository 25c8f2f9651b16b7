// Package static serves the prebuilt client bundles.
//
// Two mounts exist for the lifetime of the process:
//
//   - user: prefix "/" over the primary client's build output.
//   - admin: prefix "/admin_static/" over the admin client's build output.
//
// Both trees are read-only. A request path is cleaned and any ".." segment is
// rejected before the tree is touched, so nothing outside a mount's root can be
// served. Misses answer 404 without trying the other mount.
//
// # HTTP Endpoints
//
//   - GET /app : user index.html
//   - GET /admin : admin index.html
//   - GET /admin_static/<path> : file from the admin build
//   - GET /<path> : file from the user build
//
// Trees come from local directories by default, or from an object storage
// bucket when STATIC_SOURCE=bucket.
package static
