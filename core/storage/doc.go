// Package storage provides read access to build output kept in object storage.
//
// It wraps the MinIO Go client behind a narrow Client interface, which works against
// both AWS S3 and self-hosted MinIO, and adapts a bucket prefix into an fs.FS so it
// can back a static mount exactly like a local directory.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Reads object size and modification time.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	fsys := storage.NewFS(ctx, client, "ui", "user_module/dist")
//	f, err := fsys.Open("index.html")
package storage
