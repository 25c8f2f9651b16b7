package storage

import (
	"context"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// FS exposes the objects under a bucket prefix as a read-only fs.FS.
// Only regular files can be opened; the root "." is reported as a directory.
type FS struct {
	ctx    context.Context
	client Client
	bucket string
	prefix string
}

// NewFS returns an FS rooted at prefix inside bucket.
// Object requests carry the values of ctx but not its cancellation, so reads
// already in flight survive the shutdown signal until the server drains.
func NewFS(ctx context.Context, client Client, bucket, prefix string) *FS {
	return &FS{
		ctx:    context.WithoutCancel(ctx),
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Open implements fs.FS.
func (f *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return &dirFile{info: objectInfo{name: ".", dir: true}}, nil
	}

	key := f.key(name)
	info, err := f.client.StatObject(f.ctx, f.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: translate(err)}
	}

	return &objectFile{
		fs:   f,
		name: name,
		key:  key,
		info: objectInfo{name: path.Base(name), size: info.Size, modTime: info.LastModified},
	}, nil
}

func (f *FS) key(name string) string {
	if f.prefix == "" {
		return name
	}
	return f.prefix + "/" + name
}

// translate maps S3 "not found" responses onto fs.ErrNotExist.
func translate(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}
	return err
}

// objectFile fetches the object body on the first Read, so a Stat-only
// open costs a single request.
type objectFile struct {
	fs   *FS
	name string
	key  string
	info objectInfo
	body io.ReadCloser
}

func (o *objectFile) Stat() (fs.FileInfo, error) { return o.info, nil }

func (o *objectFile) Read(p []byte) (int, error) {
	if o.body == nil {
		body, err := o.fs.client.GetObject(o.fs.ctx, o.fs.bucket, o.key, minio.GetObjectOptions{})
		if err != nil {
			return 0, &fs.PathError{Op: "read", Path: o.name, Err: translate(err)}
		}
		o.body = body
	}
	return o.body.Read(p)
}

func (o *objectFile) Close() error {
	if o.body == nil {
		return nil
	}
	return o.body.Close()
}

type dirFile struct {
	info objectInfo
}

func (d *dirFile) Stat() (fs.FileInfo, error) { return d.info, nil }
func (d *dirFile) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: fs.ErrInvalid}
}
func (d *dirFile) Close() error { return nil }

type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i objectInfo) Name() string       { return i.name }
func (i objectInfo) Size() int64        { return i.size }
func (i objectInfo) ModTime() time.Time { return i.modTime }
func (i objectInfo) IsDir() bool        { return i.dir }
func (i objectInfo) Sys() any           { return nil }
func (i objectInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
