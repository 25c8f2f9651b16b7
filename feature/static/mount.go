package static

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"ui-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

const indexFile = "/index.html"

// Mount maps a URL prefix onto a read-only tree of build output.
type Mount struct {
	// Name identifies the mount in logs and the route table.
	Name string
	// Prefix is the URL prefix, normalised without a trailing slash.
	Prefix string
	// Root describes where files come from (directory or bucket location).
	Root string
	// Alias is the exact path answering with the tree's index.html.
	Alias string

	files http.FileSystem
}

// NewDirMount creates a mount over a local directory.
// The directory is not checked; a missing tree only surfaces as 404s.
func NewDirMount(name, prefix, alias, dir string) *Mount {
	return newMount(name, prefix, alias, dir, http.Dir(dir))
}

// NewFSMount creates a mount over any fs.FS, such as a storage bucket prefix.
func NewFSMount(name, prefix, alias, location string, fsys fs.FS) *Mount {
	return newMount(name, prefix, alias, location, http.FS(fsys))
}

func newMount(name, prefix, alias, root string, files http.FileSystem) *Mount {
	return &Mount{
		Name:   name,
		Prefix: server.NormalizePrefix(prefix),
		Root:   root,
		Alias:  alias,
		files:  files,
	}
}

// FileSystem returns the tree backing the mount.
func (m *Mount) FileSystem() http.FileSystem {
	return m.files
}

// Resolve maps a request path below the mount prefix to a rooted path inside the tree.
// It returns false for paths outside the prefix and for any traversal attempt.
func (m *Mount) Resolve(requestPath string) (string, bool) {
	var rel string
	switch {
	case m.Prefix == "/":
		rel = requestPath
	case requestPath == m.Prefix:
		rel = "/"
	case strings.HasPrefix(requestPath, m.Prefix+"/"):
		rel = strings.TrimPrefix(requestPath, m.Prefix)
	default:
		return "", false
	}

	if strings.ContainsAny(rel, "\\\x00") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", false
		}
	}

	return path.Clean("/" + rel), true
}

// Handler serves files below the mount prefix. Misses end in 404 and never
// fall through to another mount.
func (m *Mount) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Next()
		}

		p, ok := m.Resolve(c.Path())
		if !ok {
			return fiber.ErrNotFound
		}
		return m.send(c, p)
	}
}

// IndexHandler always serves the tree's index.html.
func (m *Mount) IndexHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return m.send(c, indexFile)
	}
}

func (m *Mount) send(c *fiber.Ctx, p string) error {
	target, err := m.target(p)
	if err == nil {
		err = filesystem.SendFile(c, m.files, target)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, fiber.ErrNotFound) || errors.Is(err, fiber.ErrForbidden) ||
		errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fiber.ErrNotFound
	}
	return err
}

// target swaps a directory for its index file. SendFile does the same swap
// but leaves the directory handle open, so it only ever gets file paths here.
func (m *Mount) target(p string) (string, error) {
	dir, err := m.isDir(p)
	if err != nil || !dir {
		return p, err
	}

	index := path.Join(p, indexFile)
	if dir, err = m.isDir(index); err != nil {
		return "", err
	}
	if dir {
		return "", fiber.ErrNotFound
	}
	return index, nil
}

func (m *Mount) isDir(p string) (bool, error) {
	f, err := m.files.Open(p)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
