package server

import (
	"sort"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Kind distinguishes exact routes from prefix mounts.
type Kind int

const (
	// Exact routes match a single path (or a Fiber pattern such as /swagger/*).
	Exact Kind = iota
	// Prefix routes match a path and everything below it.
	Prefix
)

func (k Kind) String() string {
	if k == Prefix {
		return "prefix"
	}
	return "exact"
}

// Route is one entry of the route table.
type Route struct {
	Kind    Kind
	Method  string
	Path    string
	Name    string
	Handler fiber.Handler
}

// Routes is the ordered route table of the server.
//
// Exact routes are always consulted before prefix mounts, regardless of the
// order in which they were registered. Mounts are ordered by descending
// prefix length so the most specific mount wins.
type Routes struct {
	mu     sync.Mutex
	exact  []Route
	mounts []Route
	sealed bool
}

// NewRoutes creates an empty route table.
func NewRoutes() *Routes {
	return &Routes{}
}

// Get registers an exact GET route. HEAD is answered by the same handler.
func (r *Routes) Get(path, name string, h fiber.Handler) {
	r.add(Route{Kind: Exact, Method: fiber.MethodGet, Path: path, Name: name, Handler: h})
}

// Mount registers a prefix route. The prefix is normalised to start with "/"
// and carry no trailing slash ("/" itself is kept).
func (r *Routes) Mount(prefix, name string, h fiber.Handler) {
	r.add(Route{Kind: Prefix, Method: fiber.MethodGet, Path: NormalizePrefix(prefix), Name: name, Handler: h})
}

func (r *Routes) add(rt Route) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic("server: route " + rt.Path + " registered after the route table was sealed")
	}
	if rt.Kind == Prefix {
		r.mounts = append(r.mounts, rt)
		return
	}
	r.exact = append(r.exact, rt)
}

// Table returns the routes in match order.
func (r *Routes) Table() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ordered()
}

func (r *Routes) ordered() []Route {
	mounts := make([]Route, len(r.mounts))
	copy(mounts, r.mounts)
	sort.SliceStable(mounts, func(i, j int) bool {
		return len(mounts[i].Path) > len(mounts[j].Path)
	})

	out := make([]Route, 0, len(r.exact)+len(mounts))
	out = append(out, r.exact...)
	return append(out, mounts...)
}

// seal applies the table to router and freezes it. Subsequent calls are no-ops.
func (r *Routes) seal(router fiber.Router) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return
	}
	r.sealed = true

	for _, rt := range r.ordered() {
		switch rt.Kind {
		case Exact:
			router.Get(rt.Path, rt.Handler).Name(rt.Name)
		case Prefix:
			router.Use(rt.Path, withinPrefix(rt.Path, rt.Handler))
		}
	}
}

// withinPrefix only lets requests through whose path is prefix itself or lies
// below it, so "/admin_static" never claims "/admin_staticx".
func withinPrefix(prefix string, h fiber.Handler) fiber.Handler {
	if prefix == "/" {
		return h
	}
	return func(c *fiber.Ctx) error {
		p := c.Path()
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return h(c)
		}
		return c.Next()
	}
}

// Sealed reports whether the table has been applied.
func (r *Routes) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// NormalizePrefix returns prefix with a leading slash and without a trailing one.
func NormalizePrefix(prefix string) string {
	return "/" + strings.Trim(prefix, "/")
}
