package static

import (
	"context"
	"fmt"
	"path"

	"ui-server/core/server"
	"ui-server/core/storage"

	"go.uber.org/zap"
)

const (
	UserPrefix  = "/"
	AdminPrefix = "/admin_static/"

	UserAlias  = "/app"
	AdminAlias = "/admin"
)

// Feature serves the two client builds.
type Feature struct {
	user   *Mount
	admin  *Mount
	logger *zap.Logger
}

// NewFeature creates the static feature over the given user and admin mounts.
func NewFeature(user, admin *Mount, logger *zap.Logger) *Feature {
	return &Feature{user: user, admin: admin, logger: logger}
}

// NewMounts builds the user and admin mounts for the configured source.
// client is only used in bucket mode and may be nil otherwise.
func NewMounts(ctx context.Context, cfg Config, client storage.Client, bucket string) (user, admin *Mount, err error) {
	switch cfg.Source {
	case SourceFS:
		user = NewDirMount("user", UserPrefix, UserAlias, cfg.UserRoot)
		admin = NewDirMount("admin", AdminPrefix, AdminAlias, cfg.AdminRoot)
		return user, admin, nil
	case SourceBucket:
		if client == nil {
			return nil, nil, fmt.Errorf("static source %q requires a storage client", cfg.Source)
		}
		user = NewFSMount("user", UserPrefix, UserAlias, location(bucket, cfg.UserRoot),
			storage.NewFS(ctx, client, bucket, cfg.UserRoot))
		admin = NewFSMount("admin", AdminPrefix, AdminAlias, location(bucket, cfg.AdminRoot),
			storage.NewFS(ctx, client, bucket, cfg.AdminRoot))
		return user, admin, nil
	default:
		return nil, nil, fmt.Errorf("unknown static source %q", cfg.Source)
	}
}

func location(bucket, prefix string) string {
	return "s3://" + path.Join(bucket, prefix)
}

// Mounts returns the user and admin mounts.
func (f *Feature) Mounts() []*Mount {
	return []*Mount{f.user, f.admin}
}

func (f *Feature) Name() string    { return "static" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers the index aliases and both mounts.
func (f *Feature) Load(routes *server.Routes) error {
	for _, m := range f.Mounts() {
		routes.Get(m.Alias, m.Name+"-index", m.IndexHandler())
		routes.Mount(m.Prefix, m.Name+"-static", m.Handler())
		f.logger.Debug("Static mount registered",
			zap.String("mount", m.Name),
			zap.String("prefix", m.Prefix),
			zap.String("alias", m.Alias),
			zap.String("root", m.Root),
		)
	}
	return nil
}
