package static

import (
	"fmt"
	"path/filepath"
)

const (
	// SourceFS serves build output from local directories.
	SourceFS = "fs"
	// SourceBucket serves build output from object storage.
	SourceBucket = "bucket"
)

// Config holds configuration for the two build output trees.
type Config struct {
	// Source selects where build output is read from: fs or bucket.
	Source string `mapstructure:"source" default:"fs"`
	// UserRoot is the primary client's build directory (or key prefix in bucket mode).
	UserRoot string `mapstructure:"user_root" default:"ui/client/user_module/dist"`
	// AdminRoot is the admin client's build directory (or key prefix in bucket mode).
	AdminRoot string `mapstructure:"admin_root" default:"ui/client/admin_module/dist"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFS, SourceBucket:
		return true
	default:
		return false
	}
}

// Absolute returns a copy of c with directory roots resolved against base.
// Bucket prefixes are returned unchanged.
func (c Config) Absolute(base string) (Config, error) {
	if c.Source != SourceFS {
		return c, nil
	}

	user, err := absolute(base, c.UserRoot)
	if err != nil {
		return c, err
	}
	admin, err := absolute(base, c.AdminRoot)
	if err != nil {
		return c, err
	}

	c.UserRoot = user
	c.AdminRoot = admin
	return c, nil
}

func absolute(base, root string) (string, error) {
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	abs, err := filepath.Abs(filepath.Join(base, root))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", root, err)
	}
	return abs, nil
}
