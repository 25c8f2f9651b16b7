package checks

import (
	"context"
	"fmt"
	"net/http"

	"ui-server/core/storage"
)

// RequiredFiles lists the files every client build must contain.
var RequiredFiles = []string{"/index.html"}

// CheckBuild returns the required files missing from a build tree.
// A directory standing where a file is expected counts as missing.
func CheckBuild(files http.FileSystem, required []string) []string {
	var missing []string

	for _, name := range required {
		f, err := files.Open(name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		stat, err := f.Stat()
		_ = f.Close()
		if err != nil || stat.IsDir() {
			missing = append(missing, name)
		}
	}

	return missing
}

// CheckBucket verifies the bucket holding build output is reachable.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
