package checks

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"ui-server/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckBuild(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o644))

		assert.Empty(t, CheckBuild(http.Dir(dir), RequiredFiles))
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, []string{"/index.html"}, CheckBuild(http.Dir(t.TempDir()), RequiredFiles))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "does-not-exist")
		assert.Equal(t, []string{"/index.html"}, CheckBuild(http.Dir(dir), RequiredFiles))
	})

	t.Run("DirectoryInsteadOfFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0o755))

		assert.Equal(t, []string{"/index.html"}, CheckBuild(http.Dir(dir), RequiredFiles))
	})
}

func TestCheckBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "ui").Return(true, nil)
		assert.NoError(t, CheckBucket(context.Background(), client, "ui"))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "ui").Return(false, nil)

		err := CheckBucket(context.Background(), client, "ui")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "ui").Return(false, assert.AnError)

		err := CheckBucket(context.Background(), client, "ui")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
