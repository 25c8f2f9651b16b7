package static

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ui-server/core/server"
	"ui-server/core/storage/mocks"
	"ui-server/feature/api"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	userIndex  = "<!doctype html><title>user</title>\n"
	adminIndex = "<!doctype html><title>admin</title>\n"
)

type buildDirs struct {
	base  string
	user  string
	admin string
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupBuildDirs(t *testing.T) buildDirs {
	t.Helper()
	base := t.TempDir()
	d := buildDirs{
		base:  base,
		user:  filepath.Join(base, "ui", "client", "user_module", "dist"),
		admin: filepath.Join(base, "ui", "client", "admin_module", "dist"),
	}

	writeFile(t, filepath.Join(d.user, "index.html"), userIndex)
	writeFile(t, filepath.Join(d.user, "assets", "app.js"), "console.log('user')")
	writeFile(t, filepath.Join(d.user, "API"), "user build file")
	writeFile(t, filepath.Join(d.admin, "index.html"), adminIndex)
	writeFile(t, filepath.Join(d.admin, "assets", "admin.css"), "body{}")
	writeFile(t, filepath.Join(d.admin, "main.js"), "console.log('admin')")
	writeFile(t, filepath.Join(base, "ui", "client", "secret.txt"), "top secret")
	return d
}

func setupTestApp(t *testing.T, d buildDirs) *fiber.App {
	t.Helper()
	srv := server.New(server.Config{}, zap.NewNop())

	require.NoError(t, api.NewFeature().Load(srv.Routes()))
	user, admin, err := NewMounts(context.Background(), Config{Source: SourceFS, UserRoot: d.user, AdminRoot: d.admin}, nil, "")
	require.NoError(t, err)
	require.NoError(t, NewFeature(user, admin, zap.NewNop()).Load(srv.Routes()))
	return srv.App()
}

func get(t *testing.T, app *fiber.App, method, path string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header.Get("Content-Type")
}

func TestIndexAliases(t *testing.T) {
	d := setupBuildDirs(t)
	app := setupTestApp(t, d)

	tests := []struct {
		path string
		want string
	}{
		{"/app", userIndex},
		{"/app?tab=settings&x=1", userIndex},
		{"/admin", adminIndex},
		{"/admin?foo=bar", adminIndex},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body, ctype := get(t, app, "GET", tt.path)
			assert.Equal(t, 200, status)
			assert.Equal(t, tt.want, body)
			assert.Contains(t, ctype, "text/html")
		})
	}
}

func TestStaticMounts(t *testing.T) {
	d := setupBuildDirs(t)
	app := setupTestApp(t, d)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"UserFile", "/assets/app.js", 200, "console.log('user')"},
		{"UserIndexFile", "/index.html", 200, userIndex},
		{"UserMissing", "/assets/missing.js", 404, ""},
		{"AdminFile", "/admin_static/main.js", 200, "console.log('admin')"},
		{"AdminNested", "/admin_static/assets/admin.css", 200, "body{}"},
		{"AdminDirectoryIndex", "/admin_static/", 200, adminIndex},
		{"AdminMissing", "/admin_static/missing.js", 404, ""},
		{"AdminMissDoesNotFallThrough", "/admin_static/assets/app.js", 404, ""},
		{"DirectoryWithoutIndex", "/assets", 404, ""},
		{"JSONRootWins", "/", 200, `{"hello":"world"}`},
		{"UppercaseAPIIsUserFile", "/API", 200, "user build file"},
		{"APITrailingSlashIsNotJSON", "/api/", 404, ""},
		{"UserAliasIsCaseSensitive", "/App", 404, ""},
		{"UserAliasTrailingSlash", "/app/", 404, ""},
		{"AdminAliasIsCaseSensitive", "/ADMIN", 404, ""},
		{"AdminAliasTrailingSlash", "/admin/", 404, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := get(t, app, "GET", tt.path)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestStaticMounts_ContentType(t *testing.T) {
	d := setupBuildDirs(t)
	app := setupTestApp(t, d)

	_, _, ctype := get(t, app, "GET", "/admin_static/assets/admin.css")
	assert.Contains(t, ctype, "text/css")
}

func TestStaticMounts_Head(t *testing.T) {
	d := setupBuildDirs(t)
	app := setupTestApp(t, d)

	status, body, _ := get(t, app, "HEAD", "/admin_static/main.js")
	assert.Equal(t, 200, status)
	assert.Empty(t, body)
}

func TestStaticMounts_Traversal(t *testing.T) {
	d := setupBuildDirs(t)
	app := setupTestApp(t, d)

	for _, p := range []string{
		"/admin_static/../../etc/passwd",
		"/admin_static/../secret.txt",
		"/admin_static/%2e%2e/secret.txt",
		"/admin_static/..%2fsecret.txt",
		"/../secret.txt",
		"/%2e%2e/%2e%2e/secret.txt",
	} {
		t.Run(p, func(t *testing.T) {
			status, body, _ := get(t, app, "GET", p)
			assert.Equal(t, 404, status)
			assert.NotContains(t, body, "top secret")
			assert.NotContains(t, body, "root:")
		})
	}
}

func TestStaticMounts_MissingBuildDirectories(t *testing.T) {
	base := t.TempDir()
	d := buildDirs{
		base:  base,
		user:  filepath.Join(base, "nope", "user"),
		admin: filepath.Join(base, "nope", "admin"),
	}
	app := setupTestApp(t, d)

	for _, p := range []string{"/app", "/admin", "/admin_static/main.js", "/assets/app.js"} {
		status, _, _ := get(t, app, "GET", p)
		assert.Equal(t, 404, status, p)
	}

	status, body, _ := get(t, app, "GET", "/api")
	assert.Equal(t, 200, status)
	assert.Equal(t, `{"hello":"world"}`, body)
}

func TestNewMounts_Bucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "ui", "admin/dist/index.html", mock.Anything).
		Return(minio.ObjectInfo{Size: int64(len(adminIndex))}, nil)
	client.On("GetObject", mock.Anything, "ui", "admin/dist/index.html", mock.Anything).
		Return(io.NopCloser(strings.NewReader(adminIndex)), nil)
	client.On("StatObject", mock.Anything, "ui", "admin/dist/missing.js", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

	cfg := Config{Source: SourceBucket, UserRoot: "user/dist", AdminRoot: "admin/dist"}
	user, admin, err := NewMounts(context.Background(), cfg, client, "ui")
	require.NoError(t, err)
	assert.Equal(t, "s3://ui/user/dist", user.Root)
	assert.Equal(t, "s3://ui/admin/dist", admin.Root)

	srv := server.New(server.Config{}, zap.NewNop())
	require.NoError(t, NewFeature(user, admin, zap.NewNop()).Load(srv.Routes()))
	app := srv.App()

	status, body, _ := get(t, app, "GET", "/admin")
	assert.Equal(t, 200, status)
	assert.Equal(t, adminIndex, body)

	status, _, _ = get(t, app, "GET", "/admin_static/missing.js")
	assert.Equal(t, 404, status)
}

func TestNewMounts_Errors(t *testing.T) {
	_, _, err := NewMounts(context.Background(), Config{Source: SourceBucket}, nil, "ui")
	assert.Error(t, err)

	_, _, err = NewMounts(context.Background(), Config{Source: "ftp"}, nil, "")
	assert.Error(t, err)
}

func TestFeature_RouteTable(t *testing.T) {
	user := NewDirMount("user", UserPrefix, UserAlias, "/u")
	admin := NewDirMount("admin", AdminPrefix, AdminAlias, "/a")
	f := NewFeature(user, admin, zap.NewNop())

	routes := server.NewRoutes()
	require.NoError(t, f.Load(routes))

	var paths []string
	for _, rt := range routes.Table() {
		paths = append(paths, rt.Path)
	}
	assert.Equal(t, []string{"/app", "/admin", "/admin_static", "/"}, paths)
	assert.Equal(t, "static", f.Name())
	assert.True(t, f.IsEnabled())
}
