package integrity

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ui-server/core/storage/mocks"
	"ui-server/feature/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupMounts(t *testing.T, withAdminIndex bool) []*static.Mount {
	t.Helper()
	userDir := t.TempDir()
	adminDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "index.html"), []byte("user"), 0o644))
	if withAdminIndex {
		require.NoError(t, os.WriteFile(filepath.Join(adminDir, "index.html"), []byte("admin"), 0o644))
	}
	return []*static.Mount{
		static.NewDirMount("user", static.UserPrefix, static.UserAlias, userDir),
		static.NewDirMount("admin", static.AdminPrefix, static.AdminAlias, adminDir),
	}
}

func TestService_CheckHealthy(t *testing.T) {
	svc := NewService(setupMounts(t, true), nil, "", zap.NewNop())

	report := svc.Check(context.Background())
	assert.True(t, report.Healthy())
	assert.Empty(t, report.Bucket)
	require.Len(t, report.Mounts, 2)
	assert.Equal(t, "user", report.Mounts[0].Mount)
	assert.Equal(t, "/admin_static", report.Mounts[1].Prefix)
}

func TestService_CheckMissingIndex(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(setupMounts(t, false), nil, "", zap.New(core))

	report := svc.Check(context.Background())
	assert.False(t, report.Healthy())
	assert.True(t, report.Mounts[0].OK)
	assert.False(t, report.Mounts[1].OK)
	assert.Equal(t, []string{"/index.html"}, report.Mounts[1].Missing)

	svc.Warn(report)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "admin", warnings[0].ContextMap()["mount"])
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestService_CheckBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "ui").Return(false, nil)

	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(setupMounts(t, true), client, "ui", zap.New(core))

	report := svc.Check(context.Background())
	assert.False(t, report.Healthy())
	assert.Equal(t, "ui", report.Bucket)
	assert.Contains(t, report.Error, "does not exist")

	svc.Warn(report)
	assert.Equal(t, 1, logs.FilterMessage("Build bucket unavailable").Len())
	client.AssertExpectations(t)
}
