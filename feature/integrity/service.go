package integrity

import (
	"context"

	"ui-server/core/storage"
	"ui-server/feature/integrity/checks"
	"ui-server/feature/static"

	"go.uber.org/zap"
)

// MountReport describes the state of one build tree.
type MountReport struct {
	Mount   string   `json:"mount"`
	Prefix  string   `json:"prefix"`
	Root    string   `json:"root"`
	OK      bool     `json:"ok"`
	Missing []string `json:"missing"`
}

// Report is the combined result of all build checks.
type Report struct {
	Bucket string        `json:"bucket,omitempty"`
	Error  string        `json:"error,omitempty"`
	Mounts []MountReport `json:"mounts"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	if r.Error != "" {
		return false
	}
	for _, m := range r.Mounts {
		if !m.OK {
			return false
		}
	}
	return true
}

// Service checks the build output behind the static mounts.
type Service struct {
	mounts []*static.Mount
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service.
// client may be nil when build output is read from local directories.
func NewService(mounts []*static.Mount, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		mounts: mounts,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Check runs all build checks. It never fails; problems are part of the report.
func (s *Service) Check(ctx context.Context) Report {
	var report Report

	if s.client != nil {
		report.Bucket = s.bucket
		if err := checks.CheckBucket(ctx, s.client, s.bucket); err != nil {
			report.Error = err.Error()
		}
	}

	report.Mounts = s.CheckMounts()
	return report
}

// CheckMounts checks every mount for its required files.
func (s *Service) CheckMounts() []MountReport {
	reports := make([]MountReport, 0, len(s.mounts))

	for _, m := range s.mounts {
		missing := checks.CheckBuild(m.FileSystem(), checks.RequiredFiles)
		reports = append(reports, MountReport{
			Mount:   m.Name,
			Prefix:  m.Prefix,
			Root:    m.Root,
			OK:      len(missing) == 0,
			Missing: missing,
		})
	}

	return reports
}

// Warn logs a warning for every failed check. Missing build output is not fatal:
// the affected paths simply answer 404.
func (s *Service) Warn(report Report) {
	if report.Error != "" {
		s.logger.Warn("Build bucket unavailable", zap.String("bucket", report.Bucket), zap.String("error", report.Error))
	}
	for _, m := range report.Mounts {
		if !m.OK {
			s.logger.Warn("Build output incomplete",
				zap.String("mount", m.Mount),
				zap.String("root", m.Root),
				zap.Strings("missing", m.Missing),
			)
		}
	}
}
