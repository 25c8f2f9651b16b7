// Package docs serves the interactive API documentation.
package docs

import (
	"ui-server/core/server"

	"github.com/gofiber/swagger"

	_ "ui-server/docs/swagger"
)

// Path is the route pattern of the documentation UI.
const Path = "/swagger/*"

// Feature exposes Swagger UI when enabled.
type Feature struct {
	enabled bool
}

// NewFeature creates the documentation feature.
func NewFeature(enabled bool) *Feature {
	return &Feature{enabled: enabled}
}

func (f *Feature) Name() string    { return "docs" }
func (f *Feature) IsEnabled() bool { return f.enabled }

func (f *Feature) Load(routes *server.Routes) error {
	routes.Get(Path, "swagger", swagger.HandlerDefault)
	return nil
}
