package api

import "ui-server/core/server"

// Feature exposes the JSON API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the API feature.
func NewFeature() *Feature {
	return &Feature{handler: NewHandler()}
}

func (f *Feature) Name() string    { return "api" }
func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(routes *server.Routes) error {
	f.handler.RegisterRoutes(routes)
	return nil
}
