package api

import (
	"ui-server/core/server"

	"github.com/gofiber/fiber/v2"
)

// Hello is the payload returned by the stub API.
type Hello struct {
	Hello string `json:"hello" example:"world"`
}

// Handler handles HTTP requests for the JSON API.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(routes *server.Routes) {
	routes.Get("/", "root", h.HandleHello)
	routes.Get("/api", "api", h.HandleHello)
}

// HandleHello answers with a fixed greeting.
// @Summary Hello
// @Description Returns a fixed greeting. Placeholder for real application data.
// @Tags api
// @Produce json
// @Success 200 {object} api.Hello
// @Router /api [get]
func (h *Handler) HandleHello(c *fiber.Ctx) error {
	return c.JSON(Hello{Hello: "world"})
}
