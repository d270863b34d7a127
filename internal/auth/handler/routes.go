package handler

import (
	"github.com/AnthoniusHendriyanto/session-service/internal/obs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/signup", h.Signup)
	app.Post("/api/v1/login", h.Login)
	app.Delete("/api/v1/session", h.Logout)

	// API guard: the authorization boundary.
	protected := app.Group("/api/v1", h.Protect)
	protected.Get("/me", h.Me)

	// View guard: advisory, redirects to /login on any failure.
	app.Get("/login", h.LoginPage)
	app.Get("/account", h.RequireLogin, h.AccountPage)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(obs.Handler()))
}
