package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"agencycms/internal/content"
	"agencycms/internal/http/middleware"
	"agencycms/internal/prefs"
	"agencycms/internal/service"
)

// SessionCookie configures how the session token travels to the browser.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Deps bundles everything the HTTP surface needs. Handlers stay thin:
// parse, call a service, shape the response.
type Deps struct {
	DB      *sql.DB
	Content service.ContentService
	Profile service.ProfileService
	Media   service.MediaService
	Auth    middleware.Authenticator
	Signer  SessionSigner
	Drafts  *content.DraftStore
	Themes  *prefs.ThemeStore
	Cookie  SessionCookie
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := deps.DB.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Public aggregated content for the marketing site. Never fails:
	// storage problems degrade to the compiled-in defaults.
	app.Get("/content", func(c *fiber.Ctx) error {
		doc, err := deps.Content.Load(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(doc)
	})

	registerAuthRoutes(app, deps)

	admin := app.Group("/admin", middleware.SessionAuth(deps.Auth, deps.Cookie.Name))
	registerAdminRoutes(admin, deps)
}
