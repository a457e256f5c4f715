package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"agencycms/internal/auth"
	"agencycms/internal/http/middleware"
	"agencycms/internal/model"
)

// SessionSigner opens and closes sessions. Satisfied by auth.Service.
type SessionSigner interface {
	SignIn(ctx context.Context, email, password string) (string, *model.User, error)
	SignOut(ctx context.Context, token string) error
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(app *fiber.App, deps Deps) {
	app.Post("/auth/signin", func(c *fiber.Ctx) error {
		var req signInRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		token, user, err := deps.Signer.SignIn(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", auth.ErrInvalidCredentials.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Cookie(&fiber.Cookie{
			Name:     deps.Cookie.Name,
			Value:    token,
			Expires:  time.Now().Add(deps.Cookie.TTL),
			HTTPOnly: true,
			Secure:   deps.Cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
		return c.JSON(fiber.Map{
			"user": fiber.Map{"id": user.ID, "email": user.Email},
		})
	})

	app.Post("/auth/signout", func(c *fiber.Ctx) error {
		token := c.Cookies(deps.Cookie.Name)
		if token != "" {
			if err := deps.Signer.SignOut(c.UserContext(), token); err != nil {
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
			// Drop the open draft together with the session.
			deps.Drafts.Close(token)
		}
		c.Cookie(&fiber.Cookie{
			Name:     deps.Cookie.Name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   deps.Cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/auth/session", middleware.SessionAuth(deps.Auth, deps.Cookie.Name), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user": fiber.Map{
				"id":    c.Locals(middleware.SessionUserIDLocalKey),
				"email": c.Locals(middleware.SessionEmailLocalKey),
			},
		})
	})
}
